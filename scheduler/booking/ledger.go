package booking

import (
	"fmt"
	"strconv"
	"strings"
)

// Bookable hour range, inclusive.
const (
	bookingHourMin = 8
	bookingHourMax = 20
)

const (
	msgBranchUnknown  = "Không tìm thấy thông tin cho chi nhánh %s."
	msgBadHour        = "Giờ đặt không hợp lệ. Vui lòng chọn khung giờ từ 08:00 đến 20:00."
	msgBadTimeFormat  = "Định dạng giờ không hợp lệ. Vui lòng sử dụng định dạng HH:MM."
	msgSlotTaken      = "Khung giờ này đã được đặt. Vui lòng chọn khung giờ khác."
	msgBookConfirmed  = "Đã đặt lịch thành công tại %s vào %s lúc %s cho số điện thoại %s."
	msgCancelDone     = "Đã hủy lịch hẹn cho số điện thoại %s."
	msgCancelNotFound = "Không tìm thấy lịch hẹn cho số điện thoại %s."
)

// Appointment is one confirmed booking. Held in insertion order for the
// lifetime of the process only.
type Appointment struct {
	Branch string `json:"branch"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Phone  string `json:"phone"`
}

// Store is the appointment persistence contract used by the tool layer. The
// in-memory Ledger is the only implementation; a durable store can be
// injected later without touching the handlers.
type Store interface {
	Book(branch, date, timeSlot, phone string) string
	FreeSlots(branch, date string) []string
	Cancel(phone string) string
}

// Ledger owns the transient appointment list. Not safe for concurrent use;
// tool invocations are serialized by the dispatch loop.
type Ledger struct {
	hours        map[string]BranchWindow
	appointments []Appointment
}

func NewLedger() *Ledger {
	return NewLedgerWithHours(BranchHours)
}

func NewLedgerWithHours(hours map[string]BranchWindow) *Ledger {
	return &Ledger{hours: hours}
}

// Book validates the requested hour, rejects an exact (branch, date, time)
// duplicate, and otherwise records the appointment. The return value is
// always the user-facing reply.
func (l *Ledger) Book(branch, date, timeSlot, phone string) string {
	hourPart, _, _ := strings.Cut(timeSlot, ":")
	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return msgBadTimeFormat
	}
	if hour < bookingHourMin || hour > bookingHourMax {
		return msgBadHour
	}

	for _, appt := range l.appointments {
		if appt.Branch == branch && appt.Date == date && appt.Time == timeSlot {
			return msgSlotTaken
		}
	}

	l.appointments = append(l.appointments, Appointment{
		Branch: branch,
		Date:   date,
		Time:   timeSlot,
		Phone:  phone,
	})
	return fmt.Sprintf(msgBookConfirmed, branch, date, timeSlot, phone)
}

// FreeSlots returns the branch's slot grid minus slots already booked for
// that branch and date. An unknown branch yields a single-element list
// carrying the user-facing message, mirroring the tool contract.
func (l *Ledger) FreeSlots(branch, date string) []string {
	window, ok := l.hours[branch]
	if !ok {
		return []string{fmt.Sprintf(msgBranchUnknown, branch)}
	}

	booked := make(map[string]bool)
	for _, appt := range l.appointments {
		if appt.Branch == branch && appt.Date == date {
			booked[appt.Time] = true
		}
	}

	var free []string
	for _, slot := range GenerateSlots(window.Start, window.End, window.Interval) {
		if !booked[slot] {
			free = append(free, slot)
		}
	}
	return free
}

// Cancel removes every appointment booked under the phone number.
func (l *Ledger) Cancel(phone string) string {
	kept := l.appointments[:0]
	removed := 0
	for _, appt := range l.appointments {
		if appt.Phone == phone {
			removed++
			continue
		}
		kept = append(kept, appt)
	}
	l.appointments = kept

	if removed == 0 {
		return fmt.Sprintf(msgCancelNotFound, phone)
	}
	return fmt.Sprintf(msgCancelDone, phone)
}
