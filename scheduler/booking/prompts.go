package booking

// Clarifying questions for the booking flow, asked in fixed order:
// location, date, time, phone.
const (
	promptLocation = "Dạ, hệ thống bên em có hơn 100 chi nhánh trên khắp cả nước, như Hà Nội, Hồ Chí Minh, Hải Phòng, Bình Dương, Vinh, Đồng Nai... Anh ở khu vực nào để em giúp tìm salon gần nhất"
	promptDate     = "Bạn muốn đặt lịch vào ngày nào? (Định dạng: YYYY-MM-DD)"
	promptTime     = "Bạn muốn đặt lịch vào khung giờ nào? (Định dạng: HH:MM, từ 08:00 đến 20:00)"
	promptPhone    = "Vui lòng cung cấp số điện thoại của bạn để xác nhận lịch hẹn."
)

// MissingPrompts returns one clarifying question per empty booking field.
func MissingPrompts(branch, date, timeSlot, phone string) []string {
	var prompts []string
	if branch == "" {
		prompts = append(prompts, promptLocation)
	}
	if date == "" {
		prompts = append(prompts, promptDate)
	}
	if timeSlot == "" {
		prompts = append(prompts, promptTime)
	}
	if phone == "" {
		prompts = append(prompts, promptPhone)
	}
	return prompts
}
