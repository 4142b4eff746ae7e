package salon

// CityIDs maps the county/city names returned by the geocoder to the salon
// directory's city identifiers. Thủ Đức is administratively part of
// Hồ Chí Minh, hence the shared id.
var CityIDs = map[string]int{
	"Hà Giang":          0,
	"Thủ Đức":           1,
	"Hồ Chí Minh":       1,
	"Tiền Giang":        7,
	"Thanh Hóa":         9,
	"Thái Nguyên":       10,
	"Quảng Ninh":        16,
	"Nghệ An":           24,
	"Long An":           26,
	"Khánh Hòa":         33,
	"Hà Tĩnh":           38,
	"Đồng Nai":          42,
	"Bình Thuận":        48,
	"Bình Dương":        50,
	"Bình Định":         51,
	"Bắc Ninh":          53,
	"Bà Rịa - Vũng Tàu": 57,
	"An Giang":          58,
	"Hải Phòng":         59,
	"Đà Nẵng":           60,
	"Cần Thơ":           61,
	"Hà Nội":            62,
}
