package utils

import "time"

// TimeZone của quán cơm, mọi mốc "hôm nay" đều tính theo giờ này
const TimeZone = "Asia/Ho_Chi_Minh"

func Location() *time.Location {
	loc, err := time.LoadLocation(TimeZone)
	if err != nil {
		// Máy thiếu tzdata thì dùng ICT cố định, Việt Nam không có DST
		return time.FixedZone("ICT", 7*3600)
	}
	return loc
}

// Today trả về ngày hiện tại dạng YYYY-MM-DD theo giờ Việt Nam
func Today() string {
	return time.Now().In(Location()).Format("2006-01-02")
}

// DateOf đưa một mốc thời gian bất kỳ về ngày YYYY-MM-DD theo giờ Việt Nam
func DateOf(t time.Time) string {
	return t.In(Location()).Format("2006-01-02")
}
