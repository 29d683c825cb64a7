package menu

import (
	"errors"
	"fmt"
	"time"

	"lunchbot/utils"
)

// Menu là danh sách món của một ngày, nil nghĩa là ngày nghỉ (Chủ nhật)
type Menu []string

var ErrInvalidDate = errors.New("ngày không hợp lệ, cần format YYYY-MM-DD")

// Menu cho thứ 2, 4, 6 (Monday, Wednesday, Friday)
var MenuA = mustMenu([]string{
	"Thịt chiên",
	"Chả cá rim nước mắm",
	"Thịt kho trứng",
	"Đậu hũ nhồi thịt",
	"Sườn ram",
	"Cá diêu Hồng sốt cà",
	"Vịt kho gừng",
	"Thịt luộc",
	"Thịt kho tiêu",
	"Cá khô dứa",
	"Đùi gà",
	"Cánh gà",
	"Gà sả",
	"Cá lóc kho",
	"Thịt rim tôm",
	"Cá nục chiên",
	"Đậu hủ nhồi thịt",
	"Mực xào",
	"Cá ngừ kho thơm",
	"Mắm ruốc",
	"Canh chua cá lóc",
	"Canh chua cá diêu Hồng",
	"Canh khổ qua",
})

// Menu cho thứ 3, 5, 7 (Tuesday, Thursday, Saturday)
var MenuB = mustMenu([]string{
	"Thịt chiên",
	"Chả cá rim nước mắm",
	"Thịt kho trứng",
	"Đậu hũ nhồi thịt",
	"Sườn ram",
	"Cá diêu Hồng sốt cà",
	"Vịt kho gừng",
	"Thịt luộc",
	"Cá khô dứa",
	"Đùi gà",
	"Cánh gà",
	"Gà sả",
	"Cá lóc kho",
	"Cá nục chiên",
	"Đậu hủ nhồi thịt",
	"Mực xào",
	"Cá ngừ kho thơm",
	"Mắm ruốc",
	"Canh chua cá lóc",
	"Canh chua cá diêu Hồng",
	"Canh khổ qua",
})

// mustMenu kiểm tra menu không có món trùng tên (so sánh đúng từng ký tự,
// hai món chỉ khác dấu vẫn được coi là khác nhau)
func mustMenu(dishes []string) Menu {
	seen := make(map[string]bool, len(dishes))
	for _, d := range dishes {
		if seen[d] {
			panic(fmt.Sprintf("menu có món trùng tên: %q", d))
		}
		seen[d] = true
	}
	return Menu(dishes)
}

// ForDate trả về menu của một ngày (YYYY-MM-DD), tính thứ theo giờ Việt Nam.
// Chủ nhật trả về nil (ngày nghỉ, không đặt được).
func ForDate(date string) (Menu, error) {
	t, err := time.ParseInLocation("2006-01-02", date, utils.Location())
	if err != nil {
		return nil, ErrInvalidDate
	}

	switch t.Weekday() {
	case time.Monday, time.Wednesday, time.Friday:
		return MenuA, nil
	case time.Tuesday, time.Thursday, time.Saturday:
		return MenuB, nil
	default:
		// Chủ nhật
		return nil, nil
	}
}
