package menu

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Thịt chiên", "thit chien"},
		{"THỊT CHIÊN", "thit chien"},
		{"Sườn ram", "suon ram"},
		// đ không có dạng tách dấu nên giữ nguyên
		{"Đậu hũ", "đau hu"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, muốn %q", c.in, got, c.want)
		}
	}
}

func TestFindDish(t *testing.T) {
	cases := []struct {
		input string
		want  string
		found bool
	}{
		{"thit chien", "Thịt chiên", true},
		{"Thịt Chiên", "Thịt chiên", true},
		{"THIT CHIEN", "Thịt chiên", true},
		{"canh kho qua", "Canh khổ qua", true},
		// gõ không dấu chữ đ thì không khớp, giống bot cũ
		{"dau hu nhoi thit", "", false},
		{"mì quảng", "", false},
		{"thit", "", false}, // không match một phần
	}
	for _, c := range cases {
		got, found := FindDish(c.input, MenuA)
		if found != c.found || got != c.want {
			t.Errorf("FindDish(%q) = (%q, %v), muốn (%q, %v)", c.input, got, found, c.want, c.found)
		}
	}
}

func TestFindDishFirstMatchWins(t *testing.T) {
	// "Đậu hũ nhồi thịt" và "Đậu hủ nhồi thịt" chuẩn hóa ra cùng một chuỗi,
	// món đứng trước trong menu phải thắng
	got, found := FindDish("đậu hủ nhồi thịt", MenuA)
	if !found || got != "Đậu hũ nhồi thịt" {
		t.Errorf("FindDish = (%q, %v), muốn món đứng trước trong menu", got, found)
	}
}

func TestFindDishClosedDay(t *testing.T) {
	if _, found := FindDish("Thịt chiên", nil); found {
		t.Error("menu nil (ngày nghỉ) không được tìm thấy món nào")
	}
}
