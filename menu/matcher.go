package menu

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Tách dấu rồi bỏ các combining mark (ví dụ "Thịt" -> "Thit").
// Lưu ý đ/Đ không tách được dấu nên giữ nguyên, "dau hu" sẽ không khớp "đậu hủ".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize đưa chuỗi về dạng so sánh: chữ thường, không dấu
func Normalize(s string) string {
	out, _, err := transform.String(stripMarks, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// FindDish tìm món trong menu theo tên người dùng gõ, không phân biệt
// hoa thường và dấu. Trả về tên món đúng như trong menu; món đầu tiên
// khớp sẽ thắng. Menu nil (ngày nghỉ) luôn không tìm thấy.
func FindDish(input string, m Menu) (string, bool) {
	if m == nil {
		return "", false
	}
	want := Normalize(input)
	for _, dish := range m {
		if Normalize(dish) == want {
			return dish, true
		}
	}
	return "", false
}
