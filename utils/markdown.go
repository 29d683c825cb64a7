package utils

import "strings"

var markdownReplacer = strings.NewReplacer(
	"_", "\\_",
	"*", "\\*",
	"[", "\\[",
	"]", "\\]",
	"(", "\\(",
	")", "\\)",
	"~", "\\~",
	"`", "\\`",
	">", "\\>",
	"#", "\\#",
	"+", "\\+",
	"-", "\\-",
	"=", "\\=",
	"|", "\\|",
	"{", "\\{",
	"}", "\\}",
	".", "\\.",
	"!", "\\!",
)

// EscapeMarkdown escape các ký tự Markdown trong nội dung động
// (tên món, username) trước khi nhúng vào tin nhắn trả lời
func EscapeMarkdown(text string) string {
	return markdownReplacer.Replace(text)
}
