package validate

import (
	"lunchbot/model"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Order kiểm tra record trước khi ghi xuống store (date đúng format,
// quantity >= 1...). Đây là chốt chặn cuối, parser đã chặn từ trước.
func Order(o *model.Order) error {
	return validate.Struct(o)
}
