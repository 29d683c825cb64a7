package command

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"lunchbot/model"
)

// Token đánh dấu ít cơm, đứng ở vị trí nào trong lệnh cũng được
const lessRiceToken = "itcom"

// MaxQuantity chặn số phần một dòng đặt, quá mức này chắc chắn là gõ nhầm
const MaxQuantity = 50

var (
	ErrEmptyDish        = errors.New("thiếu tên món")
	ErrMalformedCommand = errors.New("format lệnh sai")
	ErrInvalidQuantity  = errors.New("số lượng không hợp lệ")
)

var quantityRe = regexp.MustCompile(`^\d+$`)

// ParseOrder đọc phần sau "/order " thành một OrderIntent.
// Các bước chạy theo đúng thứ tự: tách token -> rút token itcom ->
// rút số lượng ở cuối -> ghép tên món -> đối chiếu số token đã dùng.
func ParseOrder(args string) (model.OrderIntent, error) {
	tokens := strings.Split(args, " ")
	total := len(tokens)

	// 1. Rút token itcom, nhớ số token đã rút để đối chiếu ở bước 4
	modifiers := 0
	rest := make([]string, 0, total)
	for _, t := range tokens {
		if t == lessRiceToken {
			modifiers++
			continue
		}
		rest = append(rest, t)
	}
	lessRice := modifiers > 0

	// 2. Token cuối là số thì đó là số lượng, nhưng không bao giờ
	// nuốt token duy nhất còn lại (món tên là số vẫn phải còn tên)
	quantity := 1
	quantityConsumed := false
	if len(rest) > 1 && quantityRe.MatchString(rest[len(rest)-1]) {
		q, err := strconv.Atoi(rest[len(rest)-1])
		if err != nil {
			return model.OrderIntent{}, ErrInvalidQuantity
		}
		quantity = q
		quantityConsumed = true
		rest = rest[:len(rest)-1]
	}

	// 3. Phần còn lại là tên món
	dishText := strings.TrimSpace(strings.Join(rest, " "))
	if dishText == "" {
		return model.OrderIntent{}, ErrEmptyDish
	}

	// 4. Số token tên món phải khớp với số token đã rút thật sự;
	// lệch nghĩa là lệnh có token thừa (vd gõ itcom hai lần)
	expected := total
	if lessRice {
		expected--
	}
	if quantityConsumed {
		expected--
	}
	if len(rest) != expected {
		return model.OrderIntent{}, ErrMalformedCommand
	}

	// 5. Chặn số lượng 0 và số lượng gõ nhầm quá lớn
	if quantity <= 0 || quantity > MaxQuantity {
		return model.OrderIntent{}, ErrInvalidQuantity
	}

	return model.OrderIntent{
		DishText: dishText,
		Quantity: quantity,
		LessRice: lessRice,
	}, nil
}

// ParseRemove đọc phần sau "/removeorder " thành tên món cần xóa
func ParseRemove(args string) (string, error) {
	dishText := strings.TrimSpace(strings.Join(strings.Split(args, " "), " "))
	if dishText == "" {
		return "", ErrEmptyDish
	}
	return dishText, nil
}
