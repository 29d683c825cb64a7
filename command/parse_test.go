package command

import (
	"errors"
	"testing"

	"lunchbot/model"
)

func TestParseOrder(t *testing.T) {
	cases := []struct {
		name string
		args string
		want model.OrderIntent
		err  error
	}{
		{"chỉ tên món", "Thịt chiên", model.OrderIntent{DishText: "Thịt chiên", Quantity: 1}, nil},
		{"tên món và số lượng", "Thịt kho chả 2", model.OrderIntent{DishText: "Thịt kho chả", Quantity: 2}, nil},
		{"số lượng và itcom", "Thịt chiên 1 itcom", model.OrderIntent{DishText: "Thịt chiên", Quantity: 1, LessRice: true}, nil},
		{"itcom đứng đầu", "itcom Thịt chiên 1", model.OrderIntent{DishText: "Thịt chiên", Quantity: 1, LessRice: true}, nil},
		{"itcom không số lượng", "Thịt chiên itcom", model.OrderIntent{DishText: "Thịt chiên", Quantity: 1, LessRice: true}, nil},
		{"itcom đứng giữa", "Thịt itcom chiên 3", model.OrderIntent{DishText: "Thịt chiên", Quantity: 3, LessRice: true}, nil},
		{"món tên là số", "7", model.OrderIntent{DishText: "7", Quantity: 1}, nil},
		{"rỗng", "", model.OrderIntent{}, ErrEmptyDish},
		{"chỉ có itcom", "itcom", model.OrderIntent{}, ErrEmptyDish},
		{"số lượng 0", "Thịt chiên 0", model.OrderIntent{}, ErrInvalidQuantity},
		{"số lượng quá lớn", "Thịt chiên 99", model.OrderIntent{}, ErrInvalidQuantity},
		{"itcom lặp lại", "Thịt chiên itcom itcom", model.OrderIntent{}, ErrMalformedCommand},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ParseOrder(c.args)
			if c.err != nil {
				if !errors.Is(err, c.err) {
					t.Fatalf("ParseOrder(%q) err = %v, muốn %v", c.args, err, c.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOrder(%q): %v", c.args, err)
			}
			if got != c.want {
				t.Errorf("ParseOrder(%q) = %+v, muốn %+v", c.args, got, c.want)
			}
		})
	}
}

func TestParseRemove(t *testing.T) {
	if dish, err := ParseRemove("Thịt kho trứng"); err != nil || dish != "Thịt kho trứng" {
		t.Errorf("ParseRemove = (%q, %v)", dish, err)
	}
	if _, err := ParseRemove(""); !errors.Is(err, ErrEmptyDish) {
		t.Errorf("ParseRemove(\"\") err = %v, muốn ErrEmptyDish", err)
	}
	if _, err := ParseRemove("   "); !errors.Is(err, ErrEmptyDish) {
		t.Errorf("ParseRemove(khoảng trắng) err = %v, muốn ErrEmptyDish", err)
	}
}
