package summary

import (
	"lunchbot/constants"
	"lunchbot/model"

	"github.com/jinzhu/copier"
)

// DishCount là một dòng tổng hợp theo món. Key đã gồm hậu tố " (ít cơm)"
// nên cùng một món đặt ít cơm và bình thường là hai dòng riêng.
type DishCount struct {
	Key      string
	Quantity int
}

// UserOrders là danh sách món một người đã đặt trong ngày
type UserOrders struct {
	Username string
	Items    []model.OrderItem
}

// Day cộng dồn số phần theo món, giữ thứ tự món xuất hiện lần đầu
func Day(orders []model.Order) []DishCount {
	index := make(map[string]int, len(orders))
	var counts []DishCount

	for _, o := range orders {
		key := o.Dish
		if o.LessRice {
			key += constants.LESS_RICE_SUFFIX
		}
		if i, ok := index[key]; ok {
			counts[i].Quantity += o.Quantity
			continue
		}
		index[key] = len(counts)
		counts = append(counts, DishCount{Key: key, Quantity: o.Quantity})
	}
	return counts
}

// FullDay gom đơn theo từng người, giữ thứ tự người xuất hiện trong input
// (store đã sort theo username) và thứ tự đặt trong mỗi người
func FullDay(orders []model.Order) []UserOrders {
	index := make(map[string]int, len(orders))
	var users []UserOrders

	for _, o := range orders {
		var item model.OrderItem
		copier.Copy(&item, &o)

		if i, ok := index[o.Username]; ok {
			users[i].Items = append(users[i].Items, item)
			continue
		}
		index[o.Username] = len(users)
		users = append(users, UserOrders{
			Username: o.Username,
			Items:    []model.OrderItem{item},
		})
	}
	return users
}
