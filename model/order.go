package model

import "time"

// Order là một đơn đặt món đã được resolve theo menu, lưu trong store.
// Dish luôn là tên món đúng chính tả trong menu (không phải text người dùng gõ).
type Order struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      string    `gorm:"size:10;not null;index:idx_orders_date;index:idx_orders_date_user,priority:1" json:"date" validate:"required,datetime=2006-01-02"`
	Username  string    `gorm:"size:100;not null;index:idx_orders_date_user,priority:2" json:"username" validate:"required"`
	Dish      string    `gorm:"size:100;not null" json:"dish" validate:"required"`
	Quantity  int       `gorm:"not null" json:"quantity" validate:"required,min=1"`
	LessRice  bool      `gorm:"default:false" json:"lessRice"`
	CreatedAt time.Time `json:"createdAt"`
}

// OrderIntent là kết quả parse lệnh /order, chưa đối chiếu menu.
// Không lưu xuống store, chỉ dùng trong một request.
type OrderIntent struct {
	DishText string
	Quantity int
	LessRice bool
}

// OrderItem là một dòng món dùng cho hiển thị (/myorders, /fullsummary)
type OrderItem struct {
	Dish     string `json:"dish"`
	Quantity int    `json:"quantity"`
	LessRice bool   `json:"lessRice"`
}

// IncomingMessage là tin nhắn đã rút gọn từ Telegram update
type IncomingMessage struct {
	Text     string
	ChatID   string
	Username string
}
