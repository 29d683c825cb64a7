package store

import (
	"context"

	"lunchbot/model"
)

// OrderStore là ranh giới persistence của bot. Hai implementation:
// GormStore (Postgres) và FileStore (file JSON), chọn qua STORAGE_DRIVER.
// Phần core (command.Router) chỉ biết interface này.
type OrderStore interface {
	// Insert thêm một đơn mới
	Insert(ctx context.Context, order *model.Order) error

	// UserOrders trả về đơn của một người trong ngày, theo thứ tự đặt
	UserOrders(ctx context.Context, date, username string) ([]model.Order, error)

	// DayOrders trả về mọi đơn trong ngày, theo thứ tự đặt
	DayOrders(ctx context.Context, date string) ([]model.Order, error)

	// DayOrdersByUser trả về mọi đơn trong ngày, sắp theo username rồi thứ tự đặt
	DayOrdersByUser(ctx context.Context, date string) ([]model.Order, error)

	// DeleteUserDish xóa mọi đơn của một người cho một món trong ngày,
	// trả về số đơn đã xóa (0 = chưa đặt món đó)
	DeleteUserDish(ctx context.Context, date, username, dish string) (int64, error)

	// DeleteAll xóa toàn bộ dữ liệu đơn (lệnh /resetdata)
	DeleteAll(ctx context.Context) error
}
