package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"lunchbot/model"
)

func newTestFileStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orders.json")
	s, err := NewFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	return s, path
}

func order(date, username, dish string, qty int, lessRice bool) *model.Order {
	return &model.Order{
		Date:      date,
		Username:  username,
		Dish:      dish,
		Quantity:  qty,
		LessRice:  lessRice,
		CreatedAt: time.Now(),
	}
}

func TestFileStoreInsertAndQuery(t *testing.T) {
	s, _ := newTestFileStore(t)
	ctx := context.Background()

	s.Insert(ctx, order("2025-01-06", "an", "Thịt chiên", 2, false))
	s.Insert(ctx, order("2025-01-06", "binh", "Sườn ram", 1, true))
	s.Insert(ctx, order("2025-01-07", "an", "Gà sả", 1, false))

	day, err := s.DayOrders(ctx, "2025-01-06")
	if err != nil {
		t.Fatal(err)
	}
	if len(day) != 2 {
		t.Fatalf("DayOrders muốn 2 đơn, có %d", len(day))
	}
	if day[0].Dish != "Thịt chiên" || day[1].Dish != "Sườn ram" {
		t.Errorf("thứ tự đặt bị đảo: %+v", day)
	}

	mine, err := s.UserOrders(ctx, "2025-01-06", "an")
	if err != nil {
		t.Fatal(err)
	}
	if len(mine) != 1 || mine[0].Dish != "Thịt chiên" || mine[0].Quantity != 2 {
		t.Errorf("UserOrders sai: %+v", mine)
	}
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	s, path := newTestFileStore(t)
	ctx := context.Background()

	s.Insert(ctx, order("2025-01-06", "an", "Thịt chiên", 1, false))

	reopened, err := NewFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	day, err := reopened.DayOrders(ctx, "2025-01-06")
	if err != nil {
		t.Fatal(err)
	}
	if len(day) != 1 || day[0].Dish != "Thịt chiên" {
		t.Errorf("dữ liệu phải sống qua restart: %+v", day)
	}
}

func TestFileStoreDayOrdersByUser(t *testing.T) {
	s, _ := newTestFileStore(t)
	ctx := context.Background()

	s.Insert(ctx, order("2025-01-06", "binh", "Sườn ram", 1, false))
	s.Insert(ctx, order("2025-01-06", "an", "Thịt chiên", 1, false))
	s.Insert(ctx, order("2025-01-06", "an", "Thịt luộc", 1, false))

	got, err := s.DayOrdersByUser(ctx, "2025-01-06")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[0].Username != "an" || got[2].Username != "binh" {
		t.Fatalf("phải sort theo username: %+v", got)
	}
	// Sort stable giữ thứ tự đặt của cùng một user
	if got[0].Dish != "Thịt chiên" || got[1].Dish != "Thịt luộc" {
		t.Errorf("thứ tự đặt trong user bị đảo: %+v", got)
	}
}

func TestFileStoreDeleteUserDish(t *testing.T) {
	s, _ := newTestFileStore(t)
	ctx := context.Background()

	s.Insert(ctx, order("2025-01-06", "an", "Thịt chiên", 1, false))
	s.Insert(ctx, order("2025-01-06", "an", "Thịt chiên", 2, true))
	s.Insert(ctx, order("2025-01-06", "binh", "Thịt chiên", 1, false))

	deleted, err := s.DeleteUserDish(ctx, "2025-01-06", "an", "Thịt chiên")
	if err != nil {
		t.Fatal(err)
	}
	if deleted != 2 {
		t.Errorf("phải xóa cả 2 đơn của an, deleted = %d", deleted)
	}

	// Xóa lần nữa không còn gì
	deleted, err = s.DeleteUserDish(ctx, "2025-01-06", "an", "Thịt chiên")
	if err != nil || deleted != 0 {
		t.Errorf("xóa lần hai phải trả 0, got (%d, %v)", deleted, err)
	}

	// Đơn của người khác còn nguyên
	day, _ := s.DayOrders(ctx, "2025-01-06")
	if len(day) != 1 || day[0].Username != "binh" {
		t.Errorf("đơn của binh phải còn: %+v", day)
	}
}

func TestFileStoreDeleteAll(t *testing.T) {
	s, path := newTestFileStore(t)
	ctx := context.Background()

	s.Insert(ctx, order("2025-01-06", "an", "Thịt chiên", 1, false))
	if err := s.DeleteAll(ctx); err != nil {
		t.Fatal(err)
	}

	reopened, err := NewFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	day, _ := reopened.DayOrders(ctx, "2025-01-06")
	if len(day) != 0 {
		t.Errorf("reset phải xóa sạch file: %+v", day)
	}
}
