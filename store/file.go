package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"lunchbot/model"

	"github.com/google/uuid"
)

// FileStore lưu đơn vào một file JSON phẳng, dùng khi chạy local không có
// Postgres. Mọi thao tác ghi đều rewrite cả file (ghi file tạm rồi rename
// để không bao giờ để lại file hỏng giữa chừng).
type FileStore struct {
	mu      sync.Mutex
	path    string
	records []fileOrder
}

type fileOrder struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Username  string    `json:"username"`
	Dish      string    `json:"dish"`
	Quantity  int       `json:"quantity"`
	LessRice  bool      `json:"lessRice"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.records); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *FileStore) Insert(ctx context.Context, order *model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := fileOrder{
		ID:        uuid.NewString(),
		Date:      order.Date,
		Username:  order.Username,
		Dish:      order.Dish,
		Quantity:  order.Quantity,
		LessRice:  order.LessRice,
		CreatedAt: order.CreatedAt,
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	s.records = append(s.records, rec)
	if err := s.flush(); err != nil {
		// Ghi hỏng thì bỏ record vừa thêm để bộ nhớ khớp với file
		s.records = s.records[:len(s.records)-1]
		return err
	}
	return nil
}

func (s *FileStore) UserOrders(ctx context.Context, date, username string) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var orders []model.Order
	for _, r := range s.records {
		if r.Date == date && r.Username == username {
			orders = append(orders, r.toOrder())
		}
	}
	return orders, nil
}

func (s *FileStore) DayOrders(ctx context.Context, date string) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var orders []model.Order
	for _, r := range s.records {
		if r.Date == date {
			orders = append(orders, r.toOrder())
		}
	}
	return orders, nil
}

func (s *FileStore) DayOrdersByUser(ctx context.Context, date string) ([]model.Order, error) {
	orders, err := s.DayOrders(ctx, date)
	if err != nil {
		return nil, err
	}
	// Sort stable giữ nguyên thứ tự đặt trong cùng một user
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Username < orders[j].Username
	})
	return orders, nil
}

func (s *FileStore) DeleteUserDish(ctx context.Context, date, username, dish string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.records[:0]
	var deleted int64
	for _, r := range s.records {
		if r.Date == date && r.Username == username && r.Dish == dish {
			deleted++
			continue
		}
		kept = append(kept, r)
	}
	if deleted == 0 {
		return 0, nil
	}

	s.records = kept
	if err := s.flush(); err != nil {
		return 0, err
	}
	return deleted, nil
}

func (s *FileStore) DeleteAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	return s.flush()
}

// flush ghi toàn bộ records ra file, caller phải giữ lock
func (s *FileStore) flush() error {
	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "orders-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

func (r fileOrder) toOrder() model.Order {
	return model.Order{
		Date:      r.Date,
		Username:  r.Username,
		Dish:      r.Dish,
		Quantity:  r.Quantity,
		LessRice:  r.LessRice,
		CreatedAt: r.CreatedAt,
	}
}
