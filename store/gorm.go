package store

import (
	"context"

	"lunchbot/model"

	"gorm.io/gorm"
)

// GormStore lưu đơn vào Postgres qua GORM
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Insert(ctx context.Context, order *model.Order) error {
	return s.db.WithContext(ctx).Create(order).Error
}

func (s *GormStore) UserOrders(ctx context.Context, date, username string) ([]model.Order, error) {
	var orders []model.Order
	err := s.db.WithContext(ctx).
		Where("date = ? AND username = ?", date, username).
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}

func (s *GormStore) DayOrders(ctx context.Context, date string) ([]model.Order, error) {
	var orders []model.Order
	err := s.db.WithContext(ctx).
		Where("date = ?", date).
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}

func (s *GormStore) DayOrdersByUser(ctx context.Context, date string) ([]model.Order, error) {
	var orders []model.Order
	err := s.db.WithContext(ctx).
		Where("date = ?", date).
		Order("username ASC, created_at ASC").
		Find(&orders).Error
	return orders, err
}

func (s *GormStore) DeleteUserDish(ctx context.Context, date, username, dish string) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("date = ? AND username = ? AND dish = ?", date, username, dish).
		Delete(&model.Order{})
	return result.RowsAffected, result.Error
}

func (s *GormStore) DeleteAll(ctx context.Context) error {
	return s.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.Order{}).Error
}
