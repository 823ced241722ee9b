package store

import (
	"context"

	"guru-mess-api/internal/models"

	"gorm.io/gorm"
)

// GormStore persists records to SQLite, PostgreSQL or MySQL. The
// auto-increment Seq column keeps insertion order.
type GormStore struct {
	db *gorm.DB
}

var _ Store = (*GormStore)(nil)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) AppendContact(ctx context.Context, msg *models.ContactMessage) error {
	rec := *msg
	rec.Seq = 0
	return s.db.WithContext(ctx).Create(&rec).Error
}

func (s *GormStore) AppendReservation(ctx context.Context, r *models.Reservation) error {
	rec := *r
	rec.Seq = 0
	return s.db.WithContext(ctx).Create(&rec).Error
}

func (s *GormStore) Contacts(ctx context.Context) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	if err := s.db.WithContext(ctx).Order("seq").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *GormStore) Reservations(ctx context.Context) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := s.db.WithContext(ctx).Order("seq").Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
