// Package store keeps accepted submissions. Every backing is append-only:
// records are never updated or deleted, and lists come back in insertion order.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"guru-mess-api/internal/config"
	"guru-mess-api/internal/database"
	"guru-mess-api/internal/models"
)

type Store interface {
	AppendContact(ctx context.Context, msg *models.ContactMessage) error
	AppendReservation(ctx context.Context, r *models.Reservation) error
	Contacts(ctx context.Context) ([]models.ContactMessage, error)
	Reservations(ctx context.Context) ([]models.Reservation, error)
	Close() error
}

// Open builds the store selected by cfg.StoreDriver.
func Open(cfg *config.Config) (Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		return NewMemoryStore(), nil
	case config.DriverSQLite, config.DriverPostgres, config.DriverMySQL:
		db, err := database.Open(cfg)
		if err != nil {
			return nil, err
		}
		return NewGormStore(db), nil
	case config.DriverRedis:
		return NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	case config.DriverBolt:
		return NewBoltStore(cfg.BoltPath)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func decodeAll[T any](raw [][]byte) ([]T, error) {
	out := make([]T, 0, len(raw))
	for _, data := range raw {
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decode record: %w", err)
		}
		out = append(out, v)
	}
	return out, nil
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
