package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"guru-mess-api/internal/models"

	"github.com/go-redis/redis/v8"
)

const (
	contactsKey     = "guru_mess:contact_messages"
	reservationsKey = "guru_mess:reservations"
)

// RedisStore keeps each record kind in a Redis list of JSON documents.
type RedisStore struct {
	client *redis.Client
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore connects and pings the server; unlike a cache, the store is
// useless without Redis, so an unreachable server is an error.
func NewRedisStore(addr, password string, db int) (*RedisStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}

	log.Printf("Connected to Redis at %s", addr)
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) AppendContact(ctx context.Context, msg *models.ContactMessage) error {
	return s.push(ctx, contactsKey, msg)
}

func (s *RedisStore) AppendReservation(ctx context.Context, r *models.Reservation) error {
	return s.push(ctx, reservationsKey, r)
}

func (s *RedisStore) Contacts(ctx context.Context) ([]models.ContactMessage, error) {
	raw, err := s.rangeAll(ctx, contactsKey)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.ContactMessage](raw)
}

func (s *RedisStore) Reservations(ctx context.Context) ([]models.Reservation, error) {
	raw, err := s.rangeAll(ctx, reservationsKey)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Reservation](raw)
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) push(ctx context.Context, key string, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return s.client.RPush(ctx, key, data).Err()
}

func (s *RedisStore) rangeAll(ctx context.Context, key string) ([][]byte, error) {
	values, err := s.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	raw := make([][]byte, len(values))
	for i, v := range values {
		raw[i] = []byte(v)
	}
	return raw, nil
}
