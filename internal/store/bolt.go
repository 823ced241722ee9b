package store

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"time"

	"guru-mess-api/internal/models"

	"go.etcd.io/bbolt"
)

var (
	contactsBucket     = []byte("contact_messages")
	reservationsBucket = []byte("reservations")
)

// BoltStore keeps records in a bbolt file. Keys are big-endian bucket
// sequence numbers, so a cursor walks records in insertion order.
type BoltStore struct {
	db *bbolt.DB
}

var _ Store = (*BoltStore)(nil)

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(contactsBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(reservationsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) AppendContact(ctx context.Context, msg *models.ContactMessage) error {
	return s.put(ctx, contactsBucket, msg)
}

func (s *BoltStore) AppendReservation(ctx context.Context, r *models.Reservation) error {
	return s.put(ctx, reservationsBucket, r)
}

func (s *BoltStore) Contacts(ctx context.Context) ([]models.ContactMessage, error) {
	raw, err := s.all(ctx, contactsBucket)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.ContactMessage](raw)
}

func (s *BoltStore) Reservations(ctx context.Context) ([]models.Reservation, error) {
	raw, err := s.all(ctx, reservationsBucket)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Reservation](raw)
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

func (s *BoltStore) put(ctx context.Context, bucket []byte, record any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucket)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)
		return b.Put(key, data)
	})
}

func (s *BoltStore) all(ctx context.Context, bucket []byte) ([][]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var raw [][]byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucket).ForEach(func(_, v []byte) error {
			// v is only valid inside the transaction
			raw = append(raw, append([]byte(nil), v...))
			return nil
		})
	})
	return raw, err
}
