package store

import (
	"context"
	"sync"

	"guru-mess-api/internal/models"
)

// MemoryStore keeps records in process memory. Everything is lost on restart.
type MemoryStore struct {
	mu           sync.RWMutex
	contacts     []models.ContactMessage
	reservations []models.Reservation
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) AppendContact(_ context.Context, msg *models.ContactMessage) error {
	rec := copyContact(*msg)
	s.mu.Lock()
	s.contacts = append(s.contacts, rec)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) AppendReservation(_ context.Context, r *models.Reservation) error {
	rec := copyReservation(*r)
	s.mu.Lock()
	s.reservations = append(s.reservations, rec)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Contacts(_ context.Context) ([]models.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ContactMessage, len(s.contacts))
	for i, m := range s.contacts {
		out[i] = copyContact(m)
	}
	return out, nil
}

func (s *MemoryStore) Reservations(_ context.Context) ([]models.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Reservation, len(s.reservations))
	for i, r := range s.reservations {
		out[i] = copyReservation(r)
	}
	return out, nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func copyContact(m models.ContactMessage) models.ContactMessage {
	m.Phone = cloneString(m.Phone)
	return m
}

func copyReservation(r models.Reservation) models.Reservation {
	r.SpecialRequests = cloneString(r.SpecialRequests)
	return r
}
