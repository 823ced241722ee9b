package store

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"guru-mess-api/internal/config"
	"guru-mess-api/internal/models"

	"github.com/alicebob/miniredis/v2"
)

func strPtr(s string) *string { return &s }

func newContact(i int) *models.ContactMessage {
	return &models.ContactMessage{
		ID:        fmt.Sprintf("contact-%03d", i),
		Name:      "Asha",
		Email:     "a@x.com",
		Message:   fmt.Sprintf("Great food #%d", i),
		CreatedAt: time.Date(2026, 10, 17, 12, 0, i, 0, time.UTC),
	}
}

func newReservation(i int) *models.Reservation {
	return &models.Reservation{
		ID:        fmt.Sprintf("reservation-%03d", i),
		Name:      "Ravi",
		Email:     "r@x.com",
		Phone:     "9876543210",
		Date:      "2026-10-20",
		Time:      "19:30",
		Guests:    i + 1,
		CreatedAt: time.Date(2026, 10, 17, 12, 0, i, 0, time.UTC),
	}
}

// runStoreSuite checks the behaviour every backing shares.
func runStoreSuite(t *testing.T, newStore func(t *testing.T) Store) {
	t.Run("empty", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		contacts, err := s.Contacts(ctx)
		if err != nil {
			t.Fatalf("Contacts: %v", err)
		}
		if len(contacts) != 0 {
			t.Errorf("expected no contacts, got %d", len(contacts))
		}
		reservations, err := s.Reservations(ctx)
		if err != nil {
			t.Fatalf("Reservations: %v", err)
		}
		if len(reservations) != 0 {
			t.Errorf("expected no reservations, got %d", len(reservations))
		}
	})

	t.Run("contacts keep insertion order", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		for i := 0; i < 5; i++ {
			msg := newContact(i)
			if i%2 == 0 {
				msg.Phone = strPtr("555-0100")
			}
			if err := s.AppendContact(ctx, msg); err != nil {
				t.Fatalf("AppendContact(%d): %v", i, err)
			}
		}

		got, err := s.Contacts(ctx)
		if err != nil {
			t.Fatalf("Contacts: %v", err)
		}
		if len(got) != 5 {
			t.Fatalf("expected 5 contacts, got %d", len(got))
		}
		for i, m := range got {
			if m.ID != fmt.Sprintf("contact-%03d", i) {
				t.Errorf("position %d: expected contact-%03d, got %s", i, i, m.ID)
			}
			if i%2 == 0 {
				if m.Phone == nil || *m.Phone != "555-0100" {
					t.Errorf("position %d: expected phone 555-0100, got %v", i, m.Phone)
				}
			} else if m.Phone != nil {
				t.Errorf("position %d: expected absent phone, got %q", i, *m.Phone)
			}
			if !m.CreatedAt.Equal(newContact(i).CreatedAt) {
				t.Errorf("position %d: created_at changed: %v", i, m.CreatedAt)
			}
		}
	})

	t.Run("reservations keep fields", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		first := newReservation(0)
		first.SpecialRequests = strPtr("Window seat")
		if err := s.AppendReservation(ctx, first); err != nil {
			t.Fatalf("AppendReservation: %v", err)
		}
		if err := s.AppendReservation(ctx, newReservation(1)); err != nil {
			t.Fatalf("AppendReservation: %v", err)
		}

		got, err := s.Reservations(ctx)
		if err != nil {
			t.Fatalf("Reservations: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 reservations, got %d", len(got))
		}
		if got[0].ID != "reservation-000" || got[1].ID != "reservation-001" {
			t.Errorf("unexpected order: %s, %s", got[0].ID, got[1].ID)
		}
		if got[0].SpecialRequests == nil || *got[0].SpecialRequests != "Window seat" {
			t.Errorf("expected special request to round-trip, got %v", got[0].SpecialRequests)
		}
		if got[1].SpecialRequests != nil {
			t.Errorf("expected absent special request, got %q", *got[1].SpecialRequests)
		}
		if got[1].Guests != 2 || got[1].Date != "2026-10-20" || got[1].Time != "19:30" {
			t.Errorf("unexpected reservation fields: %+v", got[1])
		}

		contacts, _ := s.Contacts(ctx)
		if len(contacts) != 0 {
			t.Errorf("reservations leaked into contacts: %d", len(contacts))
		}
	})

	t.Run("stored records are isolated from callers", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		msg := newContact(1)
		msg.Phone = strPtr("555-0100")
		if err := s.AppendContact(ctx, msg); err != nil {
			t.Fatalf("AppendContact: %v", err)
		}
		msg.Name = "Changed"
		*msg.Phone = "000"

		got, _ := s.Contacts(ctx)
		got[0].Message = "tampered"

		again, _ := s.Contacts(ctx)
		if again[0].Name != "Asha" || *again[0].Phone != "555-0100" {
			t.Errorf("stored record changed through caller pointer: %+v", again[0])
		}
		if again[0].Message != "Great food #1" {
			t.Errorf("stored record changed through returned slice: %q", again[0].Message)
		}
	})
}

func TestMemoryStore(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) Store {
		return NewMemoryStore()
	})
}

func TestGormStore_SQLite(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) Store {
		s, err := Open(&config.Config{
			StoreDriver: config.DriverSQLite,
			DBPath:      filepath.Join(t.TempDir(), "mess.db"),
		})
		if err != nil {
			t.Fatalf("Open sqlite: %v", err)
		}
		t.Cleanup(func() { s.Close() })
		return s
	})
}

func TestBoltStore(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) Store {
		s, err := NewBoltStore(filepath.Join(t.TempDir(), "mess.bolt"))
		if err != nil {
			t.Fatalf("NewBoltStore: %v", err)
		}
		t.Cleanup(func() { s.Close() })
		return s
	})
}

func TestRedisStore(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) Store {
		mr := miniredis.RunT(t)
		s, err := NewRedisStore(mr.Addr(), "", 0)
		if err != nil {
			t.Fatalf("NewRedisStore: %v", err)
		}
		t.Cleanup(func() { s.Close() })
		return s
	})
}

func TestNewRedisStore_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	if _, err := NewRedisStore(addr, "", 0); err == nil {
		t.Fatal("expected error when Redis is unreachable")
	}
}

func TestBoltStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mess.bolt")
	ctx := context.Background()

	s, err := NewBoltStore(path)
	if err != nil {
		t.Fatalf("NewBoltStore: %v", err)
	}
	if err := s.AppendContact(ctx, newContact(7)); err != nil {
		t.Fatalf("AppendContact: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := NewBoltStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Contacts(ctx)
	if err != nil {
		t.Fatalf("Contacts: %v", err)
	}
	if len(got) != 1 || got[0].ID != "contact-007" {
		t.Errorf("expected contact-007 after reopen, got %+v", got)
	}
}

func TestBoltStore_CanceledContext(t *testing.T) {
	s, err := NewBoltStore(filepath.Join(t.TempDir(), "mess.bolt"))
	if err != nil {
		t.Fatalf("NewBoltStore: %v", err)
	}
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.AppendContact(ctx, newContact(1)); err == nil {
		t.Error("expected error for canceled context")
	}
	got, _ := s.Contacts(context.Background())
	if len(got) != 0 {
		t.Errorf("expected nothing appended, got %d", len(got))
	}
}

func TestMemoryStore_ConcurrentAppendsLoseNothing(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	const writers = 64

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := s.AppendContact(ctx, newContact(i)); err != nil {
				t.Errorf("AppendContact: %v", err)
			}
			if err := s.AppendReservation(ctx, newReservation(i)); err != nil {
				t.Errorf("AppendReservation: %v", err)
			}
		}(i)
	}
	wg.Wait()

	contacts, _ := s.Contacts(ctx)
	reservations, _ := s.Reservations(ctx)
	if len(contacts) != writers {
		t.Errorf("expected %d contacts, got %d", writers, len(contacts))
	}
	if len(reservations) != writers {
		t.Errorf("expected %d reservations, got %d", writers, len(reservations))
	}

	seen := make(map[string]bool)
	for _, m := range contacts {
		if seen[m.ID] {
			t.Errorf("duplicate id %s", m.ID)
		}
		seen[m.ID] = true
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	if _, err := Open(&config.Config{StoreDriver: "cassandra"}); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestOpen_Memory(t *testing.T) {
	s, err := Open(&config.Config{StoreDriver: config.DriverMemory})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, ok := s.(*MemoryStore); !ok {
		t.Errorf("expected *MemoryStore, got %T", s)
	}
}
