// Package notify traces accepted submissions. Notification failures never
// change the outcome of the request that produced them.
package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
)

const (
	KindContact     = "contact"
	KindReservation = "reservation"
)

// Event describes one accepted record.
type Event struct {
	Kind   string `json:"kind"`
	ID     string `json:"id"`
	Record any    `json:"record"`
}

type Notifier interface {
	Notify(ctx context.Context, event Event) error
	Close() error
}

// LogNotifier writes a diagnostic trace line per record.
type LogNotifier struct {
	logger *log.Logger
}

// NewLogNotifier logs to logger, or to the standard logger when nil.
func NewLogNotifier(logger *log.Logger) *LogNotifier {
	if logger == nil {
		logger = log.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(_ context.Context, event Event) error {
	data, err := json.Marshal(event.Record)
	if err != nil {
		return fmt.Errorf("failed to marshal %s %s: %w", event.Kind, event.ID, err)
	}
	n.logger.Printf("New %s received: %s", event.Kind, data)
	return nil
}

func (n *LogNotifier) Close() error {
	return nil
}

// Multi fans an event out to every notifier and joins their errors.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, event Event) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m Multi) Close() error {
	var errs []error
	for _, n := range m {
		if err := n.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
