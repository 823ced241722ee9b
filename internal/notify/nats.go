package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/nats-io/nats.go"
)

// NatsNotifier publishes each event as JSON on <prefix>.<kind>, e.g.
// guru_mess.submissions.reservation, for kitchen or staff consumers.
type NatsNotifier struct {
	nc     *nats.Conn
	prefix string
	closed chan struct{}
}

const drainTimeout = 10 * time.Second

func NewNatsNotifier(url, prefix string) (*NatsNotifier, error) {
	closed := make(chan struct{})
	nc, err := nats.Connect(url,
		nats.Name("guru-mess-api"),
		nats.Timeout(5*time.Second),
		nats.DrainTimeout(drainTimeout),
		nats.ClosedHandler(func(*nats.Conn) { close(closed) }),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	log.Printf("Connected to NATS at %s", nc.ConnectedUrl())
	return &NatsNotifier{nc: nc, prefix: prefix, closed: closed}, nil
}

func (n *NatsNotifier) Notify(_ context.Context, event Event) error {
	subject := Subject(n.prefix, event.Kind)
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if err := n.nc.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish to subject '%s': %w", subject, err)
	}
	return nil
}

// Close flushes pending publishes and returns once the connection is closed.
func (n *NatsNotifier) Close() error {
	if n.nc == nil {
		return nil
	}
	if err := n.nc.Drain(); err != nil {
		n.nc.Close()
		return err
	}
	select {
	case <-n.closed:
		return nil
	case <-time.After(drainTimeout + time.Second):
		n.nc.Close()
		return fmt.Errorf("timed out draining NATS connection")
	}
}

func Subject(prefix, kind string) string {
	return fmt.Sprintf("%s.%s", prefix, kind)
}
