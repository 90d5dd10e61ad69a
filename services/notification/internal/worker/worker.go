// Package worker drains the notification queue and dispatches each event to
// the configured notifiers.
package worker

import (
	"context"
	"errors"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/sarthakSixt/rental/services/notification/internal/events"
	"github.com/sarthakSixt/rental/services/notification/internal/notifier"
)

// Source is the consuming side of the queue; satisfied by *mq.Consumer.
type Source interface {
	Deliveries(ctx context.Context) (<-chan amqp.Delivery, error)
}

type Worker struct {
	src       Source
	notifiers []notifier.Notifier
}

func New(src Source, notifiers ...notifier.Notifier) *Worker {
	return &Worker{src: src, notifiers: notifiers}
}

// Run blocks until ctx is cancelled or the delivery channel closes. Unknown
// and undecodable events are acked and dropped; delivery failures nack with
// requeue so a flaky notifier gets another shot.
func (w *Worker) Run(ctx context.Context) error {
	deliveries, err := w.src.Deliveries(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, open := <-deliveries:
			if !open {
				return nil
			}
			w.handle(ctx, d)
		}
	}
}

func (w *Worker) handle(ctx context.Context, d amqp.Delivery) {
	text, err := events.Describe(d.RoutingKey, d.Body)
	if err != nil {
		var unknown events.ErrUnknownKey
		if !errors.As(err, &unknown) {
			log.Printf("[worker] drop %s: %v", d.RoutingKey, err)
		}
		_ = d.Ack(false)
		return
	}
	for _, n := range w.notifiers {
		if err := n.Notify(ctx, text); err != nil {
			log.Printf("[worker] notify %s: %v", d.RoutingKey, err)
			_ = d.Nack(false, true)
			return
		}
	}
	_ = d.Ack(false)
}
