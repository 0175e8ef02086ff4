package kafka

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
)

// Writer wraps a kafka-go writer tuned for the outbox relay: full acks so
// a marked-sent event is really on the broker, and a short batch window
// since the relay already batches upstream.
type Writer struct {
	w *kafka.Writer
}

func NewWriter(brokers []string) *Writer {
	return &Writer{
		w: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Balancer:               &kafka.LeastBytes{},
			RequiredAcks:           kafka.RequireAll,
			BatchTimeout:           50 * time.Millisecond,
			AllowAutoTopicCreation: true,
		},
	}
}

func (w *Writer) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	return w.w.WriteMessages(ctx, msgs...)
}

func (w *Writer) Close() error {
	return w.w.Close()
}
