// Package event publishes domain events for downstream consumers
// (notification fan-out lives outside this service). Publishing is
// best-effort: a broker failure is logged and never alters the outcome
// of the operation that produced the event.
package event

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	kgo "github.com/segmentio/kafka-go"
)

const (
	PostCreated    = "post.created"
	PostDeleted    = "post.deleted"
	PostLiked      = "post.liked"
	PostUnliked    = "post.unliked"
	CommentCreated = "comment.created"
)

type Envelope struct {
	Type      string    `json:"type"`
	UserID    string    `json:"user_id"`
	CircleID  uint64    `json:"circle_id,omitempty"`
	PostID    uint64    `json:"post_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Writer struct {
	w *kgo.Writer
}

func NewWriter(bootstrapServers, topic string) *Writer {
	addr := strings.TrimSpace(bootstrapServers)
	if addr == "" {
		addr = "localhost:9092"
	}
	w := &kgo.Writer{
		Addr:         kgo.TCP(strings.Split(addr, ",")...),
		Topic:        topic,
		Balancer:     &kgo.LeastBytes{},
		RequiredAcks: kgo.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
	}
	return &Writer{w: w}
}

// Publish writes ev keyed by its type. Safe on a nil receiver so wiring
// without a broker (tests, seeder) needs no stub.
func (wr *Writer) Publish(ctx context.Context, ev Envelope) {
	if wr == nil {
		return
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now()
	}
	b, err := json.Marshal(ev)
	if err != nil {
		log.Printf("event marshal %s: %v", ev.Type, err)
		return
	}
	msg := kgo.Message{Key: []byte(ev.Type), Value: b, Time: ev.CreatedAt}
	if err := wr.w.WriteMessages(ctx, msg); err != nil {
		log.Printf("event publish %s: %v", ev.Type, err)
	}
}

func (wr *Writer) Close() error {
	if wr == nil {
		return nil
	}
	return wr.w.Close()
}
