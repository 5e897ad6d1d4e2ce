// Package feed publishes the live trade stream. It drains the SPSC ring
// the write path fills and ships JSON events through kafka-go. The feed
// is best-effort by design: the durable path is the broadcaster; losing
// a live event on shutdown or a full ring is acceptable.
package feed

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"mercury/infra/kafka"
	"mercury/infra/ring"
	"mercury/service"
)

type Config struct {
	Interval time.Duration

	// MaxBatch bounds how many events one tick publishes.
	MaxBatch int
}

type Feed struct {
	events   *ring.Buffer[service.TradeEvent]
	producer *kafka.Producer
	interval time.Duration
	maxBatch int
}

func New(events *ring.Buffer[service.TradeEvent], producer *kafka.Producer, cfg Config) *Feed {
	interval := cfg.Interval
	if interval == 0 {
		interval = 50 * time.Millisecond
	}
	maxBatch := cfg.MaxBatch
	if maxBatch == 0 {
		maxBatch = 512
	}
	return &Feed{
		events:   events,
		producer: producer,
		interval: interval,
		maxBatch: maxBatch,
	}
}

func (f *Feed) Run(ctx context.Context) {
	log.Println("[feed] started")

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[feed] stopped")
			return
		case <-ticker.C:
			f.drainOnce(ctx)
		}
	}
}

func (f *Feed) drainOnce(ctx context.Context) {
	msgs := make([]kafkago.Message, 0, f.maxBatch)
	for len(msgs) < f.maxBatch {
		ev, ok := f.events.Dequeue()
		if !ok {
			break
		}
		value, err := json.Marshal(ev)
		if err != nil {
			continue
		}
		msgs = append(msgs, kafkago.Message{
			Key:   []byte(strconv.FormatUint(ev.TradeNo, 10)),
			Value: value,
		})
	}
	if len(msgs) == 0 {
		return
	}

	if err := f.producer.SendBatch(ctx, msgs); err != nil {
		log.Printf("[feed] publish failed, dropped %d events: %v", len(msgs), err)
	}
}
