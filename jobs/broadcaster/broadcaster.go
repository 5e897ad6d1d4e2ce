// Package broadcaster ships executed trades from the durable outbox to
// Kafka. Delivery is at-least-once: a trade is marked SENT before the
// publish and ACKED only after the broker confirms, so a crash in between
// re-sends rather than drops.
package broadcaster

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/IBM/sarama"

	exitwal "mercury/infra/wal/exit"
)

type Config struct {
	Brokers  []string
	Topic    string
	Interval time.Duration

	// MaxRetries gives up on a trade (FAILED) after this many attempts.
	// Zero means retry forever.
	MaxRetries uint32
}

type Broadcaster struct {
	outbox   *exitwal.WAL
	producer sarama.SyncProducer
	topic    string
	interval time.Duration
	maxRetry uint32
}

func New(outbox *exitwal.WAL, cfg Config) (*Broadcaster, error) {
	scfg := sarama.NewConfig()
	scfg.Producer.Return.Successes = true
	scfg.Producer.RequiredAcks = sarama.WaitForAll
	scfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(cfg.Brokers, scfg)
	if err != nil {
		return nil, err
	}

	interval := cfg.Interval
	if interval == 0 {
		interval = 250 * time.Millisecond
	}

	return &Broadcaster{
		outbox:   outbox,
		producer: producer,
		topic:    cfg.Topic,
		interval: interval,
		maxRetry: cfg.MaxRetries,
	}, nil
}

func (b *Broadcaster) Run(ctx context.Context) {
	log.Println("[broadcaster] started")

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[broadcaster] stopped")
			return
		case <-ticker.C:
			b.drainOnce()
		}
	}
}

// drainOnce publishes NEW trades, then re-attempts SENT trades left over
// from a previous crash or broker outage.
func (b *Broadcaster) drainOnce() {
	_ = b.outbox.ScanByState(exitwal.StateNew, b.attempt)
	_ = b.outbox.ScanByState(exitwal.StateSent, b.attempt)
}

func (b *Broadcaster) attempt(seq uint64, rec exitwal.Record) error {
	if b.maxRetry > 0 && rec.Retries >= b.maxRetry {
		_ = b.outbox.UpdateState(seq, exitwal.StateFailed, rec.Retries)
		log.Printf("[broadcaster] trade %d failed after %d attempts", seq, rec.Retries)
		return nil
	}

	// Mark SENT first so a crash mid-publish re-delivers instead of
	// losing the trade.
	if err := b.outbox.UpdateState(seq, exitwal.StateSent, rec.Retries+1); err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: b.topic,
		Key:   sarama.StringEncoder(strconv.FormatUint(seq, 10)),
		Value: sarama.ByteEncoder(rec.Payload),
	}
	if _, _, err := b.producer.SendMessage(msg); err != nil {
		// Stays SENT; picked up again next tick.
		return nil
	}

	return b.outbox.UpdateState(seq, exitwal.StateAcked, rec.Retries+1)
}

func (b *Broadcaster) Close() error {
	return b.producer.Close()
}
