package service

import (
	"context"
	"log"
	"time"

	"mercury/snapshot"
)

// StartSnapshotJob periodically snapshots the book, then truncates the
// entry WAL and garbage-collects acked outbox trades the snapshot covers.
func (s *OrderService) StartSnapshotJob(ctx context.Context, dir string, interval time.Duration) {
	w := &snapshot.Writer{Dir: dir}

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.snapshotOnce(w)
			}
		}
	}()
}

func (s *OrderService) snapshotOnce(w *snapshot.Writer) {
	s.mu.Lock()
	seq := s.seqGen.Current()
	tradeNo := s.eng.TradesExecuted()
	err := w.Write(seq, s.eng)
	s.mu.Unlock()

	if err != nil {
		log.Printf("[snapshot] write failed: %v", err)
		return
	}

	if s.wal != nil {
		if err := s.wal.TruncateBefore(seq); err != nil {
			log.Printf("[snapshot] wal truncate failed: %v", err)
		}
	}
	if s.outbox != nil {
		if err := s.outbox.TruncateAckedUpTo(tradeNo); err != nil {
			log.Printf("[snapshot] outbox gc failed: %v", err)
		}
	}
}
