package service

import (
	"errors"
	"fmt"
	"log"

	"mercury/domain/engine"
	entrywal "mercury/infra/wal/entry"
	"mercury/snapshot"
)

// Recover rebuilds the book before the service accepts traffic: load the
// latest snapshot, replay every WAL record past it, and resume the
// sequencer at the high-water mark.
//
// Replayed orders run straight against the engine: no WAL re-append and
// no outbox writes, since their trades were already made durable before
// the restart. Fills re-derive deterministically, which also restores the
// global trade numbering.
func (s *OrderService) Recover(walDir, snapshotDir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapSeq, err := snapshot.Load(snapshotDir, nil, s.eng)
	if err != nil {
		return fmt.Errorf("service: snapshot load: %w", err)
	}

	lastSeq, err := entrywal.Replay(walDir, snapSeq, func(rec *entrywal.Record) error {
		if rec.Type != entrywal.RecordPlace {
			return nil
		}
		id, price, qty, side, err := decodeOrderPayload(rec.Data)
		if err != nil {
			return err
		}

		s.tradeBuf = s.tradeBuf[:0]
		err = s.eng.ProcessNewOrder(id, price, qty, side)
		switch {
		case err == nil:
			s.accepted++
		case errors.Is(err, engine.ErrInvalidOrder), errors.Is(err, engine.ErrArenaExhausted):
			// The original run rejected it the same way; keep going.
			s.rejected++
		default:
			return err
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("service: wal replay: %w", err)
	}

	s.seqGen.Reset(lastSeq)
	log.Printf("[service] recovery complete: snapshot seq=%d, wal seq=%d, resting=%d",
		snapSeq, lastSeq, s.eng.RestingOrders())
	return nil
}
