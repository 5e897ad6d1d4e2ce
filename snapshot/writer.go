package snapshot

import (
	"os"
	"path/filepath"
	"time"

	"mercury/domain/engine"
)

type Writer struct {
	Dir   string
	Codec Codec
}

const fileName = "snapshot.bin"

// Write dumps every resting order at the given sequence. The file is
// written to a temp name and renamed so a crash mid-write never leaves a
// torn snapshot behind.
func (w *Writer) Write(seq uint64, e *engine.Engine) error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return err
	}

	s := Snapshot{
		Seq:     seq,
		Created: time.Now(),
		Orders:  make([]OrderEntry, 0, 1024),
	}

	collect := func(price uint32, o *engine.Order) bool {
		s.Orders = append(s.Orders, OrderEntry{
			ID:    o.ID,
			Price: price,
			Qty:   o.Qty,
			Side:  uint8(o.Side),
		})
		return true
	}
	e.VisitBids(collect)
	e.VisitAsks(collect)

	codec := w.Codec
	if codec == nil {
		codec = GobCodec{}
	}

	tmp := filepath.Join(w.Dir, fileName+".tmp")
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := codec.Encode(f, &s); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, filepath.Join(w.Dir, fileName))
}
