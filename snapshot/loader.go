package snapshot

import (
	"fmt"
	"os"
	"path/filepath"

	"mercury/domain/engine"
)

// Load restores a snapshot into the engine and returns the sequence it
// covers. A missing snapshot file is not an error: the book starts empty
// and the WAL replays from zero.
//
// Entries were written best-first and FIFO within each level, and a
// snapshotted book is never crossed, so feeding them back produces no
// fills and reconstructs identical time priority.
func Load(dir string, codec Codec, e *engine.Engine) (uint64, error) {
	f, err := os.Open(filepath.Join(dir, fileName))
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	defer f.Close()

	if codec == nil {
		codec = GobCodec{}
	}
	s, err := codec.Decode(f)
	if err != nil {
		return 0, err
	}

	for _, o := range s.Orders {
		if err := e.ProcessNewOrder(o.ID, o.Price, o.Qty, engine.Side(o.Side)); err != nil {
			return 0, fmt.Errorf("snapshot: restore order %d: %w", o.ID, err)
		}
	}

	return s.Seq, nil
}
