// Package snapshot persists the resting book so the entry WAL can be
// truncated. Entries are stored bids-then-asks, best price first, FIFO
// within a level, so loading them through the engine rebuilds identical
// queue order.
package snapshot

import "time"

type Snapshot struct {
	Seq     uint64
	Created time.Time
	Orders  []OrderEntry
}

type OrderEntry struct {
	ID    uint64
	Price uint32
	Qty   uint32
	Side  uint8
}
