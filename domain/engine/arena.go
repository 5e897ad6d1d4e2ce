package engine

import "errors"

// ErrArenaExhausted is returned when no free order slot exists. The order
// that hit it is rejected whole; engine state is unchanged.
var ErrArenaExhausted = errors.New("engine: arena exhausted")

// Arena is a fixed-capacity slab of order records plus a LIFO stack of
// free indices. The stack is LIFO so recently freed slots, still warm in
// cache, are handed out first. Capacity is set once at construction.
type Arena struct {
	slots []Order
	free  []Handle
	check arenaCheck
}

// NewArena builds an arena of the given capacity with every slot free.
func NewArena(capacity int) *Arena {
	a := &Arena{
		slots: make([]Order, capacity),
		free:  make([]Handle, capacity),
		check: newArenaCheck(capacity),
	}
	for i := range a.free {
		a.free[i] = Handle(capacity - 1 - i)
	}
	return a
}

// Allocate pops a free slot and initializes it with the supplied fields,
// sibling links cleared. Fails with ErrArenaExhausted when the arena is
// full.
func (a *Arena) Allocate(id uint64, price, qty uint32, side Side) (Handle, error) {
	n := len(a.free)
	if n == 0 {
		return NilHandle, ErrArenaExhausted
	}
	h := a.free[n-1]
	a.free = a.free[:n-1]

	o := &a.slots[h]
	o.ID = id
	o.Price = price
	o.Qty = qty
	o.Side = side
	o.prev = NilHandle
	o.next = NilHandle

	a.markAllocated(h)
	return h, nil
}

// Deallocate returns a slot to the free stack. The handle must be
// allocated and not linked into any queue.
func (a *Arena) Deallocate(h Handle) {
	a.markFreed(h)
	a.free = append(a.free, h)
}

// At resolves a handle to its record. The pointer is stable until the
// record is deallocated.
func (a *Arena) At(h Handle) *Order {
	return &a.slots[h]
}

// Cap is the fixed slot count.
func (a *Arena) Cap() int {
	return len(a.slots)
}

// Free is the number of unallocated slots.
func (a *Arena) Free() int {
	return len(a.free)
}
