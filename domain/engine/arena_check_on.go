//go:build enginecheck

package engine

// Debug builds (-tags enginecheck) track slot liveness so a double free,
// or freeing a record still linked into a queue, trips a panic instead of
// corrupting the free stack. Arena.At does not consult liveness, so a read
// through a freed handle is not detected.
type arenaCheck struct {
	live []bool
}

func newArenaCheck(capacity int) arenaCheck {
	return arenaCheck{live: make([]bool, capacity)}
}

func (a *Arena) markAllocated(h Handle) {
	if a.check.live[h] {
		panic("engine: slot allocated twice")
	}
	a.check.live[h] = true
}

func (a *Arena) markFreed(h Handle) {
	if !a.check.live[h] {
		panic("engine: double free")
	}
	o := &a.slots[h]
	if o.prev != NilHandle || o.next != NilHandle {
		panic("engine: freeing order still linked in a queue")
	}
	a.check.live[h] = false
}
