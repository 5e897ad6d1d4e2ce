//go:build !enginecheck

package engine

// Release builds carry no per-slot bookkeeping.
type arenaCheck struct{}

func newArenaCheck(int) arenaCheck { return arenaCheck{} }

func (a *Arena) markAllocated(Handle) {}

func (a *Arena) markFreed(Handle) {}
