package engine

import "testing"

func TestArenaAllocateInitializes(t *testing.T) {
	a := NewArena(8)
	h, err := a.Allocate(42, 100, 7, Sell)
	if err != nil {
		t.Fatal(err)
	}
	o := a.At(h)
	if o.ID != 42 || o.Price != 100 || o.Qty != 7 || o.Side != Sell {
		t.Fatalf("unexpected record %+v", o)
	}
	if o.prev != NilHandle || o.next != NilHandle {
		t.Error("sibling links must be nil on a fresh record")
	}
	if a.Free() != 7 {
		t.Errorf("free = %d, want 7", a.Free())
	}
}

func TestArenaExhaustion(t *testing.T) {
	a := NewArena(2)
	if _, err := a.Allocate(1, 0, 1, Buy); err != nil {
		t.Fatal(err)
	}
	if _, err := a.Allocate(2, 0, 1, Buy); err != nil {
		t.Fatal(err)
	}
	if _, err := a.Allocate(3, 0, 1, Buy); err != ErrArenaExhausted {
		t.Fatalf("expected ErrArenaExhausted, got %v", err)
	}
}

func TestArenaLIFOReuse(t *testing.T) {
	a := NewArena(4)
	h1, _ := a.Allocate(1, 0, 1, Buy)
	h2, _ := a.Allocate(2, 0, 1, Buy)

	a.Deallocate(h2)
	a.Deallocate(h1)

	// Most recently freed slot comes back first.
	got, _ := a.Allocate(3, 0, 1, Buy)
	if got != h1 {
		t.Errorf("reused handle = %d, want %d (LIFO)", got, h1)
	}
	got, _ = a.Allocate(4, 0, 1, Buy)
	if got != h2 {
		t.Errorf("reused handle = %d, want %d (LIFO)", got, h2)
	}
}

func TestArenaHandleStability(t *testing.T) {
	a := NewArena(16)
	h, _ := a.Allocate(1, 10, 5, Buy)
	p := a.At(h)

	for i := 2; i <= 10; i++ {
		if _, err := a.Allocate(uint64(i), 10, 5, Buy); err != nil {
			t.Fatal(err)
		}
	}
	if a.At(h) != p {
		t.Error("record address moved while allocated")
	}
	if p.ID != 1 {
		t.Errorf("record clobbered: id = %d", p.ID)
	}
}
