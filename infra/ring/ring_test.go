package ring

import "testing"

func TestRingFIFO(t *testing.T) {
	r := New[int](4)
	for i := 1; i <= 4; i++ {
		if !r.Enqueue(i) {
			t.Fatalf("enqueue %d failed", i)
		}
	}
	if r.Enqueue(5) {
		t.Fatal("enqueue on full ring must fail")
	}
	for i := 1; i <= 4; i++ {
		v, ok := r.Dequeue()
		if !ok || v != i {
			t.Fatalf("dequeue = %d (ok=%v), want %d", v, ok, i)
		}
	}
	if _, ok := r.Dequeue(); ok {
		t.Fatal("dequeue on empty ring must fail")
	}
}

func TestRingWraparound(t *testing.T) {
	r := New[uint64](2)
	for i := uint64(0); i < 100; i++ {
		if !r.Enqueue(i) {
			t.Fatalf("enqueue %d failed", i)
		}
		v, ok := r.Dequeue()
		if !ok || v != i {
			t.Fatalf("dequeue = %d (ok=%v), want %d", v, ok, i)
		}
	}
	if r.Len() != 0 {
		t.Errorf("len = %d, want 0", r.Len())
	}
}

func TestRingRejectsBadSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non power-of-two size")
		}
	}()
	New[int](3)
}
