package engine

import "testing"

func TestIndexEmpty(t *testing.T) {
	var x PriceIndex
	if x.Lowest() != NoPrice {
		t.Errorf("Lowest on empty = %d, want NoPrice", x.Lowest())
	}
	if x.Highest() != NoPrice {
		t.Errorf("Highest on empty = %d, want NoPrice", x.Highest())
	}
}

func TestIndexSetClear(t *testing.T) {
	var x PriceIndex
	x.Set(100)
	x.Set(2000)
	x.Set(0)

	if x.Lowest() != 0 {
		t.Errorf("Lowest = %d, want 0", x.Lowest())
	}
	if x.Highest() != 2000 {
		t.Errorf("Highest = %d, want 2000", x.Highest())
	}

	x.Clear(0)
	if x.Lowest() != 100 {
		t.Errorf("Lowest after clear = %d, want 100", x.Lowest())
	}
	x.Clear(2000)
	if x.Highest() != 100 {
		t.Errorf("Highest after clear = %d, want 100", x.Highest())
	}
	x.Clear(100)
	if x.Lowest() != NoPrice || x.Highest() != NoPrice {
		t.Error("index should be empty")
	}
}

func TestIndexWordBoundaries(t *testing.T) {
	var x PriceIndex
	// 63 and 64 sit in adjacent data words.
	x.Set(63)
	x.Set(64)

	if x.Lowest() != 63 {
		t.Errorf("Lowest = %d, want 63", x.Lowest())
	}
	if x.Highest() != 64 {
		t.Errorf("Highest = %d, want 64", x.Highest())
	}

	x.Clear(63)
	if x.Lowest() != 64 {
		t.Errorf("Lowest = %d, want 64", x.Lowest())
	}

	x.Set(MaxPriceTicks - 1)
	if x.Highest() != MaxPriceTicks-1 {
		t.Errorf("Highest = %d, want %d", x.Highest(), MaxPriceTicks-1)
	}
}

func TestIndexIdempotent(t *testing.T) {
	var x PriceIndex
	x.Set(77)
	x.Set(77)
	if !x.Active(77) || x.Lowest() != 77 || x.Highest() != 77 {
		t.Error("repeated Set changed state")
	}

	x.Clear(77)
	x.Clear(77)
	x.Clear(500) // never set
	if x.Active(77) || x.Lowest() != NoPrice {
		t.Error("repeated Clear changed state")
	}
}

func TestIndexSummaryTracksWords(t *testing.T) {
	var x PriceIndex
	for p := uint32(0); p < MaxPriceTicks; p += 129 {
		x.Set(p)
	}
	for w, word := range x.words {
		has := x.summary&(1<<uint(w)) != 0
		if has != (word != 0) {
			t.Fatalf("summary bit %d = %v, word = %#x", w, has, word)
		}
	}
	for p := uint32(0); p < MaxPriceTicks; p += 129 {
		x.Clear(p)
	}
	if x.summary != 0 {
		t.Fatalf("summary = %#x after clearing all, want 0", x.summary)
	}
}
