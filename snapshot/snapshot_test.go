package snapshot

import (
	"testing"

	"mercury/domain/engine"
)

func TestWriteAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	src := engine.New(engine.Config{ArenaCapacity: 64})
	place := func(id uint64, price, qty uint32, side engine.Side) {
		t.Helper()
		if err := src.ProcessNewOrder(id, price, qty, side); err != nil {
			t.Fatal(err)
		}
	}
	place(1, 100, 5, engine.Buy)
	place(2, 100, 3, engine.Buy) // second in line at 100
	place(3, 99, 7, engine.Buy)
	place(4, 105, 2, engine.Sell)

	w := &Writer{Dir: dir}
	if err := w.Write(42, src); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}

	dst := engine.New(engine.Config{
		ArenaCapacity: 64,
		OnTrade: func(engine.Trade) {
			t.Fatal("restoring a snapshot must not produce fills")
		},
	})
	seq, err := Load(dir, nil, dst)
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if seq != 42 {
		t.Errorf("seq = %d, want 42", seq)
	}
	if dst.RestingOrders() != 4 {
		t.Errorf("resting = %d, want 4", dst.RestingOrders())
	}

	// FIFO at tick 100 must survive the round trip.
	var at100 []uint64
	dst.VisitBids(func(price uint32, o *engine.Order) bool {
		if price == 100 {
			at100 = append(at100, o.ID)
		}
		return true
	})
	if len(at100) != 2 || at100[0] != 1 || at100[1] != 2 {
		t.Fatalf("tick 100 queue = %v, want [1 2]", at100)
	}
}

func TestLoadMissingSnapshotIsClean(t *testing.T) {
	e := engine.New(engine.Config{ArenaCapacity: 8})
	seq, err := Load(t.TempDir(), nil, e)
	if err != nil {
		t.Fatalf("missing snapshot must not error, got %v", err)
	}
	if seq != 0 || e.RestingOrders() != 0 {
		t.Error("missing snapshot must leave the engine empty at seq 0")
	}
}

func TestJSONCodecRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := engine.New(engine.Config{ArenaCapacity: 8})
	if err := src.ProcessNewOrder(9, 50, 4, engine.Sell); err != nil {
		t.Fatal(err)
	}

	w := &Writer{Dir: dir, Codec: JSONCodec{}}
	if err := w.Write(7, src); err != nil {
		t.Fatal(err)
	}

	dst := engine.New(engine.Config{ArenaCapacity: 8})
	seq, err := Load(dir, JSONCodec{}, dst)
	if err != nil {
		t.Fatal(err)
	}
	if seq != 7 || dst.RestingOrders() != 1 {
		t.Fatalf("seq=%d resting=%d, want 7 and 1", seq, dst.RestingOrders())
	}
}
