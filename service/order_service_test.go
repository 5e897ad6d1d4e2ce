package service

import (
	"testing"

	"mercury/domain/engine"
	"mercury/infra/ring"
	"mercury/infra/sequence"
	entrywal "mercury/infra/wal/entry"
	exitwal "mercury/infra/wal/exit"
	"mercury/snapshot"
)

func newBareService() *OrderService {
	return New(1024, sequence.New(0), nil, nil, nil)
}

func TestPlaceOrderResult(t *testing.T) {
	svc := newBareService()

	res, err := svc.PlaceOrder(1, 100, 10, engine.Sell)
	if err != nil {
		t.Fatal(err)
	}
	if res.Seq != 1 || res.Filled != 0 || res.Resting != 10 {
		t.Fatalf("unexpected result %+v", res)
	}

	res, err = svc.PlaceOrder(2, 101, 15, engine.Buy)
	if err != nil {
		t.Fatal(err)
	}
	if res.Filled != 10 || res.Resting != 5 {
		t.Fatalf("crossing buy: got %+v, want filled=10 resting=5", res)
	}

	top := svc.TopOfBook()
	if !top.HasBid || top.Bid != 101 || top.HasAsk {
		t.Fatalf("unexpected top of book %+v", top)
	}

	st := svc.Stats()
	if st.OrdersAccepted != 2 || st.TradesExecuted != 1 || st.RestingOrders != 1 {
		t.Fatalf("unexpected stats %+v", st)
	}
}

func TestRejectionCounted(t *testing.T) {
	svc := newBareService()

	if _, err := svc.PlaceOrder(1, 100, 0, engine.Buy); err != engine.ErrInvalidOrder {
		t.Fatalf("expected ErrInvalidOrder, got %v", err)
	}
	st := svc.Stats()
	if st.OrdersRejected != 1 || st.OrdersAccepted != 0 {
		t.Fatalf("unexpected stats %+v", st)
	}
}

func TestTradesReachFeedAndOutbox(t *testing.T) {
	outbox, err := exitwal.Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer outbox.Close()

	feed := ring.New[TradeEvent](16)
	svc := New(64, sequence.New(0), nil, outbox, feed)

	if _, err := svc.PlaceOrder(1, 100, 5, engine.Sell); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.PlaceOrder(2, 100, 5, engine.Buy); err != nil {
		t.Fatal(err)
	}

	ev, ok := feed.Dequeue()
	if !ok {
		t.Fatal("expected a live feed event")
	}
	if ev.TradeNo != 1 || ev.TakerID != 2 || ev.MakerID != 1 || ev.Price != 100 || ev.Qty != 5 {
		t.Fatalf("unexpected feed event %+v", ev)
	}

	var pending []uint64
	err = outbox.ScanByState(exitwal.StateNew, func(seq uint64, rec exitwal.Record) error {
		pending = append(pending, seq)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) != 1 || pending[0] != 1 {
		t.Fatalf("outbox NEW entries = %v, want [1]", pending)
	}
}

func TestDepthAggregation(t *testing.T) {
	svc := newBareService()

	mustOrder := func(id uint64, price, qty uint32, side engine.Side) {
		t.Helper()
		if _, err := svc.PlaceOrder(id, price, qty, side); err != nil {
			t.Fatal(err)
		}
	}
	mustOrder(1, 100, 5, engine.Buy)
	mustOrder(2, 100, 3, engine.Buy)
	mustOrder(3, 99, 7, engine.Buy)
	mustOrder(4, 98, 1, engine.Buy)
	mustOrder(5, 105, 4, engine.Sell)

	bids, asks := svc.Depth(2)
	if len(bids) != 2 {
		t.Fatalf("bid levels = %d, want 2", len(bids))
	}
	if bids[0].Price != 100 || bids[0].Qty != 8 || bids[0].Orders != 2 {
		t.Fatalf("level 0 = %+v, want price=100 qty=8 orders=2", bids[0])
	}
	if bids[1].Price != 99 || bids[1].Qty != 7 {
		t.Fatalf("level 1 = %+v, want price=99 qty=7", bids[1])
	}
	if len(asks) != 1 || asks[0].Price != 105 || asks[0].Qty != 4 {
		t.Fatalf("asks = %+v", asks)
	}
}

func TestRecoverFromWAL(t *testing.T) {
	walDir := t.TempDir()
	snapDir := t.TempDir()

	w, err := entrywal.Open(entrywal.Config{Dir: walDir, SegmentSize: 1 << 20})
	if err != nil {
		t.Fatal(err)
	}
	svc := New(64, sequence.New(0), w, nil, nil)

	place := func(id uint64, price, qty uint32, side engine.Side) {
		t.Helper()
		if _, err := svc.PlaceOrder(id, price, qty, side); err != nil {
			t.Fatal(err)
		}
	}
	place(1, 100, 3, engine.Sell)
	place(2, 101, 4, engine.Sell)
	place(3, 102, 10, engine.Buy) // sweeps both, rests 3 at 102

	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	before := svc.Stats()

	// "Restart": a fresh service recovers from disk alone.
	svc2 := New(64, sequence.New(0), nil, nil, nil)
	if err := svc2.Recover(walDir, snapDir); err != nil {
		t.Fatalf("recover: %v", err)
	}

	after := svc2.Stats()
	if after.TradesExecuted != before.TradesExecuted {
		t.Errorf("trades = %d, want %d", after.TradesExecuted, before.TradesExecuted)
	}
	if after.RestingOrders != before.RestingOrders {
		t.Errorf("resting = %d, want %d", after.RestingOrders, before.RestingOrders)
	}
	top := svc2.TopOfBook()
	if !top.HasBid || top.Bid != 102 || top.HasAsk {
		t.Fatalf("recovered top of book %+v, want bid=102 and no ask", top)
	}

	// Sequencer resumes past the replayed records.
	res, err := svc2.PlaceOrder(4, 90, 1, engine.Buy)
	if err != nil {
		t.Fatal(err)
	}
	if res.Seq != 4 {
		t.Errorf("next seq = %d, want 4", res.Seq)
	}
}

func TestSnapshotShortensRecovery(t *testing.T) {
	walDir := t.TempDir()
	snapDir := t.TempDir()

	w, err := entrywal.Open(entrywal.Config{Dir: walDir, SegmentSize: 1 << 20})
	if err != nil {
		t.Fatal(err)
	}
	svc := New(64, sequence.New(0), w, nil, nil)
	if _, err := svc.PlaceOrder(1, 100, 5, engine.Buy); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.PlaceOrder(2, 110, 5, engine.Sell); err != nil {
		t.Fatal(err)
	}

	// Snapshot now, then trade once more after it.
	svc.snapshotOnce(&snapshot.Writer{Dir: snapDir})

	if _, err := svc.PlaceOrder(3, 110, 2, engine.Buy); err != nil {
		t.Fatal(err)
	}
	_ = w.Close()

	svc2 := New(64, sequence.New(0), nil, nil, nil)
	if err := svc2.Recover(walDir, snapDir); err != nil {
		t.Fatal(err)
	}

	st := svc2.Stats()
	if st.TradesExecuted != 1 {
		t.Errorf("trades after recovery = %d, want 1", st.TradesExecuted)
	}
	top := svc2.TopOfBook()
	if !top.HasBid || top.Bid != 100 {
		t.Errorf("top = %+v, want bid=100", top)
	}
	if !top.HasAsk || top.Ask != 110 {
		t.Errorf("top = %+v, want ask=110", top)
	}
}
