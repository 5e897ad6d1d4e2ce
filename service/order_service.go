package service

import (
	"fmt"
	"sync"
	"time"

	"mercury/domain/engine"
	"mercury/infra/ring"
	"mercury/infra/sequence"
	entrywal "mercury/infra/wal/entry"
	exitwal "mercury/infra/wal/exit"
)

// OrderService owns the engine. The engine itself is single-threaded by
// contract, so every command and query runs under one mutex; callers that
// need more throughput shard by symbol, one service per shard.
type OrderService struct {
	mu sync.Mutex

	eng    *engine.Engine
	seqGen *sequence.Sequencer
	wal    *entrywal.WAL
	outbox *exitwal.WAL
	feed   *ring.Buffer[TradeEvent]

	// tradeBuf collects the fills of the order currently being matched.
	// Reused across calls; valid only under mu.
	tradeBuf []engine.Trade

	accepted uint64
	rejected uint64
}

// New wires all dependencies. wal, outbox, and feed may each be nil,
// which disables that leg (tests and the bench driver run the engine
// bare).
func New(
	arenaCapacity int,
	seqGen *sequence.Sequencer,
	wal *entrywal.WAL,
	outbox *exitwal.WAL,
	feed *ring.Buffer[TradeEvent],
) *OrderService {
	s := &OrderService{
		seqGen: seqGen,
		wal:    wal,
		outbox: outbox,
		feed:   feed,
	}
	s.eng = engine.New(engine.Config{
		ArenaCapacity: arenaCapacity,
		OnTrade: func(t engine.Trade) {
			s.tradeBuf = append(s.tradeBuf, t)
		},
	})
	return s
}

//
// ──────────────────────────────────────────────────────────
// Commands
// ──────────────────────────────────────────────────────────
//

// PlaceResult reports what happened to an accepted order.
type PlaceResult struct {
	Seq     uint64
	Filled  uint32
	Resting uint32
}

// PlaceOrder submits a new limit order. Intent hits the WAL before the
// engine runs, so the book is always recoverable by replay. Rejections
// (invalid order, arena exhausted) leave the book unchanged.
func (s *OrderService) PlaceOrder(id uint64, price, qty uint32, side engine.Side) (PlaceResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.seqGen.Next()

	if s.wal != nil {
		rec := entrywal.NewRecord(entrywal.RecordPlace, seq, encodeOrderPayload(id, price, qty, side))
		if err := s.wal.Append(rec); err != nil {
			return PlaceResult{}, fmt.Errorf("service: wal append: %w", err)
		}
	}

	s.tradeBuf = s.tradeBuf[:0]
	if err := s.eng.ProcessNewOrder(id, price, qty, side); err != nil {
		s.rejected++
		return PlaceResult{}, err
	}
	s.accepted++

	now := time.Now().UnixNano()
	firstNo := s.eng.TradesExecuted() - uint64(len(s.tradeBuf))

	var filled uint32
	for i, tr := range s.tradeBuf {
		filled += tr.Qty
		ev := TradeEvent{
			V:       tradeEventVersion,
			TradeNo: firstNo + uint64(i) + 1,
			Seq:     seq,
			TakerID: tr.TakerID,
			MakerID: tr.MakerID,
			Price:   tr.Price,
			Qty:     tr.Qty,
			Time:    now,
		}
		if err := s.publish(ev); err != nil {
			return PlaceResult{}, err
		}
	}

	return PlaceResult{
		Seq:     seq,
		Filled:  filled,
		Resting: qty - filled,
	}, nil
}

// publish writes a trade to the durable outbox and offers it to the live
// feed. The ring is best-effort: a full ring drops the live event, the
// outbox still has it.
func (s *OrderService) publish(ev TradeEvent) error {
	payload, err := encodeTradeEvent(ev)
	if err != nil {
		return err
	}
	if s.outbox != nil {
		if err := s.outbox.Put(ev.TradeNo, payload); err != nil {
			return fmt.Errorf("service: outbox put: %w", err)
		}
	}
	if s.feed != nil {
		_ = s.feed.Enqueue(ev)
	}
	return nil
}

//
// ──────────────────────────────────────────────────────────
// Queries
// ──────────────────────────────────────────────────────────
//

type TopOfBook struct {
	Bid    uint32
	HasBid bool
	Ask    uint32
	HasAsk bool
}

func (s *OrderService) TopOfBook() TopOfBook {
	s.mu.Lock()
	defer s.mu.Unlock()

	var t TopOfBook
	t.Bid, t.HasBid = s.eng.BestBid()
	t.Ask, t.HasAsk = s.eng.BestAsk()
	return t
}

type Stats struct {
	TradesExecuted uint64
	OrdersAccepted uint64
	OrdersRejected uint64
	RestingOrders  int
}

func (s *OrderService) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Stats{
		TradesExecuted: s.eng.TradesExecuted(),
		OrdersAccepted: s.accepted,
		OrdersRejected: s.rejected,
		RestingOrders:  s.eng.RestingOrders(),
	}
}

// DepthLevel is one aggregated price level.
type DepthLevel struct {
	Price  uint32
	Qty    uint64
	Orders int
}

// Depth returns up to maxLevels aggregated levels per side, best first.
func (s *OrderService) Depth(maxLevels int) (bids, asks []DepthLevel) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bids = collectDepth(s.eng.VisitBids, maxLevels)
	asks = collectDepth(s.eng.VisitAsks, maxLevels)
	return bids, asks
}

func collectDepth(visit func(func(uint32, *engine.Order) bool), maxLevels int) []DepthLevel {
	var out []DepthLevel
	visit(func(price uint32, o *engine.Order) bool {
		n := len(out)
		if n == 0 || out[n-1].Price != price {
			if n == maxLevels {
				return false
			}
			out = append(out, DepthLevel{Price: price})
			n++
		}
		out[n-1].Qty += uint64(o.Qty)
		out[n-1].Orders++
		return true
	})
	return out
}
