package engine

import "errors"

// ErrInvalidOrder rejects qty == 0 or a price outside the tick domain
// before any state changes.
var ErrInvalidOrder = errors.New("engine: invalid order")

// Trade reports one fill. The inbound order is the taker, the resting
// order the maker; Price is the maker's tick.
type Trade struct {
	TakerID uint64
	MakerID uint64
	Price   uint32
	Qty     uint32
}

// TradeSink receives every fill synchronously, in the order it occurs:
// ascending (buy) or descending (sell) price sweeps, FIFO within a level.
type TradeSink func(Trade)

// DefaultArenaCapacity matches the source sizing of one million resting
// orders.
const DefaultArenaCapacity = 1 << 20

type Config struct {
	// ArenaCapacity fixes the order slab size. Zero means
	// DefaultArenaCapacity.
	ArenaCapacity int

	// OnTrade is invoked per fill. Nil means fills are only counted.
	OnTrade TradeSink
}

// Engine matches inbound limit orders against the book under price-time
// priority and rests any remainder. Single-threaded by contract.
type Engine struct {
	arena   *Arena
	book    *Book
	onTrade TradeSink

	trades  uint64
	resting int
}

func New(cfg Config) *Engine {
	capacity := cfg.ArenaCapacity
	if capacity <= 0 {
		capacity = DefaultArenaCapacity
	}
	sink := cfg.OnTrade
	if sink == nil {
		sink = func(Trade) {}
	}
	return &Engine{
		arena:   NewArena(capacity),
		book:    NewBook(),
		onTrade: sink,
	}
}

// ProcessNewOrder injects a new limit order. It drains the opposite
// top-of-book while the inbound price crosses, emitting a trade per fill,
// then rests any remaining quantity at the limit price. A rejected order
// (ErrInvalidOrder, ErrArenaExhausted) leaves the engine untouched.
func (e *Engine) ProcessNewOrder(id uint64, price, qty uint32, side Side) error {
	if qty == 0 || price >= MaxPriceTicks {
		return ErrInvalidOrder
	}

	h, err := e.arena.Allocate(id, price, qty, side)
	if err != nil {
		return err
	}

	if side == Buy {
		e.matchBuy(h)
	} else {
		e.matchSell(h)
	}

	inbound := e.arena.At(h)
	if inbound.Qty > 0 {
		e.rest(h, inbound)
	} else {
		e.arena.Deallocate(h)
	}
	return nil
}

// matchBuy and matchSell are the same loop monomorphized per side; a
// shared version would put a branch or an indirect call on every
// iteration of the hot loop.

func (e *Engine) matchBuy(h Handle) {
	inbound := e.arena.At(h)
	for inbound.Qty > 0 {
		best := e.book.askIndex.Lowest()
		if best == NoPrice || best > inbound.Price {
			return
		}
		e.fillAt(inbound, &e.book.asks[best], &e.book.askIndex, best)
	}
}

func (e *Engine) matchSell(h Handle) {
	inbound := e.arena.At(h)
	for inbound.Qty > 0 {
		best := e.book.bidIndex.Highest()
		if best == NoPrice || best < inbound.Price {
			return
		}
		e.fillAt(inbound, &e.book.bids[best], &e.book.bidIndex, best)
	}
}

// fillAt trades the inbound against the head of one level. The head is
// non-nil by the index invariant: a set tick always has a non-empty queue.
func (e *Engine) fillAt(inbound *Order, level *PriceLevel, idx *PriceIndex, price uint32) {
	resting := e.arena.At(level.head)

	fill := inbound.Qty
	if resting.Qty < fill {
		fill = resting.Qty
	}
	inbound.Qty -= fill
	resting.Qty -= fill
	e.trades++
	e.onTrade(Trade{
		TakerID: inbound.ID,
		MakerID: resting.ID,
		Price:   price,
		Qty:     fill,
	})

	if resting.Qty == 0 {
		maker := level.PopFront(e.arena)
		if level.Empty() {
			idx.Clear(price)
		}
		e.arena.Deallocate(maker)
		e.resting--
	}
}

func (e *Engine) rest(h Handle, o *Order) {
	if o.Side == Buy {
		level := &e.book.bids[o.Price]
		if level.Empty() {
			e.book.bidIndex.Set(o.Price)
		}
		level.PushBack(e.arena, h)
	} else {
		level := &e.book.asks[o.Price]
		if level.Empty() {
			e.book.askIndex.Set(o.Price)
		}
		level.PushBack(e.arena, h)
	}
	e.resting++
}

//
// ---- queries ----
//

// TradesExecuted is the cumulative fill count since construction.
func (e *Engine) TradesExecuted() uint64 {
	return e.trades
}

// BestBid returns the highest bid tick; ok is false when the side is empty.
func (e *Engine) BestBid() (price uint32, ok bool) {
	p := e.book.bidIndex.Highest()
	return p, p != NoPrice
}

// BestAsk returns the lowest ask tick; ok is false when the side is empty.
func (e *Engine) BestAsk() (price uint32, ok bool) {
	p := e.book.askIndex.Lowest()
	return p, p != NoPrice
}

// RestingOrders is the number of orders currently in the book.
func (e *Engine) RestingOrders() int {
	return e.resting
}

// ArenaFree is the number of unallocated order slots.
func (e *Engine) ArenaFree() int {
	return e.arena.Free()
}

// VisitBids walks resting bid orders, best price first, FIFO within a
// level. Orders must be treated as read-only.
func (e *Engine) VisitBids(fn func(price uint32, o *Order) bool) {
	e.book.DescendBids(func(price uint32, lvl *PriceLevel) bool {
		for h := lvl.Head(); h != NilHandle; h = e.arena.At(h).Next() {
			if !fn(price, e.arena.At(h)) {
				return false
			}
		}
		return true
	})
}

// VisitAsks walks resting ask orders, best price first, FIFO within a
// level. Orders must be treated as read-only.
func (e *Engine) VisitAsks(fn func(price uint32, o *Order) bool) {
	e.book.AscendAsks(func(price uint32, lvl *PriceLevel) bool {
		for h := lvl.Head(); h != NilHandle; h = e.arena.At(h).Next() {
			if !fn(price, e.arena.At(h)) {
				return false
			}
		}
		return true
	})
}
