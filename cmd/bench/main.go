// Command bench drives a bare engine with a random order stream and
// reports throughput and latency percentiles. It is the external harness
// around the core, not part of it.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"sort"
	"time"

	"mercury/domain/engine"
)

func main() {
	var (
		n      = flag.Int("n", 5_000_000, "orders to process")
		mid    = flag.Int("mid", 2048, "mid price tick")
		spread = flag.Int("spread", 64, "price band around mid")
		maxQty = flag.Int("max-qty", 100, "max order quantity")
		seed   = flag.Int64("seed", 42, "rng seed")
	)
	flag.Parse()

	e := engine.New(engine.Config{ArenaCapacity: *n + 1})
	rng := rand.New(rand.NewSource(*seed))

	type order struct {
		price uint32
		qty   uint32
		side  engine.Side
	}
	orders := make([]order, *n)
	for i := range orders {
		orders[i] = order{
			price: uint32(*mid - *spread + rng.Intn(2*(*spread)+1)),
			qty:   uint32(1 + rng.Intn(*maxQty)),
			side:  engine.Side(rng.Intn(2)),
		}
	}

	// Sample per-order latency sparsely so timing overhead stays out of
	// the measured path.
	const sampleEvery = 1024
	samples := make([]time.Duration, 0, *n/sampleEvery+1)

	start := time.Now()
	for i, o := range orders {
		if i%sampleEvery == 0 {
			t0 := time.Now()
			if err := e.ProcessNewOrder(uint64(i+1), o.price, o.qty, o.side); err != nil {
				log.Fatalf("order %d: %v", i+1, err)
			}
			samples = append(samples, time.Since(t0))
			continue
		}
		if err := e.ProcessNewOrder(uint64(i+1), o.price, o.qty, o.side); err != nil {
			log.Fatalf("order %d: %v", i+1, err)
		}
	}
	elapsed := time.Since(start)

	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })
	pct := func(p float64) time.Duration {
		idx := int(p * float64(len(samples)-1))
		return samples[idx]
	}

	fmt.Printf("orders      %d\n", *n)
	fmt.Printf("trades      %d\n", e.TradesExecuted())
	fmt.Printf("resting     %d\n", e.RestingOrders())
	fmt.Printf("elapsed     %v\n", elapsed)
	fmt.Printf("throughput  %.0f orders/sec\n", float64(*n)/elapsed.Seconds())
	fmt.Printf("latency     p50=%v p99=%v p99.9=%v max=%v\n",
		pct(0.50), pct(0.99), pct(0.999), samples[len(samples)-1])
}
