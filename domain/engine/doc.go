// Package engine is the matching core: a pre-allocated order arena,
// intrusive per-price FIFO queues, a two-level bitset index over the
// tick domain, and the price-time matching loop.
//
// The package is dependency-free and allocation-free on the order path.
// An Engine is single-threaded by contract; callers that need concurrent
// access must serialize above it (see the service package) or shard by
// symbol, one engine per shard.
package engine
