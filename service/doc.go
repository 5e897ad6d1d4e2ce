// Package service coordinates the write path. OrderService is the ONLY
// entry point that mutates the engine; it serializes callers, logs intent
// to the entry WAL, runs the match, and fans executed trades out to the
// durable outbox and the live feed ring.
package service
