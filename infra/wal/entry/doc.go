// Package entry is the intake write-ahead log. Every accepted order is
// framed and appended before it reaches the engine, so the book can be
// rebuilt deterministically by replaying the segments in order.
//
// Frame layout:
//
//	[type:1][seq:8][time:8][len:4][payload][crc:4]
//
// The CRC covers header and payload. Segments rotate by size, or by age
// when SegmentDuration is set, and are deleted by TruncateBefore once a
// snapshot covers them.
package entry
