package entry

import "time"

// RecordType defines WAL intent.
type RecordType uint8

const (
	// RecordPlace logs a new-order intent before it reaches the engine.
	RecordPlace RecordType = iota
)

// Record is an immutable WAL entry. Data is opaque to the WAL.
type Record struct {
	Type RecordType
	Seq  uint64
	Time int64
	Data []byte
}

func NewRecord(t RecordType, seq uint64, data []byte) *Record {
	return &Record{
		Type: t,
		Seq:  seq,
		Time: time.Now().UnixNano(),
		Data: data,
	}
}
