// Package exit is the durable trade outbox. Every executed trade is
// written here before it is broadcast; the broadcaster walks the states
// NEW → SENT → ACKED so a crash between engine and Kafka never loses or
// double-counts a publish on the durable side.
package exit

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
)

// -------------------- State --------------------

type State uint8

const (
	StateNew State = iota
	StateSent
	StateAcked
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "NEW"
	case StateSent:
		return "SENT"
	case StateAcked:
		return "ACKED"
	case StateFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// -------------------- Record --------------------

// Record is one outbox entry. Payload is the encoded trade event, opaque
// to the outbox.
type Record struct {
	State       State
	Retries     uint32
	LastAttempt int64
	Payload     []byte
}

const recordHeaderLen = 1 + 4 + 8

// binary encoding: [state:1][retries:4][lastAttempt:8][payload...]
func encodeRecord(r Record) []byte {
	buf := make([]byte, recordHeaderLen+len(r.Payload))
	buf[0] = byte(r.State)
	binary.BigEndian.PutUint32(buf[1:5], r.Retries)
	binary.BigEndian.PutUint64(buf[5:13], uint64(r.LastAttempt))
	copy(buf[recordHeaderLen:], r.Payload)
	return buf
}

func decodeRecord(b []byte) (Record, error) {
	if len(b) < recordHeaderLen {
		return Record{}, errors.New("exit: record too short")
	}
	payload := make([]byte, len(b)-recordHeaderLen)
	copy(payload, b[recordHeaderLen:])
	return Record{
		State:       State(b[0]),
		Retries:     binary.BigEndian.Uint32(b[1:5]),
		LastAttempt: int64(binary.BigEndian.Uint64(b[5:13])),
		Payload:     payload,
	}, nil
}

// -------------------- WAL --------------------

type WAL struct {
	db *pebble.DB
}

func Open(dir string) (*WAL, error) {
	db, err := pebble.Open(dir, &pebble.Options{
		DisableWAL: false, // we WANT durability
	})
	if err != nil {
		return nil, err
	}
	return &WAL{db: db}, nil
}

func (w *WAL) Close() error {
	return w.db.Close()
}

// -------------------- API --------------------

// Put inserts a NEW outbox entry for a trade. seq must be unique and
// ascending; it becomes the broadcast order.
func (w *WAL) Put(seq uint64, payload []byte) error {
	rec := Record{
		State:   StateNew,
		Payload: payload,
	}
	return w.db.Set(keyFor(seq), encodeRecord(rec), pebble.Sync)
}

// UpdateState rewrites an entry's state after a send, ack, or failure,
// preserving the payload.
func (w *WAL) UpdateState(seq uint64, state State, retries uint32) error {
	rec, err := w.Get(seq)
	if err != nil {
		return err
	}
	rec.State = state
	rec.Retries = retries
	rec.LastAttempt = time.Now().UnixNano()
	return w.db.Set(keyFor(seq), encodeRecord(rec), pebble.Sync)
}

// Get returns the current record for a trade.
func (w *WAL) Get(seq uint64) (Record, error) {
	val, closer, err := w.db.Get(keyFor(seq))
	if err != nil {
		return Record{}, err
	}
	defer closer.Close()

	return decodeRecord(val)
}

// -------------------- Scan --------------------

// ScanByState iterates all records in the given state, in seq order.
func (w *WAL) ScanByState(state State, fn func(seq uint64, rec Record) error) error {
	iter, err := w.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte("trade/"),
		UpperBound: []byte("trade/~"),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		rec, err := decodeRecord(iter.Value())
		if err != nil {
			return err
		}
		if rec.State != state {
			continue
		}

		seq, err := parseKey(iter.Key())
		if err != nil {
			return err
		}

		if err := fn(seq, rec); err != nil {
			return err
		}
	}
	return iter.Error()
}

// TruncateAckedUpTo deletes ACKED records with seq at or below the given
// sequence. Called by the snapshot job.
func (w *WAL) TruncateAckedUpTo(seq uint64) error {
	return w.ScanByState(StateAcked, func(s uint64, _ Record) error {
		if s > seq {
			return nil
		}
		return w.db.Delete(keyFor(s), pebble.Sync)
	})
}

// -------------------- Helpers --------------------

func keyFor(seq uint64) []byte {
	return []byte(fmt.Sprintf("trade/%020d", seq))
}

func parseKey(b []byte) (uint64, error) {
	var seq uint64
	_, err := fmt.Sscanf(string(b), "trade/%d", &seq)
	return seq, err
}
