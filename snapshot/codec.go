package snapshot

import (
	"encoding/gob"
	"encoding/json"
	"io"
)

// Codec selects the on-disk snapshot encoding.
type Codec interface {
	Encode(io.Writer, *Snapshot) error
	Decode(io.Reader) (*Snapshot, error)
}

// ---------- gob (default) ----------

type GobCodec struct{}

func (GobCodec) Encode(w io.Writer, s *Snapshot) error {
	return gob.NewEncoder(w).Encode(s)
}

func (GobCodec) Decode(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	if err := gob.NewDecoder(r).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ---------- JSON (debugging, inspectable on disk) ----------

type JSONCodec struct{}

func (JSONCodec) Encode(w io.Writer, s *Snapshot) error {
	return json.NewEncoder(w).Encode(s)
}

func (JSONCodec) Decode(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}
