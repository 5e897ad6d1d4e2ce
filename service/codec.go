package service

import (
	"encoding/binary"
	"encoding/json"
	"errors"

	"mercury/domain/engine"
)

// Entry-WAL payload for a place intent:
//
//	[id:8][price:4][qty:4][side:1]
const orderPayloadLen = 8 + 4 + 4 + 1

func encodeOrderPayload(id uint64, price, qty uint32, side engine.Side) []byte {
	buf := make([]byte, orderPayloadLen)
	binary.BigEndian.PutUint64(buf[0:8], id)
	binary.BigEndian.PutUint32(buf[8:12], price)
	binary.BigEndian.PutUint32(buf[12:16], qty)
	buf[16] = byte(side)
	return buf
}

var errBadOrderPayload = errors.New("service: malformed order payload")

func decodeOrderPayload(b []byte) (id uint64, price, qty uint32, side engine.Side, err error) {
	if len(b) != orderPayloadLen {
		return 0, 0, 0, 0, errBadOrderPayload
	}
	id = binary.BigEndian.Uint64(b[0:8])
	price = binary.BigEndian.Uint32(b[8:12])
	qty = binary.BigEndian.Uint32(b[12:16])
	side = engine.Side(b[16])
	return id, price, qty, side, nil
}

// TradeEvent is the published form of a fill. TradeNo is the global fill
// number (dense, replay-stable) and keys the outbox; Seq is the taker
// order's sequence.
type TradeEvent struct {
	V       int    `json:"v"`
	TradeNo uint64 `json:"trade_no"`
	Seq     uint64 `json:"seq"`
	TakerID uint64 `json:"taker_id"`
	MakerID uint64 `json:"maker_id"`
	Price   uint32 `json:"price"`
	Qty     uint32 `json:"qty"`
	Time    int64  `json:"ts"`
}

const tradeEventVersion = 1

func encodeTradeEvent(ev TradeEvent) ([]byte, error) {
	return json.Marshal(ev)
}
