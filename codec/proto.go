// Package codec converts decks to and from wire formats.
//
// The protobuf form is the message
//
//	message Deck {
//	  bytes  cards = 1; // one card encoding per byte, bottom first
//	  uint32 count = 2; // len(cards), checked on decode
//	}
//
// written directly with protowire, so no generated code is needed.
package codec

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"playingcards/card"
)

const (
	fieldCards protowire.Number = 1
	fieldCount protowire.Number = 2
)

// MarshalDeck encodes d as a protobuf Deck message.
func MarshalDeck(d *card.Deck) []byte {
	cards := d.Cards().Bytes()
	b := make([]byte, 0, len(cards)+8)
	b = protowire.AppendTag(b, fieldCards, protowire.BytesType)
	b = protowire.AppendBytes(b, cards)
	b = protowire.AppendTag(b, fieldCount, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(len(cards)))
	return b
}

// UnmarshalDeck decodes a protobuf Deck message. Unknown fields are skipped;
// a repeated cards field replaces the earlier one, as proto3 does for scalars.
func UnmarshalDeck(b []byte) (*card.Deck, error) {
	var (
		raw      []byte
		count    uint64
		hasCount bool
		off      int
	)
	for off < len(b) {
		num, typ, n := protowire.ConsumeTag(b[off:])
		if n < 0 {
			return nil, &DecodeError{Offset: off, Reason: "bad_tag", Err: protowire.ParseError(n)}
		}
		off += n
		switch {
		case num == fieldCards && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b[off:])
			if n < 0 {
				return nil, &DecodeError{Offset: off, Reason: "bad_cards", Err: protowire.ParseError(n)}
			}
			raw = v
			off += n
		case num == fieldCount && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b[off:])
			if n < 0 {
				return nil, &DecodeError{Offset: off, Reason: "bad_count", Err: protowire.ParseError(n)}
			}
			count, hasCount = v, true
			off += n
		default:
			n := protowire.ConsumeFieldValue(num, typ, b[off:])
			if n < 0 {
				return nil, &DecodeError{Offset: off, Reason: "bad_field", Err: protowire.ParseError(n)}
			}
			off += n
		}
	}
	if hasCount && count != uint64(len(raw)) {
		return nil, &DecodeError{
			Offset: len(b),
			Reason: "count_mismatch",
			Err:    fmt.Errorf("count %d, cards %d", count, len(raw)),
		}
	}
	cards, err := card.CardsFromBytes(raw)
	if err != nil {
		return nil, &DecodeError{Offset: len(b), Reason: "bad_card", Err: err}
	}
	return card.NewDeck(cards...), nil
}
