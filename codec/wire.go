package codec

import (
	"fmt"

	"playingcards/card"
)

const WireVersion = 1

// WireDeck is the JSON form of a deck: card strings, bottom first.
type WireDeck struct {
	Version int      `json:"version"`
	Cards   []string `json:"cards"`
}

func ToWireDeck(d *card.Deck) *WireDeck {
	if d == nil {
		return nil
	}
	cards := d.Cards()
	out := &WireDeck{
		Version: WireVersion,
		Cards:   make([]string, 0, len(cards)),
	}
	for _, c := range cards {
		out.Cards = append(out.Cards, c.String())
	}
	return out
}

func FromWireDeck(w *WireDeck) (*card.Deck, error) {
	if w == nil {
		return nil, &DecodeError{Offset: -1, Reason: "missing_deck"}
	}
	if w.Version != WireVersion {
		return nil, &DecodeError{Offset: -1, Reason: "unsupported_version", Err: fmt.Errorf("version %d", w.Version)}
	}
	cards := make(card.CardList, 0, len(w.Cards))
	for i, s := range w.Cards {
		c, err := card.Parse(s)
		if err != nil {
			return nil, &DecodeError{Offset: i, Reason: "bad_card", Err: err}
		}
		cards = append(cards, c)
	}
	return card.NewDeck(cards...), nil
}
