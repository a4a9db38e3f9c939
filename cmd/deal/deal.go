package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"playingcards/card"
	"playingcards/codec"
	"playingcards/random"
)

type dealResult struct {
	DealID    string          `json:"deal_id"`
	Seed      int64           `json:"seed"`
	Hands     []card.CardList `json:"hands"`
	Remaining *codec.WireDeck `json:"remaining"`

	rest *card.Deck
}

// deal builds an ordered deck, applies the configured removals and jokers,
// shuffles it and pops cfg.Hands hands off the top.
func deal(cfg Config, logger zerolog.Logger) (*dealResult, error) {
	d := card.OrderedDeck()
	for _, s := range cfg.removeList() {
		c, err := card.Parse(s)
		if err != nil {
			return nil, err
		}
		if err := d.RemoveCard(c); err != nil {
			return nil, err
		}
	}
	if cfg.Jokers {
		d.Push(card.New(card.Club, card.LowJoker), card.New(card.Spade, card.HighJoker))
	}

	rng, seed, err := random.New(cfg.Seed)
	if err != nil {
		return nil, err
	}
	d.Shuffle(rng)

	res := &dealResult{
		DealID: uuid.NewString(),
		Seed:   seed,
		Hands:  make([]card.CardList, 0, cfg.Hands),
	}
	log := logger.With().Str("deal_id", res.DealID).Int64("seed", seed).Logger()
	log.Debug().Int("deck", d.Len()).Msg("deck shuffled")

	for i := 0; i < cfg.Hands; i++ {
		hand, err := d.PopCards(cfg.HandSize)
		if err != nil {
			log.Warn().Err(err).Int("hand", i+1).Int("left", d.Len()).Msg("deal stopped")
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		res.Hands = append(res.Hands, hand)
	}
	res.rest = d
	res.Remaining = codec.ToWireDeck(d)
	log.Info().Int("hands", len(res.Hands)).Int("remaining", d.Len()).Msg("dealt")
	return res, nil
}

func writeResult(w io.Writer, format string, res *dealResult) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case formatProtoHex:
		for _, hand := range res.Hands {
			if _, err := fmt.Fprintln(w, hex.EncodeToString(codec.MarshalDeck(card.NewDeck(hand...)))); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintln(w, hex.EncodeToString(codec.MarshalDeck(res.rest)))
		return err
	default:
		for i, hand := range res.Hands {
			if _, err := fmt.Fprintf(w, "hand %d: %s\n", i+1, hand); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "remaining: %d\n", res.rest.Len())
		return err
	}
}
