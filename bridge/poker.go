// Package bridge converts cards to github.com/paulhankin/poker cards, for
// callers that evaluate hands with that library.
package bridge

import (
	"errors"
	"fmt"

	poker "github.com/paulhankin/poker"

	"playingcards/card"
)

// ErrNoPokerEquivalent is returned for jokers, which a 52-card evaluator cannot represent.
var ErrNoPokerEquivalent = errors.New("card has no poker equivalent")

func toPokerSuit(s card.Suit) poker.Suit {
	switch s {
	case card.Diamond:
		return poker.Diamond
	case card.Heart:
		return poker.Heart
	case card.Spade:
		return poker.Spade
	}
	return poker.Club
}

// ToPoker converts c. Both aces map to the library's ace (rank 1).
func ToPoker(c card.Card) (poker.Card, error) {
	var zero poker.Card
	r := c.Rank()
	if r.IsJoker() {
		return zero, fmt.Errorf("%w: %s", ErrNoPokerEquivalent, c)
	}
	if r == card.HighAce {
		r = card.Ace
	}
	pc, err := poker.MakeCard(toPokerSuit(c.Suit()), poker.Rank(r))
	if err != nil {
		return zero, fmt.Errorf("convert %s: %w", c, err)
	}
	return pc, nil
}

// ToPokerList converts every card, failing on the first joker.
func ToPokerList(cs card.CardList) ([]poker.Card, error) {
	out := make([]poker.Card, 0, len(cs))
	for _, c := range cs {
		pc, err := ToPoker(c)
		if err != nil {
			return nil, err
		}
		out = append(out, pc)
	}
	return out, nil
}
