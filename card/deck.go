package card

import (
	"fmt"
	"math/rand"
	"time"

	"playingcards/random"
)

// FullDeck returns the 52 standard cards, suit-major: clubs, diamonds, hearts,
// spades, each Ace(1) through King(13). Every call returns a new slice.
func FullDeck() CardList {
	out := make(CardList, 0, len(Suits())*len(Ranks()))
	for _, s := range Suits() {
		for _, r := range Ranks() {
			out = append(out, New(s, r))
		}
	}
	return out
}

// Rand is the randomness a shuffle needs; *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Deck 牌堆. The top of the deck is the last element of the backing list.
//
// A Deck has a single owner and no internal locking; callers must not
// shuffle or pop the same Deck from several goroutines.
type Deck struct {
	cards CardList
}

// NewDeck copies cards into a new deck, cards[len-1] on top. Duplicates are kept.
func NewDeck(cards ...Card) *Deck {
	d := &Deck{}
	d.cards = make(CardList, len(cards))
	copy(d.cards, cards)
	return d
}

// OrderedDeck returns a deck holding FullDeck in the same order, so the King
// of spades is on top.
func OrderedDeck() *Deck {
	return &Deck{cards: FullDeck()}
}

// Len 获取剩余牌数
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the deck, bottom first.
func (d *Deck) Cards() CardList {
	return d.cards.Clone()
}

// Push puts cards on top, in argument order.
func (d *Deck) Push(cards ...Card) {
	d.cards = append(d.cards, cards...)
}

// Shuffle permutes the deck in place (Fisher-Yates), so every ordering is
// equally likely for a uniform r. A nil r uses a source seeded from crypto/rand.
func (d *Deck) Shuffle(r Rand) {
	if r == nil {
		r = defaultRand()
	}
	for i := len(d.cards) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

func defaultRand() Rand {
	src, _, err := random.New(0)
	if err != nil {
		// crypto/rand unavailable (0 => time-based)
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return src
}

// PopCard removes and returns the top card.
func (d *Deck) PopCard() (Card, error) {
	n := len(d.cards)
	if n == 0 {
		return 0, ErrEmptyDeck
	}
	c := d.cards[n-1]
	d.cards = d.cards[:n-1]
	return c, nil
}

// PopCards removes n cards from the top. The result is in draw order: out[0]
// was the top card. Nothing is removed unless all n are available.
func (d *Deck) PopCards(n int) (CardList, error) {
	total := len(d.cards)
	if n < 0 || n > total {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrInsufficientCards, n, total)
	}
	out := make(CardList, n)
	for i := range out {
		out[i] = d.cards[total-1-i]
	}
	d.cards = d.cards[:total-n]
	return out, nil
}

// RemoveCard removes one occurrence of c, the one nearest the top.
func (d *Deck) RemoveCard(c Card) error {
	for i := len(d.cards) - 1; i >= 0; i-- {
		if d.cards[i] == c {
			d.cards = append(d.cards[:i], d.cards[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrCardNotFound, c)
}

func (d *Deck) String() string {
	return fmt.Sprintf("Deck(%d)[%s]", len(d.cards), d.cards)
}

// MarshalBinary encodes one byte per card, bottom first.
func (d *Deck) MarshalBinary() ([]byte, error) {
	return d.cards.Bytes(), nil
}

// UnmarshalBinary replaces the deck's contents; on error the deck is unchanged.
func (d *Deck) UnmarshalBinary(data []byte) error {
	cards, err := CardsFromBytes(data)
	if err != nil {
		return err
	}
	d.cards = cards
	return nil
}
