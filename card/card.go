package card

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Card 牌, 6-bit packed value.
//
// 编码规则:
// - bits 4-5: 花色 (0:Club, 1:Diamond, 2:Heart, 3:Spade)
// - bits 0-3: 点数 (see Rank)
//
// All 64 values 0x00..0x3F are valid cards; the 52 standard ones use ranks 1..13.
type Card byte

const (
	suitShift = 4
	cardMask  = 0x3F
)

// New packs a suit and rank. Both are already in range, so it cannot fail.
func New(s Suit, r Rank) Card {
	return Card(byte(s&3)<<suitShift | byte(r&rankMask))
}

// Make builds a card from raw suit and rank codes.
func Make(suitCode, rankCode int) (Card, error) {
	s, err := NewSuit(suitCode)
	if err != nil {
		return 0, err
	}
	r, err := NewRank(rankCode)
	if err != nil {
		return 0, err
	}
	return New(s, r), nil
}

// FromByte decodes a raw encoding; bits 6 and 7 must be clear.
func FromByte(b byte) (Card, error) {
	if b&^cardMask != 0 {
		return 0, fmt.Errorf("%w: 0x%02x", ErrInvalidCardEncoding, b)
	}
	return Card(b), nil
}

// Byte returns the raw 6-bit encoding.
func (c Card) Byte() byte {
	return byte(c)
}

func (c Card) Suit() Suit {
	return Suit(c >> suitShift)
}

func (c Card) Rank() Rank {
	return Rank(c & rankMask)
}

func (c Card) IsJoker() bool {
	return c.Rank().IsJoker()
}

func (c Card) IsAce() bool {
	return c.Rank().IsAce()
}

func (c Card) HighValue() (int, error) {
	return c.Rank().HighValue()
}

func (c Card) LowValue() (int, error) {
	return c.Rank().LowValue()
}

func (c Card) Color() Color {
	return c.Suit().Color()
}

// Compare orders cards by encoding: suit first, then rank.
func (c Card) Compare(o Card) int {
	switch {
	case c < o:
		return -1
	case c > o:
		return 1
	}
	return 0
}

func (c Card) Less(o Card) bool {
	return c < o
}

// String renders rank then suit glyph, e.g. "A♡", "10♣".
func (c Card) String() string {
	return c.Rank().String() + c.Suit().String()
}

// Parse 将字符串 (如 "A♡", "As", "Td", "10h") 转换为 Card.
// The suit is the last rune, everything before it is the rank.
func Parse(str string) (Card, error) {
	str = strings.TrimSpace(str)
	if utf8.RuneCountInString(str) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCardString, str)
	}
	_, size := utf8.DecodeLastRuneInString(str)
	s, err := ParseSuit(str[len(str)-size:])
	if err != nil {
		return 0, err
	}
	r, err := ParseRank(str[:len(str)-size])
	if err != nil {
		return 0, err
	}
	return New(s, r), nil
}

// MustParse is Parse for literals in tests and tables; it panics on bad input.
func MustParse(str string) Card {
	c, err := Parse(str)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Card) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Card) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
