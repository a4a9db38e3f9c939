package card

import (
	"fmt"
	"strconv"
	"strings"
)

// Rank 点数, 4 bits (0..15).
//
//   - 0: low joker, 15: high joker
//   - 1: low ace, 14: high ace
//   - 2..10: number cards, 11/12/13: J/Q/K
//
// Picking low or high aces (and jokers) selects the ranking convention
// without any special casing in comparisons.
type Rank byte

const (
	LowJoker Rank = iota
	Ace
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	HighAce
	HighJoker
)

const rankMask = 0x0F

// NewRank validates a raw rank code (0..15).
func NewRank(code int) (Rank, error) {
	if code < 0 || code > rankMask {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRankCode, code)
	}
	return Rank(code), nil
}

// Ranks returns the 13 natural ranks Ace(1)..King(13). The slice is a fresh copy.
func Ranks() []Rank {
	out := make([]Rank, 0, King)
	for r := Ace; r <= King; r++ {
		out = append(out, r)
	}
	return out
}

func (r Rank) Code() int {
	return int(r)
}

func (r Rank) IsJoker() bool {
	return r == LowJoker || r == HighJoker
}

func (r Rank) IsAce() bool {
	return r == Ace || r == HighAce
}

// HighValue 比大小用的点数: A 视为 14, 其它为原始点数.
// Jokers have no numeric value and return ErrUndefinedRankValue.
func (r Rank) HighValue() (int, error) {
	if r.IsJoker() {
		return 0, fmt.Errorf("%w: %d", ErrUndefinedRankValue, r)
	}
	if r == Ace {
		return int(HighAce), nil
	}
	return int(r), nil
}

// LowValue is the rank with a low ace (1). A high ace stays 14.
// Jokers return ErrUndefinedRankValue.
func (r Rank) LowValue() (int, error) {
	if r.IsJoker() {
		return 0, fmt.Errorf("%w: %d", ErrUndefinedRankValue, r)
	}
	return int(r), nil
}

func (r Rank) Compare(o Rank) int {
	switch {
	case r < o:
		return -1
	case r > o:
		return 1
	}
	return 0
}

// String: A, 2..10, J, Q, K. Codes 0, 14 and 15 print as numbers so every
// rank keeps a distinct token.
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return strconv.Itoa(int(r))
}

// ParseRank is the inverse of String; it also accepts "T" for ten.
func ParseRank(str string) (Rank, error) {
	s := strings.ToUpper(strings.TrimSpace(str))
	switch s {
	case "A":
		return Ace, nil
	case "T":
		return Ten, nil
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > rankMask {
		return 0, fmt.Errorf("%w: unknown rank %q", ErrInvalidCardString, str)
	}
	return Rank(n), nil
}
