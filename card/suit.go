package card

import (
	"fmt"
	"strings"
)

// Suit 2-bit suit code, stored in bits 4-5 of a Card.
type Suit byte

const (
	Club    Suit = iota // ♣
	Diamond             // ♢
	Heart               // ♡
	Spade               // ♠
)

const suitCount = 4

// NewSuit validates a raw suit code (0..3).
func NewSuit(code int) (Suit, error) {
	if code < 0 || code >= suitCount {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSuitCode, code)
	}
	return Suit(code), nil
}

// Suits returns all four suits in code order. The slice is a fresh copy.
func Suits() []Suit {
	return []Suit{Club, Diamond, Heart, Spade}
}

func (s Suit) Code() int {
	return int(s)
}

func (s Suit) Color() Color {
	switch s {
	case Diamond, Heart:
		return Red
	}
	return Black
}

// Compare orders suits by code.
func (s Suit) Compare(o Suit) int {
	switch {
	case s < o:
		return -1
	case s > o:
		return 1
	}
	return 0
}

func (s Suit) String() string {
	switch s {
	case Club:
		return "♣"
	case Diamond:
		return "♢"
	case Heart:
		return "♡"
	case Spade:
		return "♠"
	}
	return "?"
}

// Letter 单字母花色: c d h s
func (s Suit) Letter() string {
	switch s {
	case Club:
		return "c"
	case Diamond:
		return "d"
	case Heart:
		return "h"
	case Spade:
		return "s"
	}
	return "?"
}

// ParseSuit accepts a glyph (outlined or filled), a letter or an English name.
func ParseSuit(str string) (Suit, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "♣", "♧", "c", "club", "clubs":
		return Club, nil
	case "♢", "♦", "d", "diamond", "diamonds":
		return Diamond, nil
	case "♡", "♥", "h", "heart", "hearts":
		return Heart, nil
	case "♠", "♤", "s", "spade", "spades":
		return Spade, nil
	}
	return 0, fmt.Errorf("%w: unknown suit %q", ErrInvalidCardString, str)
}

// Color 牌色
type Color byte

const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}
