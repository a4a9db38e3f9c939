package card

import "errors"

var (
	ErrInvalidSuitCode     = errors.New("invalid suit code")
	ErrInvalidRankCode     = errors.New("invalid rank code")
	ErrInvalidCardEncoding = errors.New("invalid card encoding")
	ErrInvalidCardString   = errors.New("invalid card string")
	ErrUndefinedRankValue  = errors.New("rank has no numeric value")
)

var (
	ErrEmptyDeck         = errors.New("deck is empty")
	ErrInsufficientCards = errors.New("not enough cards in deck")
	ErrCardNotFound      = errors.New("card not in deck")
)
