package card

import (
	"slices"
	"strings"
)

// CardList 牌序列. Plain sequence type; Deck wraps one.
type CardList []Card

// Count 获取总牌数
func (cl CardList) Count() int {
	return len(cl)
}

func (cl CardList) Bytes() []byte {
	return Cards2bytes(cl)
}

// Index returns the position of the first c, or -1.
func (cl CardList) Index(c Card) int {
	return slices.Index(cl, c)
}

func (cl CardList) Contains(c Card) bool {
	return cl.Index(c) >= 0
}

// Clone returns an independent copy; nil stays nil.
func (cl CardList) Clone() CardList {
	return slices.Clone(cl)
}

// Sort orders the list in place by Card.Compare.
func (cl CardList) Sort() {
	slices.Sort(cl)
}

func (cl CardList) String() string {
	parts := make([]string, len(cl))
	for i, c := range cl {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
