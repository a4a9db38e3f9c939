package card

import "strings"

func Cards2bytes(cs []Card) []byte {
	out := make([]byte, 0, len(cs))
	for _, c := range cs {
		out = append(out, byte(c))
	}
	return out
}

// CardsFromBytes decodes one card per byte, rejecting the whole input on the
// first bad encoding.
func CardsFromBytes(bs []byte) (CardList, error) {
	out := make(CardList, 0, len(bs))
	for _, b := range bs {
		c, err := FromByte(b)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// ParseList parses whitespace-separated cards, e.g. "A♡ 10♣ Ks".
func ParseList(str string) (CardList, error) {
	fields := strings.Fields(str)
	out := make(CardList, 0, len(fields))
	for _, f := range fields {
		c, err := Parse(f)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
