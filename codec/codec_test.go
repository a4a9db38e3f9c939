package codec

import (
	"encoding/json"
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/encoding/protowire"

	"playingcards/card"
)

func TestMarshalDeck_RoundTrip(t *testing.T) {
	d := card.OrderedDeck()
	d.Shuffle(rand.New(rand.NewSource(11)))
	if _, err := d.PopCards(5); err != nil {
		t.Fatalf("PopCards err: %v", err)
	}
	d.Push(card.New(card.Heart, card.HighJoker))

	back, err := UnmarshalDeck(MarshalDeck(d))
	if err != nil {
		t.Fatalf("UnmarshalDeck err: %v", err)
	}
	if diff := cmp.Diff(d.Cards(), back.Cards()); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshalDeck_EmptyDeck(t *testing.T) {
	back, err := UnmarshalDeck(MarshalDeck(card.NewDeck()))
	if err != nil {
		t.Fatalf("UnmarshalDeck err: %v", err)
	}
	if back.Len() != 0 {
		t.Fatalf("expected empty deck, got %d", back.Len())
	}
}

func TestMarshalDeck_Layout(t *testing.T) {
	got := MarshalDeck(card.NewDeck(card.CardClubA, card.CardSpadeK))
	want := []byte{0x0a, 0x02, 0x01, 0x3d, 0x10, 0x02}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected bytes (-want +got):\n%s", diff)
	}
}

func TestUnmarshalDeck_SkipsUnknownFields(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 9, protowire.BytesType)
	b = protowire.AppendString(b, "note")
	b = protowire.AppendTag(b, fieldCards, protowire.BytesType)
	b = protowire.AppendBytes(b, []byte{0x21})
	d, err := UnmarshalDeck(b)
	if err != nil {
		t.Fatalf("UnmarshalDeck err: %v", err)
	}
	if diff := cmp.Diff(card.CardList{card.CardHeartA}, d.Cards()); diff != "" {
		t.Fatalf("unexpected deck:\n%s", diff)
	}
}

func TestUnmarshalDeck_Errors(t *testing.T) {
	countMismatch := protowire.AppendTag(nil, fieldCards, protowire.BytesType)
	countMismatch = protowire.AppendBytes(countMismatch, []byte{0x01})
	countMismatch = protowire.AppendTag(countMismatch, fieldCount, protowire.VarintType)
	countMismatch = protowire.AppendVarint(countMismatch, 2)

	badCard := protowire.AppendTag(nil, fieldCards, protowire.BytesType)
	badCard = protowire.AppendBytes(badCard, []byte{0x01, 0x80})

	tests := []struct {
		name   string
		in     []byte
		reason string
	}{
		{"truncated tag", []byte{0x80}, "bad_tag"},
		{"truncated cards", []byte{0x0a, 0x05, 0x01}, "bad_cards"},
		{"count mismatch", countMismatch, "count_mismatch"},
		{"bad card byte", badCard, "bad_card"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalDeck(tt.in)
			var decErr *DecodeError
			if !errors.As(err, &decErr) {
				t.Fatalf("expected *DecodeError, got %T: %v", err, err)
			}
			if decErr.Reason != tt.reason {
				t.Fatalf("expected reason %q, got %q (%v)", tt.reason, decErr.Reason, err)
			}
		})
	}

	_, err := UnmarshalDeck(badCard)
	if !errors.Is(err, card.ErrInvalidCardEncoding) {
		t.Fatalf("expected wrapped ErrInvalidCardEncoding, got %v", err)
	}
}

func TestWireDeck_JSONRoundTrip(t *testing.T) {
	d := card.NewDeck(card.CardHeartA, card.CardClubT, card.New(card.Spade, card.HighAce))
	raw, err := json.Marshal(ToWireDeck(d))
	if err != nil {
		t.Fatalf("marshal err: %v", err)
	}
	if string(raw) != `{"version":1,"cards":["A♡","10♣","14♠"]}` {
		t.Fatalf("unexpected json: %s", raw)
	}
	var w WireDeck
	if err := json.Unmarshal(raw, &w); err != nil {
		t.Fatalf("unmarshal err: %v", err)
	}
	back, err := FromWireDeck(&w)
	if err != nil {
		t.Fatalf("FromWireDeck err: %v", err)
	}
	if diff := cmp.Diff(d.Cards(), back.Cards()); diff != "" {
		t.Fatalf("round trip mismatch:\n%s", diff)
	}
}

func TestFromWireDeck_Errors(t *testing.T) {
	if ToWireDeck(nil) != nil {
		t.Fatalf("expected nil wire deck for nil deck")
	}
	cases := map[string]*WireDeck{
		"missing_deck":        nil,
		"unsupported_version": {Version: 2},
		"bad_card":            {Version: WireVersion, Cards: []string{"A♡", "Zz"}},
	}
	for reason, w := range cases {
		_, err := FromWireDeck(w)
		var decErr *DecodeError
		if !errors.As(err, &decErr) || decErr.Reason != reason {
			t.Fatalf("expected reason %q, got %v", reason, err)
		}
	}
}
