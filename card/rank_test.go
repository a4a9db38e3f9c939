package card

import (
	"errors"
	"testing"
)

func TestNewRank(t *testing.T) {
	for code := 0; code <= 15; code++ {
		r, err := NewRank(code)
		if err != nil {
			t.Fatalf("NewRank(%d) err: %v", code, err)
		}
		if r.Code() != code {
			t.Fatalf("NewRank(%d).Code() = %d", code, r.Code())
		}
	}
	for _, code := range []int{-1, 16, 100} {
		if _, err := NewRank(code); !errors.Is(err, ErrInvalidRankCode) {
			t.Fatalf("NewRank(%d): expected ErrInvalidRankCode, got %v", code, err)
		}
	}
}

func TestRanks_NaturalThirteen(t *testing.T) {
	got := Ranks()
	if len(got) != 13 {
		t.Fatalf("expected 13 ranks, got %d", len(got))
	}
	for i, r := range got {
		if int(r) != i+1 {
			t.Fatalf("rank %d: expected %d, got %d", i, i+1, r)
		}
	}
	got[0] = HighAce
	if Ranks()[0] != Ace {
		t.Fatalf("mutating the returned slice leaked into Ranks()")
	}
}

func TestRank_AceValues(t *testing.T) {
	hi, err := Ace.HighValue()
	if err != nil || hi != 14 {
		t.Fatalf("Ace.HighValue() = %d, %v; want 14", hi, err)
	}
	lo, err := Ace.LowValue()
	if err != nil || lo != 1 {
		t.Fatalf("Ace.LowValue() = %d, %v; want 1", lo, err)
	}
	for _, f := range []func() (int, error){HighAce.HighValue, HighAce.LowValue} {
		if v, err := f(); err != nil || v != 14 {
			t.Fatalf("high ace value = %d, %v; want 14", v, err)
		}
	}
}

func TestRank_PlainValues(t *testing.T) {
	for r := Two; r <= King; r++ {
		hi, err1 := r.HighValue()
		lo, err2 := r.LowValue()
		if err1 != nil || err2 != nil {
			t.Fatalf("rank %d: unexpected errors %v / %v", r, err1, err2)
		}
		if hi != int(r) || lo != int(r) {
			t.Fatalf("rank %d: got high=%d low=%d", r, hi, lo)
		}
	}
}

func TestRank_JokersHaveNoValue(t *testing.T) {
	for _, r := range []Rank{LowJoker, HighJoker} {
		if !r.IsJoker() {
			t.Fatalf("rank %d should be a joker", r)
		}
		if _, err := r.HighValue(); !errors.Is(err, ErrUndefinedRankValue) {
			t.Fatalf("rank %d HighValue: expected ErrUndefinedRankValue, got %v", r, err)
		}
		if _, err := r.LowValue(); !errors.Is(err, ErrUndefinedRankValue) {
			t.Fatalf("rank %d LowValue: expected ErrUndefinedRankValue, got %v", r, err)
		}
	}
}

func TestRank_StringParseRoundTrip(t *testing.T) {
	seen := make(map[string]Rank)
	for code := 0; code <= 15; code++ {
		r := Rank(code)
		s := r.String()
		if prev, ok := seen[s]; ok {
			t.Fatalf("ranks %d and %d share token %q", prev, r, s)
		}
		seen[s] = r
		got, err := ParseRank(s)
		if err != nil || got != r {
			t.Fatalf("ParseRank(%q) = %d, %v; want %d", s, got, err, r)
		}
	}
	if r, err := ParseRank("t"); err != nil || r != Ten {
		t.Fatalf("ParseRank(t) = %d, %v", r, err)
	}
	for _, bad := range []string{"", "X", "16", "-1", "AA"} {
		if _, err := ParseRank(bad); !errors.Is(err, ErrInvalidCardString) {
			t.Fatalf("ParseRank(%q): expected ErrInvalidCardString, got %v", bad, err)
		}
	}
}
