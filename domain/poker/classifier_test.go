package poker

import "testing"

func hand(codes ...string) Hand {
	return NewHand(MustParseCards(codes...)...)
}

func TestClassify(t *testing.T) {
	cases := []struct {
		cards    []string
		expected HandCategory
	}{
		{[]string{"TH", "JH", "QH", "KH", "AH"}, RoyalFlush},
		{[]string{"9S", "TS", "JS", "QS", "KS"}, StraightFlush},
		{[]string{"9C", "9D", "9H", "9S", "2C"}, FourOfAKind},
		{[]string{"3C", "3D", "3S", "9S", "9D"}, FullHouse},
		{[]string{"3D", "6D", "7D", "TD", "QD"}, Flush},
		{[]string{"4H", "5D", "6C", "7S", "8H"}, Straight},
		{[]string{"TC", "JD", "QS", "KH", "AC"}, Straight},
		{[]string{"2D", "9C", "AS", "AH", "AC"}, ThreeOfAKind},
		{[]string{"4H", "4D", "TC", "TS", "JH"}, TwoPair},
		{[]string{"5H", "5C", "6S", "7S", "KD"}, OnePair},
		{[]string{"5D", "8C", "9S", "JS", "AC"}, HighCard},
	}
	for _, tc := range cases {
		h := hand(tc.cards...)
		if got := Classify(h); got != tc.expected {
			t.Errorf("%v: expected %v, got %v", h, tc.expected, got)
		}
	}
}

func TestClassifyNoWheel(t *testing.T) {
	h := hand("AS", "2D", "3C", "4H", "5S")
	if h.IsStraight() {
		t.Fatal("A-2-3-4-5 must not be a straight")
	}
	if got := Classify(h); got != HighCard {
		t.Fatalf("expected %v, got %v", HighCard, got)
	}

	h = hand("AH", "2H", "3H", "4H", "5H")
	if got := Classify(h); got != Flush {
		t.Fatalf("expected suited wheel to be a %v, got %v", Flush, got)
	}
}

func TestClassifyNonConsecutiveIsHighCard(t *testing.T) {
	h := hand("2H", "4D", "6C", "8S", "10H")
	if got := Classify(h); got != HighCard {
		t.Fatalf("expected %v, got %v", HighCard, got)
	}
}

func TestClassifyDuplicateCards(t *testing.T) {
	h := hand("4H", "4D", "5H", "5H", "6H")
	if !h.HasDuplicates() {
		t.Fatal("expected duplicates to be detected")
	}
	if got := Classify(h); got != TwoPair {
		t.Fatalf("expected %v, got %v", TwoPair, got)
	}

	h = hand("5H", "5H", "7H", "6H", "6C")
	if got := Classify(h); got != TwoPair {
		t.Fatalf("expected %v, got %v", TwoPair, got)
	}

	// five copies of one card: no straight, four of a kind or pair rule applies
	h = hand("5H", "5H", "5H", "5H", "5H")
	if got := Classify(h); got != Flush {
		t.Fatalf("expected %v, got %v", Flush, got)
	}
}

func TestClassifyRoyalImpliesStraightFlush(t *testing.T) {
	for _, s := range []Suit{Spades, Hearts, Clubs, Diamonds} {
		h := NewHand(
			Card{Rank: Ten, Suit: s},
			Card{Rank: Jack, Suit: s},
			Card{Rank: Queen, Suit: s},
			Card{Rank: King, Suit: s},
			Card{Rank: Ace, Suit: s},
		)
		if Classify(h) != RoyalFlush {
			t.Fatalf("%v: expected royal flush", h)
		}
		if !h.IsStraight() || !h.IsFlush() {
			t.Fatalf("%v: royal flush must be a straight and a flush", h)
		}
	}
}

func TestNewHandWrongSizePanics(t *testing.T) {
	for _, n := range []int{0, 4, 6} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic for %d cards", n)
				}
			}()
			NewHand(make([]Card, n)...)
		}()
	}
}

func TestHandCountsAreCopies(t *testing.T) {
	h := hand("4H", "4D", "TC", "TS", "JH")
	ranks := h.RankCounts()
	ranks[Four] = 99
	if h.RankCounts()[Four] != 2 {
		t.Fatal("mutating RankCounts result changed the hand")
	}

	suits := h.SuitCounts()
	total := 0
	for _, n := range suits {
		total += n
	}
	if total != HandSize {
		t.Fatalf("expected suit counts to sum to %d, got %d", HandSize, total)
	}
}

func TestHandCategoryOrder(t *testing.T) {
	order := []HandCategory{HighCard, OnePair, TwoPair, ThreeOfAKind, Straight,
		Flush, FullHouse, FourOfAKind, StraightFlush, RoyalFlush}
	for i := 1; i < len(order); i++ {
		if order[i-1] >= order[i] {
			t.Fatalf("expected %v < %v", order[i-1], order[i])
		}
	}
	if RoyalFlush.String() != "Royal flush" {
		t.Fatalf("unexpected name %q", RoyalFlush.String())
	}
}
