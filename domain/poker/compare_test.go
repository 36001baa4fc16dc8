package poker

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRankingKey(t *testing.T) {
	cases := []struct {
		cards    []string
		expected []Rank
	}{
		{[]string{"4H", "4D", "TC", "TS", "JH"}, []Rank{Ten, Ten, Four, Four, Jack}},
		{[]string{"4H", "4D", "5H", "5H", "6H"}, []Rank{Five, Five, Four, Four, Six}},
		{[]string{"5H", "5H", "7H", "6H", "6C"}, []Rank{Six, Six, Five, Five, Seven}},
		{[]string{"3C", "3D", "3S", "9S", "9D"}, []Rank{Three, Three, Three, Nine, Nine}},
		{[]string{"9C", "9D", "9H", "9S", "2C"}, []Rank{Nine, Nine, Nine, Nine, Two}},
		{[]string{"5D", "8C", "9S", "JS", "AC"}, []Rank{Ace, Jack, Nine, Eight, Five}},
		{[]string{"QH", "4D", "QC", "9H", "6S"}, []Rank{Queen, Queen, Nine, Six, Four}},
	}
	for _, tc := range cases {
		got := RankingKey(hand(tc.cards...))
		if diff := cmp.Diff(tc.expected, got); diff != "" {
			t.Errorf("%v: ranking key mismatch (-want +got):\n%s", tc.cards, diff)
		}
	}
}

func TestCompareTwoPairByPairs(t *testing.T) {
	h1 := hand("4H", "4D", "5H", "5H", "6H")
	h2 := hand("5H", "5H", "7H", "6H", "6C")
	if got := Compare(h1, h2); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
	if !Less(h1, h2) {
		t.Fatal("expected first hand to lose")
	}
	if got := Compare(h2, h1); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}

func TestCompareTwoPairByKicker(t *testing.T) {
	h1 := hand("4H", "4D", "TC", "TS", "JH")
	h2 := hand("4H", "4D", "TC", "TS", "AH")
	if Classify(h1) != TwoPair || Classify(h2) != TwoPair {
		t.Fatal("expected both hands to be two pair")
	}
	if got := Compare(h1, h2); got != -1 {
		t.Fatalf("expected the ace kicker to win, got %d", got)
	}
}

func TestCompareCategoryDecides(t *testing.T) {
	// three aces lose to a queen-high flush
	h1 := hand("2D", "9C", "AS", "AH", "AC")
	h2 := hand("3D", "6D", "7D", "TD", "QD")
	if got := Compare(h1, h2); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
}

func TestCompareEqualAcrossSuits(t *testing.T) {
	h1 := hand("2H", "3D", "5S", "9C", "KD")
	h2 := hand("2D", "3H", "5C", "9S", "KH")
	if got := Compare(h1, h2); got != 0 {
		t.Fatalf("expected a tie, got %d", got)
	}
	if Less(h1, h2) || Less(h2, h1) {
		t.Fatal("tied hands must not be less than each other")
	}
}

func TestCompareFullHouseByTrips(t *testing.T) {
	h1 := hand("2H", "2D", "4C", "4D", "4S")
	h2 := hand("3C", "3D", "3S", "9S", "9D")
	if got := Compare(h1, h2); got != 1 {
		t.Fatalf("expected trips of fours to win, got %d", got)
	}
}

func TestCompareStraightsByTopCard(t *testing.T) {
	h1 := hand("4H", "5D", "6C", "7S", "8H")
	h2 := hand("5S", "6H", "7D", "8C", "9D")
	if got := Compare(h1, h2); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
}
