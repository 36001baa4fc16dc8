package poker

import (
	"fmt"
	"maps"
	"strings"
)

// HandSize is the number of cards in a hand.
const HandSize = 5

// Hand is an immutable five-card poker hand.
//
// The rank and suit histograms are computed once by NewHand and are never
// modified afterwards, so a Hand can be shared freely between goroutines.
type Hand struct {
	cards [HandSize]Card
	ranks map[Rank]int
	suits map[Suit]int
}

// NewHand builds a hand from exactly five cards.
// It panics if given any other number of cards: that is a bug in the caller,
// not bad input. Duplicate cards are accepted.
func NewHand(cards ...Card) Hand {
	if len(cards) != HandSize {
		panic(fmt.Sprintf("poker: a hand needs %d cards, got %d", HandSize, len(cards)))
	}
	h := Hand{
		ranks: make(map[Rank]int, HandSize),
		suits: make(map[Suit]int, 4),
	}
	for i, c := range cards {
		h.cards[i] = c
		h.ranks[c.Rank]++
		h.suits[c.Suit]++
	}
	return h
}

// Cards returns the hand's cards in construction order.
func (h Hand) Cards() [HandSize]Card {
	return h.cards
}

// RankCounts returns a copy of the rank histogram.
func (h Hand) RankCounts() map[Rank]int {
	return maps.Clone(h.ranks)
}

// SuitCounts returns a copy of the suit histogram.
func (h Hand) SuitCounts() map[Suit]int {
	return maps.Clone(h.suits)
}

// HasDuplicates reports whether the same physical card appears more than once.
func (h Hand) HasDuplicates() bool {
	seen := make(map[Card]struct{}, HandSize)
	for _, c := range h.cards {
		if _, ok := seen[c]; ok {
			return true
		}
		seen[c] = struct{}{}
	}
	return false
}

func (h Hand) String() string {
	codes := make([]string, HandSize)
	for i, c := range h.cards {
		codes[i] = c.String()
	}
	return strings.Join(codes, " ")
}

// countOf returns how many ranks appear exactly n times.
func (h Hand) countOf(n int) int {
	k := 0
	for _, c := range h.ranks {
		if c == n {
			k++
		}
	}
	return k
}
