package poker

import (
	"cmp"
	"fmt"

	"github.com/paulhankin/poker"
)

// ReferenceScore evaluates the hand with the paulhankin/poker lookup tables.
// Higher scores are stronger hands. Unlike Classify, the library treats
// A-2-3-4-5 as a straight.
func ReferenceScore(h Hand) (int16, error) {
	cards, err := referenceCards(h)
	if err != nil {
		return 0, err
	}
	return poker.Eval5(&cards), nil
}

// ReferenceCompare orders two hands by ReferenceScore, returning -1, 0 or +1
// like Compare.
func ReferenceCompare(a, b Hand) (int, error) {
	sa, err := ReferenceScore(a)
	if err != nil {
		return 0, err
	}
	sb, err := ReferenceScore(b)
	if err != nil {
		return 0, err
	}
	return cmp.Compare(sa, sb), nil
}

// Describe returns the reference library's text description of the hand.
func Describe(h Hand) (string, error) {
	cards, err := referenceCards(h)
	if err != nil {
		return "", err
	}
	return poker.Describe(cards[:])
}

func referenceCards(h Hand) ([HandSize]poker.Card, error) {
	var out [HandSize]poker.Card
	for i, c := range h.cards {
		card, err := toReference(c)
		if err != nil {
			return [HandSize]poker.Card{}, fmt.Errorf("invalid card at idx %d: %w", i, err)
		}
		out[i] = card
	}
	return out, nil
}

// Our ranks run 2..14 with Ace=14; the library uses 1..13 with Ace=1.
func toReference(c Card) (poker.Card, error) {
	var (
		zero poker.Card
		s    poker.Suit
	)
	switch c.Suit {
	case Clubs:
		s = poker.Club
	case Diamonds:
		s = poker.Diamond
	case Hearts:
		s = poker.Heart
	case Spades:
		s = poker.Spade
	default:
		return zero, fmt.Errorf("%w: %d", ErrUnknownSuit, c.Suit)
	}
	if !c.Rank.Valid() {
		return zero, fmt.Errorf("%w: %d", ErrInvalidRank, c.Rank)
	}
	r := poker.Rank(c.Rank)
	if c.Rank == Ace {
		r = poker.Rank(1)
	}
	return poker.MakeCard(s, r)
}
