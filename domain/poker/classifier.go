package poker

import "fmt"

// HandCategory is the class of a five-card hand. Categories compare by
// their numeric value: a higher category always beats a lower one.
type HandCategory int

const (
	HighCard HandCategory = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

func (c HandCategory) String() string {
	switch c {
	case HighCard:
		return "High card"
	case OnePair:
		return "One pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	case RoyalFlush:
		return "Royal flush"
	}
	return fmt.Sprintf("HandCategory(%d)", int(c))
}

var royalRanks = [...]Rank{Ten, Jack, Queen, King, Ace}

// Classify returns the category of the hand.
//
// Categories are checked from most to least specific and the first match
// wins, since a royal flush is also a straight flush, which in turn is both
// a straight and a flush.
//
// Aces are always high: A-2-3-4-5 is not a straight.
func Classify(h Hand) HandCategory {
	switch {
	case h.isRoyal():
		return RoyalFlush
	case h.IsStraight() && h.IsFlush():
		return StraightFlush
	case h.countOf(4) > 0:
		return FourOfAKind
	case h.countOf(3) == 1 && h.countOf(2) == 1:
		return FullHouse
	case h.IsFlush():
		return Flush
	case h.IsStraight():
		return Straight
	case h.countOf(3) > 0:
		return ThreeOfAKind
	case h.countOf(2) == 2:
		return TwoPair
	case h.countOf(2) == 1:
		return OnePair
	}
	return HighCard
}

// IsFlush reports whether all five cards share a suit.
func (h Hand) IsFlush() bool {
	return len(h.suits) == 1
}

// IsStraight reports whether the hand holds five distinct consecutive ranks.
func (h Hand) IsStraight() bool {
	if len(h.ranks) != HandSize {
		return false
	}
	lo, hi := Ace, Two
	for r := range h.ranks {
		lo = min(lo, r)
		hi = max(hi, r)
	}
	return hi-lo == HandSize-1
}

func (h Hand) isRoyal() bool {
	if !h.IsFlush() || len(h.ranks) != HandSize {
		return false
	}
	for _, r := range royalRanks {
		if h.ranks[r] == 0 {
			return false
		}
	}
	return true
}
