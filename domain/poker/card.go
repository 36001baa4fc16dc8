package poker

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Suit of a card. Suits are unordered; they only matter for flushes.
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Clubs
	Diamonds
)

// Rank of a card, valued 2 through 14. Aces are always high.
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var (
	ErrInvalidCard = errors.New("invalid card code")
	ErrInvalidRank = errors.New("invalid rank")
	ErrUnknownSuit = errors.New("unknown suit")
)

// Card represents a playing card with rank and suit.
type Card struct {
	Rank Rank
	Suit Suit
}

// Valid reports whether the rank is in 2..14 and the suit is one of the four suits.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

func (s Suit) Valid() bool {
	return s <= Diamonds
}

// String returns the rank code used in card notation (2-9, T, J, Q, K, A).
func (r Rank) String() string {
	switch r {
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	if r.Valid() {
		return strconv.Itoa(int(r))
	}
	return "?"
}

func (s Suit) String() string {
	switch s {
	case Spades:
		return "S"
	case Hearts:
		return "H"
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	}
	return "?"
}

// String returns the card code, e.g. "TH" or "AS".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// ParseCard parses a card code such as "AS", "TD" or "10H".
// Unrecognized suit characters are an error.
func ParseCard(s string) (Card, error) {
	rank, suitCode, err := splitCard(s)
	if err != nil {
		return Card{}, err
	}
	suit, ok := parseSuit(suitCode)
	if !ok {
		return Card{}, fmt.Errorf("%w %q in card %q", ErrUnknownSuit, suitCode, s)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCardCompat parses a card code like ParseCard but maps any
// unrecognized suit character, including non-ASCII ones such as '♦', to
// Diamonds, reporting it through defaulted. Existing hand files rely on this.
func ParseCardCompat(s string) (c Card, defaulted bool, err error) {
	rank, suitCode, err := splitCard(s)
	if err != nil {
		return Card{}, false, err
	}
	suit, ok := parseSuit(suitCode)
	if !ok {
		return Card{Rank: rank, Suit: Diamonds}, true, nil
	}
	return Card{Rank: rank, Suit: suit}, false, nil
}

// MustParseCards parses a list of card codes and panics on the first error.
// Intended for fixed card lists in code and tests.
func MustParseCards(codes ...string) []Card {
	cards := make([]Card, len(codes))
	for i, code := range codes {
		c, err := ParseCard(code)
		if err != nil {
			panic(err)
		}
		cards[i] = c
	}
	return cards
}

// splitCard separates a card code into its rank and its suit, the suit
// being the last rune. The rank part must be one or two bytes.
func splitCard(s string) (Rank, rune, error) {
	suit, size := utf8.DecodeLastRuneInString(s)
	rankCode := s[:len(s)-size]
	if size == 0 || len(rankCode) < 1 || len(rankCode) > 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}
	rank, ok := parseRank(rankCode)
	if !ok {
		return 0, 0, fmt.Errorf("%w %q in card %q", ErrInvalidRank, rankCode, s)
	}
	return rank, suit, nil
}

func parseRank(s string) (Rank, bool) {
	switch s {
	case "T", "10":
		return Ten, true
	case "J":
		return Jack, true
	case "Q":
		return Queen, true
	case "K":
		return King, true
	case "A":
		return Ace, true
	}
	if len(s) == 1 && s[0] >= '2' && s[0] <= '9' {
		return Rank(s[0] - '0'), true
	}
	return 0, false
}

func parseSuit(r rune) (Suit, bool) {
	switch r {
	case 'S':
		return Spades, true
	case 'H':
		return Hearts, true
	case 'C':
		return Clubs, true
	case 'D':
		return Diamonds, true
	}
	return 0, false
}
