package batch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/luca-patrignani/poker-hands/domain/poker"
)

// CardsPerLine is the number of card codes on an input line: five for each player.
const CardsPerLine = 2 * poker.HandSize

var ErrMalformedLine = errors.New("malformed line")

// LineError reports the 1-based input line that failed to parse.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Deal is one parsed input line.
type Deal struct {
	Line    int
	Player1 poker.Hand
	Player2 poker.Hand
	// DefaultedSuits counts card codes whose unknown suit became Diamonds.
	DefaultedSuits int
}

// ParseLine parses a line of ten card codes into a Deal. With strict set,
// unknown suit codes are an error; otherwise they become Diamonds.
func ParseLine(line string, strict bool) (Deal, error) {
	fields := strings.Fields(line)
	if len(fields) != CardsPerLine {
		return Deal{}, fmt.Errorf("%w: expected %d cards, got %d", ErrMalformedLine, CardsPerLine, len(fields))
	}

	var (
		d     Deal
		cards [CardsPerLine]poker.Card
	)
	for i, code := range fields {
		if strict {
			c, err := poker.ParseCard(code)
			if err != nil {
				return Deal{}, fmt.Errorf("card %d: %w", i+1, err)
			}
			cards[i] = c
			continue
		}
		c, defaulted, err := poker.ParseCardCompat(code)
		if err != nil {
			return Deal{}, fmt.Errorf("card %d: %w", i+1, err)
		}
		if defaulted {
			d.DefaultedSuits++
		}
		cards[i] = c
	}
	d.Player1 = poker.NewHand(cards[:poker.HandSize]...)
	d.Player2 = poker.NewHand(cards[poker.HandSize:]...)
	return d, nil
}

// parseAll parses every non-blank line in order and stops at the first
// malformed one.
func parseAll(lines []string, strict bool) ([]Deal, error) {
	deals := make([]Deal, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		d, err := ParseLine(line, strict)
		if err != nil {
			return nil, &LineError{Line: i + 1, Err: err}
		}
		d.Line = i + 1
		deals = append(deals, d)
	}
	return deals, nil
}
