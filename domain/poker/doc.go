// Package poker implements five-card poker hand ranking.
//
// # Core Types
//
// Card: a rank (2 through Ace, Ace high) and a suit.
//
// Hand: exactly five cards together with their rank and suit histograms.
// NewHand panics on any other card count.
//
// HandCategory: the ten hand classes from HighCard to RoyalFlush, ordered
// by strength.
//
// # Ranking
//
// Classify assigns a category, RankingKey produces the tie-break key and
// Compare combines both into a total order between hands. Straights are
// strictly Ace high: the wheel (A-2-3-4-5) is treated as a high card hand.
//
// # Notation
//
// Cards are written as a rank code followed by a suit code: "AS", "TD",
// "10H", "7C". ParseCard rejects unknown suit codes; ParseCardCompat maps
// them to Diamonds for compatibility with existing hand files.
//
// # Reference Evaluation
//
// ReferenceScore and Describe delegate to github.com/paulhankin/poker and are
// used to cross-check Compare on real data.
package poker
