package poker

import (
	"cmp"
	"slices"
)

// RankingKey returns the hand's tie-break key: ranks grouped by how many
// cards share them (quads, then trips, pairs, singles), higher ranks first
// within a group, each rank repeated once per card.
//
// For 4H 4D TC TS JH the key is [T T 4 4 J].
func RankingKey(h Hand) []Rank {
	type group struct {
		rank  Rank
		count int
	}
	groups := make([]group, 0, len(h.ranks))
	for r, n := range h.ranks {
		groups = append(groups, group{rank: r, count: n})
	}
	slices.SortFunc(groups, func(a, b group) int {
		if c := cmp.Compare(b.count, a.count); c != 0 {
			return c
		}
		return cmp.Compare(b.rank, a.rank)
	})

	key := make([]Rank, 0, HandSize)
	for _, g := range groups {
		for range g.count {
			key = append(key, g.rank)
		}
	}
	return key
}

// Compare orders two hands. It returns -1 if a loses to b, 0 on a tie and
// +1 if a beats b. Categories are compared first; equal categories fall
// back to comparing ranking keys position by position.
func Compare(a, b Hand) int {
	if c := cmp.Compare(Classify(a), Classify(b)); c != 0 {
		return c
	}
	return slices.Compare(RankingKey(a), RankingKey(b))
}

// Less reports whether a loses to b.
func Less(a, b Hand) bool {
	return Compare(a, b) < 0
}
