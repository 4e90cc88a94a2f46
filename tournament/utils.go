package tournament

import (
	"github.com/justinjudd/bracket/models"
	"github.com/rs/xid"
)

// newID generates ids for sets, matches and entrants created by the core
var newID = func() string {
	return xid.New().String()
}

// slot is one input of a match set: either a seeded entrant or the winners of an earlier set
type slot struct {
	entrant *models.Entrant
	set     *models.MatchSet
}

func (s slot) isSet() bool {
	return s.set != nil
}

func wrapEntrants(entrants []*models.Entrant) []slot {
	slots := make([]slot, len(entrants))
	for i, e := range entrants {
		slots[i] = slot{entrant: e}
	}
	return slots
}

// assignSlots splits the ranked slots of the previous round into numSets groups.
// Group i starts at rank i and walks the list snake style, alternating between the two step
// sizes that mirror it around the round trip of 2*numSets ranks. With numSets=4 and 8 slots this
// gives {1,8} {2,7} {3,6} {4,5}, so the top seeds can only meet as late as possible.
func assignSlots(previous []slot, numSets int) [][]slot {
	roundTrip := 2 * numSets
	groups := make([][]slot, numSets)
	for i := 1; i <= numSets; i++ {
		step := roundTrip + 1 - 2*i
		for rank := i; rank <= len(previous); {
			groups[i-1] = append(groups[i-1], previous[rank-1])
			rank += step
			step = roundTrip - step
		}
	}
	return groups
}

// roundsNeeded is ceil(log_fanin(minSets)), without going through floating point
func roundsNeeded(minSets, fanin int) int {
	rounds := 0
	for capacity := 1; capacity < minSets; capacity *= fanin {
		rounds++
	}
	return rounds
}

func pow(base, exp int) int {
	out := 1
	for i := 0; i < exp; i++ {
		out *= base
	}
	return out
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
