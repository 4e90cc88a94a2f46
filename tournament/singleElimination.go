package tournament

import (
	"time"

	"github.com/justinjudd/bracket/models"
)

// SingleElimination builds single elimination brackets: every match set sends its winners on until one set remains
type SingleElimination struct {
	Now   func() time.Time
	NewID func() string
}

// NewSingleElimination creates a bracket builder using the wall clock and xid ids
func NewSingleElimination() *SingleElimination {
	return &SingleElimination{Now: time.Now, NewID: newID}
}

// Build turns ranked entrants, highest seed first, into the full set DAG of a bracket.
// The first round has Fanin^maxRound sets, enough to seat everyone; sets with too few entrants are byes
func (s *SingleElimination) Build(g models.GameType, ranked []*models.Entrant) (*models.Bracket, error) {
	rules, err := models.RulesFor(g)
	if err != nil {
		return nil, err
	}
	if len(ranked) == 0 {
		return nil, models.Invalidf("cannot build a bracket without entrants")
	}
	if rules.Fanin() < 2 {
		return nil, models.Invalidf("game type %s cannot eliminate anyone", g)
	}

	minSets := ceilDiv(len(ranked), rules.BranchingFactor)
	maxRound := roundsNeeded(minSets, rules.Fanin())

	b := &models.Bracket{
		ID:       s.NewID(),
		Created:  s.Now().UTC(),
		GameType: g,
		Rounds:   maxRound + 2,
		Entrants: make(map[string]*models.Entrant, len(ranked)),
		Sets:     map[string]*models.MatchSet{},
	}
	for _, e := range ranked {
		if _, ok := b.Entrants[e.ID]; ok {
			return nil, models.Invalidf("entrant %s is seeded twice", e.ID)
		}
		b.Entrants[e.ID] = e
		b.Seeds = append(b.Seeds, e.ID)
	}

	current := wrapEntrants(ranked)
	for round := maxRound; round >= 0; round-- {
		current, err = s.createNextRound(rules, round, current)
		if err != nil {
			return nil, err
		}
		for _, sl := range current {
			b.Sets[sl.set.ID] = sl.set
		}
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// createNextRound creates Fanin^round sets out of the previous round's entrants and sets
func (s *SingleElimination) createNextRound(rules models.Rules, round int, previous []slot) ([]slot, error) {
	numSets := pow(rules.Fanin(), round)
	if len(previous) < numSets {
		return nil, models.Invalidf("round %d needs %d inputs, only %d available", round, numSets, len(previous))
	}

	next := make([]slot, 0, numSets)
	for _, inputs := range assignSlots(previous, numSets) {
		ms := &models.MatchSet{ID: s.NewID(), Round: round}
		for _, in := range inputs {
			if in.isSet() {
				ms.Predecessors = append(ms.Predecessors, in.set.ID)
			} else {
				ms.Added = append(ms.Added, in.entrant.ID)
			}
		}
		next = append(next, slot{set: ms})
	}
	return next, nil
}
