package models

import "sort"

// Rules returns the rules of the bracket's game type
func (b *Bracket) Rules() Rules {
	return rulesTable[b.GameType]
}

// Set looks up a match set of this bracket
func (b *Bracket) Set(id string) (*MatchSet, error) {
	ms, ok := b.Sets[id]
	if !ok {
		return nil, NotFoundf("match set %s in bracket %s", id, b.ID)
	}
	return ms, nil
}

// Entrant looks up an entrant of this bracket
func (b *Bracket) Entrant(id string) (*Entrant, error) {
	e, ok := b.Entrants[id]
	if !ok {
		return nil, NotFoundf("entrant %s in bracket %s", id, b.ID)
	}
	return e, nil
}

// EntrantByMembers finds the entrant made of exactly this member combination, if any
func (b *Bracket) EntrantByMembers(members []string) *Entrant {
	key := MemberKey(members)
	for _, e := range b.Entrants {
		if e.MemberKey() == key {
			return e
		}
	}
	return nil
}

// Participants are the entrants currently known to play in the set: winners of completed predecessors, then the added entrants
func (b *Bracket) Participants(ms *MatchSet) []string {
	var ids []string
	for _, id := range ms.Predecessors {
		if pred, ok := b.Sets[id]; ok {
			ids = append(ids, pred.Winners...)
		}
	}
	return append(ids, ms.Added...)
}

// IsParticipant reports if the entrant currently plays in the set
func (b *Bracket) IsParticipant(ms *MatchSet, entrantID string) bool {
	for _, id := range b.Participants(ms) {
		if id == entrantID {
			return true
		}
	}
	return false
}

// TotalParticipants counts the entrants expected in the set, including those still to come from open predecessors
func (b *Bracket) TotalParticipants(ms *MatchSet) int {
	total := len(ms.Added)
	for _, id := range ms.Predecessors {
		if pred, ok := b.Sets[id]; ok {
			total += b.ExpectedAdvancing(pred)
		}
	}
	return total
}

// ExpectedAdvancing is how many entrants will move on from the set
func (b *Bracket) ExpectedAdvancing(ms *MatchSet) int {
	if ms.Completed() {
		return len(ms.Winners)
	}
	total := b.TotalParticipants(ms)
	if advance := b.Rules().AdvancementCount; advance < total {
		return advance
	}
	return total
}

// IsByeRound determines if everyone present advances without playing
func (b *Bracket) IsByeRound(ms *MatchSet) bool {
	return b.Rules().AdvancementCount >= b.TotalParticipants(ms)
}

// IsFull reports if no more entrants fit in the set
func (b *Bracket) IsFull(ms *MatchSet) bool {
	return b.TotalParticipants(ms) >= b.Rules().BranchingFactor
}

// Successors are the sets fed by the winners of ms
func (b *Bracket) Successors(ms *MatchSet) []*MatchSet {
	var out []*MatchSet
	for _, s := range b.SortedSets() {
		for _, id := range s.Predecessors {
			if id == ms.ID {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

// Final returns the terminal set, the only one in round 0
func (b *Bracket) Final() (*MatchSet, error) {
	var final *MatchSet
	for _, ms := range b.Sets {
		if ms.Round != 0 {
			continue
		}
		if final != nil {
			return nil, Invalidf("bracket %s has more than one final set", b.ID)
		}
		final = ms
	}
	if final == nil {
		return nil, NotFoundf("final set of bracket %s", b.ID)
	}
	return final, nil
}

// SortedSets orders the sets in play order: earliest round first, then by id
func (b *Bracket) SortedSets() []*MatchSet {
	sets := make([]*MatchSet, 0, len(b.Sets))
	for _, ms := range b.Sets {
		sets = append(sets, ms)
	}
	sort.Slice(sets, func(i, j int) bool {
		if sets[i].Round != sets[j].Round {
			return sets[i].Round > sets[j].Round
		}
		return sets[i].ID < sets[j].ID
	})
	return sets
}

// RoundIndexes lists the round indexes in play order, ending with 0
func (b *Bracket) RoundIndexes() []int {
	seen := map[int]bool{}
	var rounds []int
	for _, ms := range b.SortedSets() {
		if !seen[ms.Round] {
			seen[ms.Round] = true
			rounds = append(rounds, ms.Round)
		}
	}
	return rounds
}

// Validate checks that no set expects more entrants than the game type allows, or holds an entrant twice
func (b *Bracket) Validate() error {
	max := b.Rules().BranchingFactor
	for _, ms := range b.SortedSets() {
		if total := b.TotalParticipants(ms); total > max {
			return Invalidf("match set %s expects %d entrants, at most %d allowed", ms.ID, total, max)
		}
		seen := map[string]bool{}
		for _, id := range b.Participants(ms) {
			if seen[id] {
				return Invalidf("entrant %s would play in match set %s twice", id, ms.ID)
			}
			seen[id] = true
		}
	}
	return nil
}

// IsAlive reports if the entrant has not been eliminated: it is waiting in an open set, or won the final
func (b *Bracket) IsAlive(entrantID string) bool {
	for _, ms := range b.Sets {
		if b.aliveIn(ms, entrantID) {
			return true
		}
	}
	return false
}

// IsAliveOutside is IsAlive without ms, and without whatever ms already sent on to later sets
func (b *Bracket) IsAliveOutside(ms *MatchSet, entrantID string) bool {
	cleared := ms.Clone()
	cleared.Winners = nil
	b.Sets[ms.ID] = cleared
	defer func() { b.Sets[ms.ID] = ms }()

	for _, other := range b.Sets {
		if other.ID != ms.ID && b.aliveIn(other, entrantID) {
			return true
		}
	}
	return false
}

func (b *Bracket) aliveIn(ms *MatchSet, entrantID string) bool {
	if !b.IsParticipant(ms, entrantID) {
		return false
	}
	return !ms.Completed() || (ms.Round == 0 && contains(ms.Winners, entrantID))
}

func contains(ids []string, id string) bool {
	for _, i := range ids {
		if i == id {
			return true
		}
	}
	return false
}
