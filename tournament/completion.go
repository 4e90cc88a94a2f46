package tournament

import (
	"sort"
	"strings"

	"github.com/justinjudd/bracket/models"
)

// Result is a reported outcome of a match set
type Result struct {
	Winners []string   // entrant ids
	Games   [][]string // per game, entrant ids from first to last place
	Forfeit bool
}

// CompleteMatchSet validates a result against the bracket and records it on the set.
// A set can be completed again as long as no later set has consumed its winners; the matches recorded
// earlier are then superseded and reported for deletion. The bracket passed in is updated in place and
// the returned changes are what the caller has to store
func CompleteMatchSet(b *models.Bracket, setID string, result Result) (*models.Changes, error) {
	ms, err := b.Set(setID)
	if err != nil {
		return nil, err
	}
	rules := b.Rules()

	for _, id := range ms.Predecessors {
		pred, err := b.Set(id)
		if err != nil {
			return nil, err
		}
		if !pred.Completed() {
			return nil, models.Invalidf("previous match set %s must be completed first", id)
		}
	}

	if len(result.Winners) == 0 {
		return nil, models.Invalidf("match set must have winners to be completed")
	}
	if len(result.Winners) > rules.AdvancementCount {
		return nil, models.Invalidf("only %d entrants may win for game type %s", rules.AdvancementCount, b.GameType)
	}

	bye := b.IsByeRound(ms)
	if (result.Forfeit || bye) && len(result.Games) > 0 {
		return nil, models.Invalidf("games must be empty for a forfeit or bye")
	}
	if !result.Forfeit && !bye && len(result.Games) == 0 {
		return nil, models.Invalidf("games must be submitted unless the set is a forfeit")
	}

	participants := b.Participants(ms)
	isParticipant := make(map[string]bool, len(participants))
	for _, id := range participants {
		isParticipant[id] = true
	}

	won := map[string]bool{}
	for _, id := range result.Winners {
		if !isParticipant[id] {
			return nil, models.Invalidf("entrant %s is not part of match set %s", id, ms.ID)
		}
		if won[id] {
			return nil, models.Invalidf("entrant %s is listed as a winner twice", id)
		}
		if b.IsAliveOutside(ms, id) {
			return nil, models.Invalidf("entrant %s is still playing elsewhere in the bracket", id)
		}
		won[id] = true
	}
	if err := checkGames(result.Games, isParticipant, ms.ID); err != nil {
		return nil, err
	}

	if ms.Completed() {
		for _, next := range b.Successors(ms) {
			if next.Completed() {
				return nil, models.Invalidf("match set %s was already played on in %s", ms.ID, next.ID)
			}
		}
	}

	updated := ms.Clone()
	updated.Winners = append([]string(nil), result.Winners...)
	updated.Losers = nil
	for _, id := range participants {
		if !won[id] {
			updated.Losers = append(updated.Losers, id)
		}
	}
	updated.Matches = nil
	for _, placements := range result.Games {
		updated.Matches = append(updated.Matches, &models.Match{
			ID:         newID(),
			Placements: append([]string(nil), placements...),
			GameType:   b.GameType,
		})
	}

	b.Sets[ms.ID] = updated
	if err := b.Validate(); err != nil {
		b.Sets[ms.ID] = ms
		return nil, err
	}

	changes := &models.Changes{Sets: []*models.MatchSet{updated}}
	for _, m := range ms.Matches {
		changes.DeletedMatches = append(changes.DeletedMatches, m.ID)
	}
	return changes, nil
}

// checkGames makes sure every game only lists participants, each once, and that all games share one roster
func checkGames(games [][]string, isParticipant map[string]bool, setID string) error {
	roster := ""
	for i, game := range games {
		if len(game) == 0 {
			return models.Invalidf("game %d has no entrants", i+1)
		}
		seen := map[string]bool{}
		for _, id := range game {
			if !isParticipant[id] {
				return models.Invalidf("game %d references entrant %s, not part of match set %s", i+1, id, setID)
			}
			if seen[id] {
				return models.Invalidf("game %d lists entrant %s twice", i+1, id)
			}
			seen[id] = true
		}
		key := rosterKey(game)
		if i == 0 {
			roster = key
		} else if key != roster {
			return models.Invalidf("game %d was played by different entrants than game 1", i+1)
		}
	}
	return nil
}

func rosterKey(ids []string) string {
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}
