package tournament

import (
	"sort"

	"github.com/justinjudd/bracket/models"
)

// CompleteBracket rates a finished bracket and prepares the commit of its winners.
// Rounds are rated in play order and each round's changes are applied before the next round is rated,
// since later expected scores depend on the updated ratings. A team's change is split evenly over its
// members; integer division drops any remainder. Byes and forfeits have no games and move nobody
func CompleteBracket(b *models.Bracket, competitors models.Competitors, engine *Engine) (*models.Commit, error) {
	if b.Committed {
		return nil, models.Conflictf("bracket %s was already completed", b.ID)
	}
	final, err := b.Final()
	if err != nil {
		return nil, err
	}
	if len(final.Winners) != 1 {
		return nil, models.Invalidf("the final set needs exactly one winner, it has %d", len(final.Winners))
	}
	champion, err := b.Entrant(final.Winners[0])
	if err != nil {
		return nil, err
	}

	working := models.Competitors{}
	for _, e := range b.Entrants {
		for _, id := range e.Members {
			c, ok := competitors[id]
			if !ok {
				return nil, models.NotFoundf("competitor %s", id)
			}
			working[id] = c.Clone()
		}
	}
	rating := func(entrantID string) int {
		return working.EntrantRating(b.Entrants[entrantID], b.GameType)
	}

	deltas := map[string]int{}
	sets := b.SortedSets()
	for _, round := range b.RoundIndexes() {
		roundDeltas := map[string]int{}
		for _, ms := range sets {
			if ms.Round != round || len(ms.Matches) == 0 {
				continue
			}
			games := make([][]string, len(ms.Matches))
			for i, m := range ms.Matches {
				for _, id := range m.Placements {
					if _, err := b.Entrant(id); err != nil {
						return nil, err
					}
				}
				games[i] = m.Placements
			}
			d, err := engine.Delta(games, b.GameType, rating)
			if err != nil {
				return nil, err
			}
			for id, v := range d {
				roundDeltas[id] += v
			}
		}

		for _, entrantID := range sortedKeys(roundDeltas) {
			e := b.Entrants[entrantID]
			share := roundDeltas[entrantID] / len(e.Members)
			for _, id := range e.Members {
				c := working[id]
				c.SetRating(b.GameType, c.Rating(b.GameType)+share)
				deltas[id] += share
			}
		}
	}

	commit := &models.Commit{
		BracketID: b.ID,
		Version:   b.Version,
		Winners:   append([]string(nil), champion.Members...),
		Deltas:    deltas,
	}
	for _, id := range sortedKeys(deltas) {
		commit.Competitors = append(commit.Competitors, working[id])
	}
	return commit, nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
