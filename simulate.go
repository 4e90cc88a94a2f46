package bracket

import (
	"math/rand"

	"github.com/justinjudd/bracket/models"
	"github.com/justinjudd/bracket/tournament"
)

// PlayableSets lists the open sets whose earlier sets are all completed, in play order
func PlayableSets(b *models.Bracket) []*models.MatchSet {
	var out []*models.MatchSet
	for _, ms := range b.SortedSets() {
		if ms.Completed() {
			continue
		}
		ready := true
		for _, id := range ms.Predecessors {
			if pred, ok := b.Sets[id]; !ok || !pred.Completed() {
				ready = false
				break
			}
		}
		if ready {
			out = append(out, ms)
		}
	}
	return out
}

// PlayRandomSet makes up a result for the set. Byes advance everyone present. Head to head sets are a best of three;
// larger sets play one game and the top finishers advance. The final always crowns a single winner
func PlayRandomSet(b *models.Bracket, ms *models.MatchSet, r *rand.Rand) tournament.Result {
	participants := b.Participants(ms)
	if b.IsByeRound(ms) {
		if ms.Round == 0 && len(participants) > 1 {
			return tournament.Result{Winners: []string{participants[r.Intn(len(participants))]}}
		}
		return tournament.Result{Winners: participants}
	}
	advance := b.Rules().AdvancementCount
	if ms.Round == 0 {
		advance = 1
	}

	playGame := func() []string {
		places := r.Perm(len(participants))
		game := make([]string, len(participants))
		for i, place := range places {
			game[place] = participants[i]
		}
		return game
	}

	if len(participants) > 2 {
		game := playGame()
		return tournament.Result{Winners: game[:advance], Games: [][]string{game}}
	}

	var games [][]string
	wins := map[string]int{}
	for {
		game := playGame()
		games = append(games, game)
		wins[game[0]]++
		if wins[game[0]] == 2 {
			return tournament.Result{Winners: game[:1], Games: games}
		}
	}
}

// PlayOut plays every remaining set of the bracket with random results
func (m *Manager) PlayOut(bracketID string, r *rand.Rand) (*models.Bracket, error) {
	b, err := m.Store.Bracket(bracketID)
	if err != nil {
		return nil, err
	}
	for {
		sets := PlayableSets(b)
		if len(sets) == 0 {
			return b, nil
		}
		for _, ms := range sets {
			b, err = m.CompleteMatchSet(bracketID, ms.ID, PlayRandomSet(b, ms, r))
			if err != nil {
				return nil, err
			}
		}
	}
}
