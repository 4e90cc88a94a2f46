package tournament

import (
	"math"

	"github.com/justinjudd/bracket/models"
)

// KFactor is the most a rating can move from one set
const KFactor = 32

// Scorer turns placements into actual scores. Every game is worth one point, split over the pairwise comparisons of its entrants
type Scorer interface {
	ActualScores(games [][]string, advancing int) map[string]float64
}

// Indifferent treats all advancing entrants alike and all others alike: in Mario Kart, first and second both simply won
type Indifferent struct{}

func (Indifferent) ActualScores(games [][]string, advancing int) map[string]float64 {
	n := len(games[0])
	if advancing > n {
		advancing = n
	}
	losers := n - advancing
	pairs := float64(pairCount(n))

	scores := make(map[string]float64, n)
	for _, game := range games {
		for place, id := range game {
			var points float64
			if place < advancing {
				// a full point for every loser, half for every other winner
				points = float64(losers) + 0.5*float64(advancing-1)
			} else {
				points = 0.5 * float64(losers-1)
			}
			scores[id] += points / pairs
		}
	}
	return scores
}

// Ranked rewards every place: an entrant beats everyone who finished behind it
type Ranked struct{}

func (Ranked) ActualScores(games [][]string, advancing int) map[string]float64 {
	n := len(games[0])
	pairs := float64(pairCount(n))

	scores := make(map[string]float64, n)
	for _, game := range games {
		for place, id := range game {
			scores[id] += float64(n-place-1) / pairs
		}
	}
	return scores
}

// NewScorer returns the scorer registered under name: indifferent or ranked
func NewScorer(name string) (Scorer, error) {
	switch name {
	case "indifferent":
		return Indifferent{}, nil
	case "ranked":
		return Ranked{}, nil
	}
	return nil, models.Invalidf("unknown scoring policy %q", name)
}

// Engine computes Elo rating changes for the games of one match set
type Engine struct {
	Scorer Scorer
}

// NewEngine creates an engine using the provided scorer
func NewEngine(s Scorer) *Engine {
	return &Engine{Scorer: s}
}

// Delta returns the rating change of every entrant that played the games. rating gives the current team rating of an entrant
func (e *Engine) Delta(games [][]string, g models.GameType, rating func(entrantID string) int) (map[string]int, error) {
	if len(games) == 0 {
		return nil, models.Invalidf("must have at least one game")
	}
	n := len(games[0])
	if n < 2 {
		return nil, models.Invalidf("a game needs at least two entrants")
	}
	roster := rosterKey(games[0])
	for _, game := range games[1:] {
		if len(game) != n || rosterKey(game) != roster {
			return nil, models.Invalidf("all games in a set must have the same entrants")
		}
	}
	rules, err := models.RulesFor(g)
	if err != nil {
		return nil, err
	}

	actual := e.Scorer.ActualScores(games, rules.AdvancementCount)
	pairs := float64(pairCount(n))
	deltas := make(map[string]int, n)
	for _, id := range games[0] {
		expected := 0.0
		for _, other := range games[0] {
			if other == id {
				continue
			}
			expected += ExpectedScore(rating(id), rating(other))
		}
		expected = float64(len(games)) * expected / pairs
		deltas[id] = roundHalfUp(KFactor * (actual[id] - expected))
	}
	return deltas, nil
}

// ExpectedScore is the probability that an entrant rated self beats one rated other
func ExpectedScore(self, other int) float64 {
	return 1 / (1 + math.Pow(10, float64(other-self)/400))
}

func pairCount(n int) int {
	return n * (n - 1) / 2
}

// roundHalfUp rounds .5 towards positive infinity, so a loss of 16.5 costs 16
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
