package tournament

import (
	"math/rand"
	"sort"

	"github.com/justinjudd/bracket/models"
)

// MaxJitter is the largest share of the rating spread an entrant can gain or lose while seeding
const MaxJitter = 0.1

// Seeder orders entrants into a ranked list, highest seed first
type Seeder interface {
	Seed(entrants []*models.Entrant, ratings models.Competitors, g models.GameType) []*models.Entrant
}

// byRating sorts a copy of the entrants by summed member rating. Ties are broken by id so the result does not depend on input order
func byRating(entrants []*models.Entrant, ratings models.Competitors, g models.GameType, ascending bool) []*models.Entrant {
	sorted := make([]*models.Entrant, len(entrants))
	copy(sorted, entrants)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := ratings.EntrantRating(sorted[i], g), ratings.EntrantRating(sorted[j], g)
		if ri != rj {
			if ascending {
				return ri < rj
			}
			return ri > rj
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}

// RatingSeeder seeds purely by rating
type RatingSeeder struct {
	Ascending bool
}

func (s RatingSeeder) Seed(entrants []*models.Entrant, ratings models.Competitors, g models.GameType) []*models.Entrant {
	return byRating(entrants, ratings, g, s.Ascending)
}

// JitterSeeder seeds by rating after moving every entrant by a random amount, bounded by MaxJitter of the spread
// between the highest and lowest rated entrant. Brackets stay close to rating order without repeating the same pairings
type JitterSeeder struct {
	Rand *rand.Rand
}

func (s JitterSeeder) Seed(entrants []*models.Entrant, ratings models.Competitors, g models.GameType) []*models.Entrant {
	teams := byRating(entrants, ratings, g, false)
	if len(teams) < 2 {
		return teams
	}
	spread := ratings.EntrantRating(teams[0], g) - ratings.EntrantRating(teams[len(teams)-1], g)
	maxChange := int(MaxJitter * float64(spread))

	jittered := make(map[string]int, len(teams))
	for _, team := range teams {
		offset := 0
		if maxChange > 0 {
			offset = intn(s.Rand, maxChange*2) - maxChange
		}
		jittered[team.ID] = ratings.EntrantRating(team, g) + offset
	}
	sort.SliceStable(teams, func(i, j int) bool {
		return jittered[teams[i].ID] > jittered[teams[j].ID]
	})
	return teams
}

// RandomSeeder ignores ratings. The pre-sort keeps results reproducible for a given random source
type RandomSeeder struct {
	Rand *rand.Rand
}

func (s RandomSeeder) Seed(entrants []*models.Entrant, ratings models.Competitors, g models.GameType) []*models.Entrant {
	teams := byRating(entrants, ratings, g, false)
	swap := func(i, j int) { teams[i], teams[j] = teams[j], teams[i] }
	if s.Rand != nil {
		s.Rand.Shuffle(len(teams), swap)
	} else {
		rand.Shuffle(len(teams), swap)
	}
	return teams
}

func intn(r *rand.Rand, n int) int {
	if r != nil {
		return r.Intn(n)
	}
	return rand.Intn(n)
}

// NewSeeder returns the seeder registered under name: rating, jitter or random
func NewSeeder(name string, r *rand.Rand) (Seeder, error) {
	switch name {
	case "rating":
		return RatingSeeder{}, nil
	case "jitter":
		return JitterSeeder{Rand: r}, nil
	case "random":
		return RandomSeeder{Rand: r}, nil
	}
	return nil, models.Invalidf("unknown seeder %q", name)
}
