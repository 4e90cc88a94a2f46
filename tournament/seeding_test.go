package tournament

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/justinjudd/bracket/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(entrants []*models.Entrant) []string {
	out := make([]string, len(entrants))
	for i, e := range entrants {
		out[i] = e.ID
	}
	return out
}

// rated gives e1..e5 ratings 1200, 1400, ... 2000, so e5 is the strongest
func rated() ([]*models.Entrant, models.Competitors) {
	entrants, competitors := field(5)
	for i, id := range []string{"p1", "p2", "p3", "p4", "p5"} {
		competitors[id].SetRating(models.GameType_SMASH_ULTIMATE_SINGLES, 1200+200*i)
	}
	return entrants, competitors
}

func TestRatingSeeder(t *testing.T) {
	entrants, competitors := rated()
	g := models.GameType_SMASH_ULTIMATE_SINGLES

	assert.Equal(t, []string{"e5", "e4", "e3", "e2", "e1"}, ids(RatingSeeder{}.Seed(entrants, competitors, g)))
	assert.Equal(t, []string{"e1", "e2", "e3", "e4", "e5"}, ids(RatingSeeder{Ascending: true}.Seed(entrants, competitors, g)))
	// the input is left in place
	assert.Equal(t, "e1", entrants[0].ID)

	// equal ratings fall back to the id
	even, none := field(4)
	shuffled := []*models.Entrant{even[2], even[0], even[3], even[1]}
	assert.Equal(t, []string{"e1", "e2", "e3", "e4"}, ids(RatingSeeder{}.Seed(shuffled, none, g)))
}

func TestJitterSeederStaysNearRatings(t *testing.T) {
	entrants, competitors := rated()
	// the spread is 800, so nobody moves more than 80 and the 200 point gaps hold
	for seed := int64(0); seed < 20; seed++ {
		s := JitterSeeder{Rand: rand.New(rand.NewSource(seed))}
		assert.Equal(t, []string{"e5", "e4", "e3", "e2", "e1"}, ids(s.Seed(entrants, competitors, models.GameType_SMASH_ULTIMATE_SINGLES)))
	}
}

// fixedSource hands rand.Intn the given draws in order
type fixedSource struct {
	draws []int64
}

func (s *fixedSource) Int63() int64 {
	d := s.draws[0]
	s.draws = s.draws[1:]
	return d << 32
}

func (s *fixedSource) Seed(int64) {}

func TestJitterSeederReorders(t *testing.T) {
	g := models.GameType_SMASH_ULTIMATE_SINGLES
	entrants, competitors := field(4)
	for id, rating := range map[string]int{"p1": 1000, "p2": 1090, "p3": 1100, "p4": 2000} {
		competitors[id].SetRating(g, rating)
	}

	// the spread is 1000 so offsets run from -100 to 99, drawn in rating order: e4 +0, e3 -100, e2 +99, e1 +0
	s := JitterSeeder{Rand: rand.New(&fixedSource{draws: []int64{100, 0, 199, 100}})}
	assert.Equal(t, []string{"e4", "e2", "e3", "e1"}, ids(s.Seed(entrants, competitors, g)))
}

func TestJitterSeederBoundsMoves(t *testing.T) {
	g := models.GameType_SMASH_ULTIMATE_SINGLES
	entrants, competitors := field(20)
	for i, e := range entrants {
		competitors[e.Members[0]].SetRating(g, 1000+10*i)
	}
	// spread 190, so every entrant moves by at most 19
	maxChange := 19
	straight := ids(RatingSeeder{}.Seed(entrants, competitors, g))

	reordered := false
	for seed := int64(0); seed < 20; seed++ {
		seeded := JitterSeeder{Rand: rand.New(rand.NewSource(seed))}.Seed(entrants, competitors, g)
		require.Len(t, seeded, len(entrants))
		for i := range seeded {
			for j := i + 1; j < len(seeded); j++ {
				above := competitors.EntrantRating(seeded[i], g)
				below := competitors.EntrantRating(seeded[j], g)
				assert.Less(t, below-above, 2*maxChange, "%s seeded above %s", seeded[i].ID, seeded[j].ID)
			}
		}
		if !assert.ObjectsAreEqual(straight, ids(seeded)) {
			reordered = true
		}
	}
	assert.True(t, reordered)
}

func TestJitterSeederWithoutSpread(t *testing.T) {
	entrants, competitors := field(4)
	s := JitterSeeder{Rand: rand.New(rand.NewSource(7))}
	assert.Equal(t, []string{"e1", "e2", "e3", "e4"}, ids(s.Seed(entrants, competitors, models.GameType_MARIO_KART_8)))

	assert.Len(t, s.Seed(entrants[:1], competitors, models.GameType_MARIO_KART_8), 1)
}

func TestRandomSeeder(t *testing.T) {
	entrants, competitors := field(16)
	g := models.GameType_SMASH_ULTIMATE_SINGLES

	first := ids(RandomSeeder{Rand: rand.New(rand.NewSource(3))}.Seed(entrants, competitors, g))
	again := ids(RandomSeeder{Rand: rand.New(rand.NewSource(3))}.Seed(entrants, competitors, g))
	assert.Equal(t, first, again)
	assert.ElementsMatch(t, ids(entrants), first)
}

func TestNewSeeder(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for name, expected := range map[string]Seeder{
		"rating": RatingSeeder{},
		"jitter": JitterSeeder{Rand: r},
		"random": RandomSeeder{Rand: r},
	} {
		s, err := NewSeeder(name, r)
		require.NoError(t, err)
		assert.IsType(t, expected, s)
	}

	_, err := NewSeeder("alphabetical", r)
	assert.True(t, errors.Is(err, models.ErrValidation))
}
