package tournament

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/justinjudd/bracket/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateNextRound(t *testing.T) {
	tests := []struct {
		gameType models.GameType
		round    int
		entrants int
		expected [][]string
	}{
		{
			models.GameType_SMASH_ULTIMATE_SINGLES, 2, 8,
			[][]string{{"e1", "e8"}, {"e2", "e7"}, {"e3", "e6"}, {"e4", "e5"}},
		},
		{
			models.GameType_SMASH_ULTIMATE_SINGLES, 3, 9,
			[][]string{{"e1"}, {"e2"}, {"e3"}, {"e4"}, {"e5"}, {"e6"}, {"e7"}, {"e8", "e9"}},
		},
		{
			models.GameType_MARIO_KART_8, 2, 13,
			[][]string{{"e1", "e8", "e9"}, {"e2", "e7", "e10"}, {"e3", "e6", "e11"}, {"e4", "e5", "e12", "e13"}},
		},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s with %d entrants in round %d", tt.gameType, tt.entrants, tt.round), func(t *testing.T) {
			rules, err := models.RulesFor(tt.gameType)
			require.NoError(t, err)
			entrants, _ := field(tt.entrants)

			next, err := testBuilder().createNextRound(rules, tt.round, wrapEntrants(entrants))
			require.NoError(t, err)

			var actual [][]string
			for _, sl := range next {
				assert.Equal(t, tt.round, sl.set.Round)
				actual = append(actual, sl.set.Added)
			}
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestCreateNextRoundNeedsEnoughInputs(t *testing.T) {
	rules, _ := models.RulesFor(models.GameType_SMASH_ULTIMATE_SINGLES)
	entrants, _ := field(3)
	_, err := testBuilder().createNextRound(rules, 2, wrapEntrants(entrants))
	assert.True(t, errors.Is(err, models.ErrValidation))
}

func TestRoundsNeeded(t *testing.T) {
	// bottom level sets for a minimum number of sets in a 2 way bracket
	for minSets, bottom := range map[int]int{1: 1, 2: 2, 3: 4, 4: 4, 5: 8, 8: 8, 9: 16, 16: 16, 17: 32} {
		assert.Equal(t, bottom, pow(2, roundsNeeded(minSets, 2)), "min sets %d", minSets)
	}
}

func TestBuildShape(t *testing.T) {
	for _, g := range models.GameTypes() {
		rules, _ := models.RulesFor(g)
		for n := 2; n <= 70; n++ {
			b, _ := build(t, g, n)

			minSets := int(math.Ceil(float64(n) / float64(rules.BranchingFactor)))
			maxRound := int(math.Ceil(math.Log(float64(minSets))/math.Log(float64(rules.Fanin())) - 1e-9))
			if minSets == 1 {
				maxRound = 0
			}

			assert.Len(t, b.RoundIndexes(), maxRound+1, "%s n=%d", g, n)
			assert.Equal(t, maxRound+2, b.Rounds, "%s n=%d", g, n)
			assert.Len(t, leaves(b, final(t, b)), n, "%s n=%d", g, n)
			assert.Len(t, b.Seeds, n)
			assert.NoError(t, b.Validate())
		}
	}
}

func TestBuildSingleEntrantIsBye(t *testing.T) {
	b, _ := build(t, models.GameType_SMASH_ULTIMATE_SINGLES, 1)
	require.Len(t, b.Sets, 1)
	f := final(t, b)
	assert.Equal(t, []string{"e1"}, f.Added)
	assert.True(t, b.IsByeRound(f))
}

func TestBuildRejects(t *testing.T) {
	_, err := testBuilder().Build(models.GameType_SMASH_ULTIMATE_SINGLES, nil)
	assert.True(t, errors.Is(err, models.ErrValidation))

	entrants, _ := field(2)
	entrants[1] = entrants[0]
	_, err = testBuilder().Build(models.GameType_SMASH_ULTIMATE_SINGLES, entrants)
	assert.True(t, errors.Is(err, models.ErrValidation))

	_, err = testBuilder().Build(models.GameType(42), entrants)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestSeedingSeparation(t *testing.T) {
	b, _ := build(t, models.GameType_SMASH_ULTIMATE_SINGLES, 8)
	f := final(t, b)
	require.Len(t, f.Predecessors, 2)

	top := b.Sets[f.Predecessors[0]]
	bottom := b.Sets[f.Predecessors[1]]
	assert.Equal(t, []string{"e1", "e4", "e5", "e8"}, leaves(b, top))
	assert.Equal(t, []string{"e2", "e3", "e6", "e7"}, leaves(b, bottom))

	// quarter finals pair 1v8 with 4v5 and 2v7 with 3v6
	var quarters [][]string
	for _, semi := range []*models.MatchSet{top, bottom} {
		for _, id := range semi.Predecessors {
			quarters = append(quarters, b.Sets[id].Added)
		}
	}
	assert.Equal(t, [][]string{{"e1", "e8"}, {"e4", "e5"}, {"e2", "e7"}, {"e3", "e6"}}, quarters)
}

func TestBuildMultiWinnerBracket(t *testing.T) {
	b, _ := build(t, models.GameType_MARIO_KART_8, 13)
	assert.Equal(t, 4, b.Rounds)
	f := final(t, b)
	assert.Equal(t, 4, b.TotalParticipants(f))
	for _, ms := range b.Sets {
		assert.LessOrEqual(t, b.TotalParticipants(ms), 4)
	}
	assert.Equal(t, time.Date(2026, 1, 5, 19, 0, 0, 0, time.UTC), b.Created)
}
