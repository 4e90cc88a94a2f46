package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// two first round sets feeding a final, smash singles
func smallBracket() *Bracket {
	b := &Bracket{
		ID:       "b",
		GameType: GameType_SMASH_ULTIMATE_SINGLES,
		Entrants: map[string]*Entrant{
			"e1": {ID: "e1", Members: []string{"p1"}},
			"e2": {ID: "e2", Members: []string{"p2"}},
			"e3": {ID: "e3", Members: []string{"p3"}},
		},
		Sets: map[string]*MatchSet{
			"s1": {ID: "s1", Round: 1, Added: []string{"e1"}},
			"s2": {ID: "s2", Round: 1, Added: []string{"e2", "e3"}},
			"f":  {ID: "f", Round: 0, Predecessors: []string{"s1", "s2"}},
		},
	}
	return b
}

func TestByeAndParticipants(t *testing.T) {
	b := smallBracket()

	assert.True(t, b.IsByeRound(b.Sets["s1"]))
	assert.False(t, b.IsByeRound(b.Sets["s2"]))
	assert.Equal(t, 2, b.TotalParticipants(b.Sets["f"]))
	assert.Empty(t, b.Participants(b.Sets["f"]))

	b.Sets["s2"].Winners = []string{"e3"}
	assert.Equal(t, []string{"e3"}, b.Participants(b.Sets["f"]))
	assert.True(t, b.IsAlive("e3"))
	assert.True(t, b.IsAlive("e1"))

	b.Sets["s1"].Winners = []string{"e1"}
	b.Sets["f"].Winners = []string{"e1"}
	assert.False(t, b.IsAlive("e3"))
	assert.False(t, b.IsAlive("e2"))
	assert.True(t, b.IsAlive("e1"))
}

func TestExpectedAdvancingCapsAtAdvancementCount(t *testing.T) {
	b := &Bracket{
		GameType: GameType_MARIO_KART_8,
		Sets: map[string]*MatchSet{
			"a": {ID: "a", Round: 1, Added: []string{"1", "2", "3"}},
			"b": {ID: "b", Round: 1, Added: []string{"4"}},
			"f": {ID: "f", Predecessors: []string{"a", "b"}},
		},
	}
	assert.Equal(t, 2, b.ExpectedAdvancing(b.Sets["a"]))
	assert.Equal(t, 1, b.ExpectedAdvancing(b.Sets["b"]))
	assert.Equal(t, 3, b.TotalParticipants(b.Sets["f"]))
	assert.NoError(t, b.Validate())

	b.Sets["b"].Winners = []string{"4"}
	b.Sets["a"].Winners = []string{"1"}
	assert.Equal(t, 2, b.TotalParticipants(b.Sets["f"]))
}

func TestFinalAndSuccessors(t *testing.T) {
	b := smallBracket()
	final, err := b.Final()
	require.NoError(t, err)
	assert.Equal(t, "f", final.ID)

	succ := b.Successors(b.Sets["s1"])
	require.Len(t, succ, 1)
	assert.Equal(t, "f", succ[0].ID)
	assert.Empty(t, b.Successors(final))

	assert.Equal(t, []int{1, 0}, b.RoundIndexes())

	_, err = b.Set("missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestValidateRejectsOverfullSet(t *testing.T) {
	b := smallBracket()
	b.Sets["f"].Added = []string{"e9"}
	err := b.Validate()
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestEntrantByMembers(t *testing.T) {
	b := smallBracket()
	b.Entrants["team"] = &Entrant{ID: "team", Members: []string{"a", "b"}}
	assert.Equal(t, "team", b.EntrantByMembers([]string{"b", "a"}).ID)
	assert.Nil(t, b.EntrantByMembers([]string{"a"}))
}

func TestCompetitorRatingDefaults(t *testing.T) {
	c := &Competitor{ID: "c"}
	assert.Equal(t, StartingRating, c.Rating(GameType_MARIO_KART_8))
	c.SetRating(GameType_MARIO_KART_8, 1510)
	clone := c.Clone()
	clone.SetRating(GameType_MARIO_KART_8, 1400)
	assert.Equal(t, 1510, c.Rating(GameType_MARIO_KART_8))

	cs := Competitors{"c": c}
	assert.Equal(t, 1510+StartingRating, cs.EntrantRating(&Entrant{Members: []string{"c", "other"}}, GameType_MARIO_KART_8))
}

func TestParseGameType(t *testing.T) {
	g, err := ParseGameType(" mario_kart_8 ")
	require.NoError(t, err)
	assert.Equal(t, GameType_MARIO_KART_8, g)
	assert.Equal(t, "MARIO_KART_8", g.String())

	_, err = ParseGameType("chess")
	assert.True(t, errors.Is(err, ErrNotFound))

	r, err := RulesFor(GameType_MARIO_KART_WORLD)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Fanin())
}
