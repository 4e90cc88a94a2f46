package tournament

import (
	"fmt"
	"sort"
	"strconv"
	"testing"
	"time"

	"github.com/justinjudd/bracket/models"
	"github.com/stretchr/testify/require"
)

// field creates n solo entrants e1..en for competitors p1..pn, in seed order
func field(n int) ([]*models.Entrant, models.Competitors) {
	competitors := models.Competitors{}
	entrants := make([]*models.Entrant, n)
	for i := 1; i <= n; i++ {
		c := &models.Competitor{ID: fmt.Sprintf("p%d", i), Name: fmt.Sprintf("player %d", i)}
		competitors[c.ID] = c
		entrants[i-1] = &models.Entrant{ID: fmt.Sprintf("e%d", i), Members: []string{c.ID}, Name: c.Name}
	}
	return entrants, competitors
}

func counter() func() string {
	n := 0
	return func() string {
		n++
		return "s" + strconv.Itoa(n)
	}
}

func testBuilder() *SingleElimination {
	return &SingleElimination{
		Now:   func() time.Time { return time.Date(2026, 1, 5, 19, 0, 0, 0, time.UTC) },
		NewID: counter(),
	}
}

func build(t *testing.T, g models.GameType, n int) (*models.Bracket, models.Competitors) {
	entrants, competitors := field(n)
	b, err := testBuilder().Build(g, entrants)
	require.NoError(t, err)
	return b, competitors
}

// setWith finds the set that directly holds exactly these entrants
func setWith(t *testing.T, b *models.Bracket, ids ...string) *models.MatchSet {
	want := rosterKey(ids)
	for _, ms := range b.Sets {
		if len(ms.Added) > 0 && rosterKey(ms.Added) == want {
			return ms
		}
	}
	t.Fatalf("no set holds %v", ids)
	return nil
}

// leaves lists the seeded entrants that can reach a set, sorted
func leaves(b *models.Bracket, ms *models.MatchSet) []string {
	out := append([]string(nil), ms.Added...)
	for _, id := range ms.Predecessors {
		out = append(out, leaves(b, b.Sets[id])...)
	}
	sort.Strings(out)
	return out
}

func final(t *testing.T, b *models.Bracket) *models.MatchSet {
	f, err := b.Final()
	require.NoError(t, err)
	return f
}

func win(t *testing.T, b *models.Bracket, ms *models.MatchSet, winner string, games ...[]string) {
	_, err := CompleteMatchSet(b, ms.ID, Result{Winners: []string{winner}, Games: games})
	require.NoError(t, err)
}
