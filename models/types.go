package models

import (
	"sort"
	"strings"
	"time"
)

// StartingRating is the rating every competitor starts with, for every game type
const StartingRating = 1500

// Competitor is a single person, consistent across brackets
type Competitor struct {
	ID      string
	Name    string
	Ratings map[GameType]int
}

// Rating returns the competitor's rating for a game type
func (c *Competitor) Rating(g GameType) int {
	if r, ok := c.Ratings[g]; ok {
		return r
	}
	return StartingRating
}

// SetRating stores a new rating for a game type
func (c *Competitor) SetRating(g GameType, rating int) {
	if c.Ratings == nil {
		c.Ratings = map[GameType]int{}
	}
	c.Ratings[g] = rating
}

// Clone returns a deep copy, so ratings can be changed without touching the original
func (c *Competitor) Clone() *Competitor {
	out := &Competitor{ID: c.ID, Name: c.Name, Ratings: make(map[GameType]int, len(c.Ratings))}
	for g, r := range c.Ratings {
		out.Ratings[g] = r
	}
	return out
}

// Competitors indexes competitors by id
type Competitors map[string]*Competitor

// EntrantRating is the summed rating of all members of an entrant
func (cs Competitors) EntrantRating(e *Entrant, g GameType) int {
	total := 0
	for _, id := range e.Members {
		if c, ok := cs[id]; ok {
			total += c.Rating(g)
		} else {
			total += StartingRating
		}
	}
	return total
}

// Entrant is a team or lone competitor participating in a bracket as one unit
type Entrant struct {
	ID      string
	Members []string // competitor ids, sorted
	Name    string
}

// NewEntrant creates an entrant. With a single member the competitor's name is used as the display name
func NewEntrant(id string, members []*Competitor, name string) *Entrant {
	e := &Entrant{ID: id, Name: name}
	for _, m := range members {
		e.Members = append(e.Members, m.ID)
	}
	sort.Strings(e.Members)
	if len(members) == 1 {
		e.Name = members[0].Name
	}
	return e
}

// MemberKey identifies the member combination. The same group of people is always the same entrant
func (e *Entrant) MemberKey() string {
	return MemberKey(e.Members)
}

// MemberKey builds the canonical key for a set of competitor ids
func MemberKey(ids []string) string {
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)
	return strings.Join(sorted, "+")
}

// HasMember reports if the competitor is part of the entrant
func (e *Entrant) HasMember(id string) bool {
	for _, m := range e.Members {
		if m == id {
			return true
		}
	}
	return false
}

// Match is one concrete play of a match set. Placements hold entrant ids, first place first
type Match struct {
	ID         string
	Placements []string
	GameType   GameType
}

// MatchSet is a node of the bracket. Winners of the predecessor sets and the directly added entrants play in it
type MatchSet struct {
	ID           string
	Round        int // 0 is the final
	Predecessors []string
	Added        []string
	Winners      []string
	Losers       []string
	Matches      []*Match
}

// Completed reports if a result was recorded for the set
func (ms *MatchSet) Completed() bool {
	return len(ms.Winners) > 0
}

// Clone returns a copy that can be changed without touching the bracket's set
func (ms *MatchSet) Clone() *MatchSet {
	out := *ms
	out.Predecessors = append([]string(nil), ms.Predecessors...)
	out.Added = append([]string(nil), ms.Added...)
	out.Winners = append([]string(nil), ms.Winners...)
	out.Losers = append([]string(nil), ms.Losers...)
	out.Matches = append([]*Match(nil), ms.Matches...)
	return &out
}

// Bracket is the tournament root. Sets and entrants are kept in arenas keyed by id
type Bracket struct {
	ID       string
	Created  time.Time
	GameType GameType
	Rounds   int      // includes the round of seeded entrants
	Seeds    []string // entrant ids, highest seed first
	Entrants map[string]*Entrant
	Sets     map[string]*MatchSet
	Winners  []string // competitor ids, set once the bracket is committed
	// Version is bumped on every stored change and guards the final commit
	Version   uint64
	Committed bool
}
