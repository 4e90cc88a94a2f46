package models

// Store is a backing that persists competitors and brackets for the core
type Store interface {
	CreateCompetitor(name string) (*Competitor, error)
	Competitor(id string) (*Competitor, error)
	GetCompetitors() ([]*Competitor, error)

	// CreateBracket stores a new bracket with all of its entrants and sets at once
	CreateBracket(b *Bracket) error
	Bracket(id string) (*Bracket, error)
	// UpdateBracket runs fn against a consistent snapshot of the bracket and stores the changes it returns,
	// all in one transaction. The bracket's version is bumped when anything changed
	UpdateBracket(id string, fn func(b *Bracket) (*Changes, error)) (*Bracket, error)
	// CommitBracket stores the winners and adds the deltas to the stored ratings, as long as the bracket is still
	// at the expected version and not committed yet
	CommitBracket(c *Commit) error
}

// Changes are the records touched by one operation on a bracket
type Changes struct {
	Sets           []*MatchSet
	Entrants       []*Entrant
	DeletedMatches []string
}

// Empty reports if nothing needs to be stored
func (c *Changes) Empty() bool {
	return c == nil || (len(c.Sets) == 0 && len(c.Entrants) == 0 && len(c.DeletedMatches) == 0)
}

// Commit is the outcome of completing a bracket
type Commit struct {
	BracketID string
	// Version the bracket was read at. The commit is refused if it changed since
	Version uint64
	Winners []string // competitor ids
	// Competitors are the rated competitors. Once committed they hold the ratings as stored
	Competitors []*Competitor
	// Deltas is the total rating change per competitor
	Deltas map[string]int
}
