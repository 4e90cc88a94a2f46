// Package bracket runs elimination brackets on top of a models.Store: seeding, result reporting,
// late entries and the final rating update
package bracket

import (
	"math/rand"
	"strings"
	"time"

	"github.com/justinjudd/bracket/config"
	"github.com/justinjudd/bracket/models"
	"github.com/justinjudd/bracket/tournament"

	"github.com/sirupsen/logrus"
)

// Manager is the entry point for callers. Every operation loads what it needs from the store
type Manager struct {
	Store   models.Store
	Seeder  tournament.Seeder
	Builder *tournament.SingleElimination
	Engine  *tournament.Engine
	Log     *logrus.Logger
}

// NewManager wires a manager with the seeding and scoring policies of the configuration
func NewManager(store models.Store, cfg *config.Config, log *logrus.Logger) (*Manager, error) {
	seeder, err := tournament.NewSeeder(cfg.Seeder, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		return nil, err
	}
	scorer, err := tournament.NewScorer(cfg.Scoring)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = cfg.Logger()
	}
	return &Manager{
		Store:   store,
		Seeder:  seeder,
		Builder: tournament.NewSingleElimination(),
		Engine:  tournament.NewEngine(scorer),
		Log:     log,
	}, nil
}

func (m *Manager) CreateCompetitor(name string) (*models.Competitor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, models.Invalidf("a competitor needs a name")
	}
	c, err := m.Store.CreateCompetitor(name)
	if err != nil {
		return nil, err
	}
	m.Log.WithFields(logrus.Fields{"competitor": c.ID, "name": c.Name}).Info("competitor created")
	return c, nil
}

// CreateBracket seeds the teams and stores a new single elimination bracket for them
func (m *Manager) CreateBracket(g models.GameType, teams []tournament.Team) (*models.Bracket, error) {
	rules, err := models.RulesFor(g)
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, team := range teams {
		ids = append(ids, team.Members...)
	}
	competitors, err := m.competitors(ids)
	if err != nil {
		return nil, err
	}

	entrants, err := tournament.NewEntrants(rules, teams, competitors)
	if err != nil {
		return nil, err
	}
	b, err := m.Builder.Build(g, m.Seeder.Seed(entrants, competitors, g))
	if err != nil {
		return nil, err
	}
	if err := m.Store.CreateBracket(b); err != nil {
		return nil, err
	}

	m.Log.WithFields(logrus.Fields{
		"bracket":  b.ID,
		"game":     g,
		"entrants": len(entrants),
		"sets":     len(b.Sets),
	}).Info("bracket created")
	return b, nil
}

func (m *Manager) Bracket(id string) (*models.Bracket, error) {
	return m.Store.Bracket(id)
}

// CompleteMatchSet records the result of a match set
func (m *Manager) CompleteMatchSet(bracketID, setID string, result tournament.Result) (*models.Bracket, error) {
	b, err := m.Store.UpdateBracket(bracketID, func(b *models.Bracket) (*models.Changes, error) {
		if b.Committed {
			return nil, models.Conflictf("bracket %s is already completed", b.ID)
		}
		return tournament.CompleteMatchSet(b, setID, result)
	})
	if err != nil {
		m.Log.WithError(err).WithFields(logrus.Fields{"bracket": bracketID, "set": setID}).Warn("unable to complete match set")
		return nil, err
	}
	m.Log.WithFields(logrus.Fields{"bracket": bracketID, "set": setID, "winners": result.Winners}).Info("match set completed")
	return b, nil
}

// AddEntrant places the given competitors into an open match set, as a late entry or to revive them
func (m *Manager) AddEntrant(bracketID, setID string, memberIDs []string, teamName string) (*models.Bracket, error) {
	competitors, err := m.competitors(memberIDs)
	if err != nil {
		return nil, err
	}
	members := make([]*models.Competitor, 0, len(memberIDs))
	for _, id := range memberIDs {
		members = append(members, competitors[id])
	}

	b, err := m.Store.UpdateBracket(bracketID, func(b *models.Bracket) (*models.Changes, error) {
		if b.Committed {
			return nil, models.Conflictf("bracket %s is already completed", b.ID)
		}
		return tournament.AddEntrant(b, setID, members, teamName)
	})
	if err != nil {
		m.Log.WithError(err).WithFields(logrus.Fields{"bracket": bracketID, "set": setID}).Warn("unable to add entrant")
		return nil, err
	}
	m.Log.WithFields(logrus.Fields{"bracket": bracketID, "set": setID, "members": memberIDs}).Info("entrant added")
	return b, nil
}

// CompleteBracket rates the finished bracket and stores the winners and new ratings.
// It fails with a conflict if the bracket changed or was completed in the meantime
func (m *Manager) CompleteBracket(bracketID string) (*models.Commit, error) {
	b, err := m.Store.Bracket(bracketID)
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, e := range b.Entrants {
		ids = append(ids, e.Members...)
	}
	competitors, err := m.competitors(ids)
	if err != nil {
		return nil, err
	}

	commit, err := tournament.CompleteBracket(b, competitors, m.Engine)
	if err != nil {
		return nil, err
	}
	if err := m.Store.CommitBracket(commit); err != nil {
		m.Log.WithError(err).WithField("bracket", bracketID).Warn("unable to commit bracket")
		return nil, err
	}

	for _, c := range commit.Competitors {
		m.Log.WithFields(logrus.Fields{
			"bracket":    bracketID,
			"competitor": c.Name,
			"delta":      commit.Deltas[c.ID],
			"rating":     c.Rating(b.GameType),
		}).Debug("rating updated")
	}
	return commit, nil
}

// View loads a bracket and renders its external view
func (m *Manager) View(bracketID string) (*View, error) {
	b, err := m.Store.Bracket(bracketID)
	if err != nil {
		return nil, err
	}
	return NewView(b), nil
}

// Structure loads a bracket and prints its structure, naming entrants by their members
func (m *Manager) Structure(bracketID string) (string, error) {
	b, err := m.Store.Bracket(bracketID)
	if err != nil {
		return "", err
	}
	var ids []string
	for _, e := range b.Entrants {
		ids = append(ids, e.Members...)
	}
	competitors, err := m.competitors(ids)
	if err != nil {
		return "", err
	}
	return Structure(b, competitors)
}

// HTML loads a bracket and renders it as an HTML fragment
func (m *Manager) HTML(bracketID string) ([]byte, error) {
	b, err := m.Store.Bracket(bracketID)
	if err != nil {
		return nil, err
	}
	return GenerateBracketHTML(b)
}

// competitors loads the competitors with the given ids, once each
func (m *Manager) competitors(ids []string) (models.Competitors, error) {
	out := models.Competitors{}
	for _, id := range ids {
		if _, ok := out[id]; ok {
			continue
		}
		c, err := m.Store.Competitor(id)
		if err != nil {
			return nil, err
		}
		out[id] = c
	}
	return out, nil
}
