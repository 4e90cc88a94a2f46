package storm

import (
	"errors"
	"fmt"
	"sort"

	"github.com/justinjudd/bracket/models"
	"github.com/justinjudd/bracket/models/storm/pb"

	"github.com/asdine/storm"
	"github.com/asdine/storm/codec/protobuf"
	"github.com/asdine/storm/q"
	"github.com/rs/xid"
	"github.com/sirupsen/logrus"
)

// Engine is a models.Store backed by storm
type Engine struct {
	*storm.DB
	log *logrus.Entry
}

var _ models.Store = (*Engine)(nil)

// NewStorageEngine opens the storm database at path. Records are stored using the protobuf codec
func NewStorageEngine(path string, log *logrus.Logger) (*Engine, error) {
	db, err := storm.Open(path, storm.Codec(protobuf.Codec))
	//db, err := storm.Open(path) // Use this for debug or if you want JSON stored in the database
	if err != nil {
		return nil, fmt.Errorf("Unable to open storage engine: %w", err)
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Engine{DB: db, log: log.WithField("component", "storm")}, nil
}

func (e *Engine) CreateCompetitor(name string) (*models.Competitor, error) {
	p := pb.Competitor{Id: xid.New().String(), Name: name}
	if err := e.Save(&p); err != nil {
		return nil, fmt.Errorf("Unable to create competitor: %w", err)
	}
	e.log.WithField("competitor", p.Id).Debug("created competitor")
	return toCompetitor(&p), nil
}

func (e *Engine) Competitor(id string) (*models.Competitor, error) {
	var p pb.Competitor
	if err := e.One("Id", id, &p); err != nil {
		return nil, notFound(err, "competitor %s", id)
	}
	return toCompetitor(&p), nil
}

func (e *Engine) GetCompetitors() ([]*models.Competitor, error) {
	var competitors []*models.Competitor
	err := e.Select().Each(new(pb.Competitor), func(record interface{}) error {
		competitors = append(competitors, toCompetitor(record.(*pb.Competitor)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("Unable to list competitors: %w", err)
	}
	return competitors, nil
}

func (e *Engine) CreateBracket(b *models.Bracket) error {
	tx, err := e.Begin(true)
	if err != nil {
		return fmt.Errorf("Unable to start transaction: %w", err)
	}
	defer tx.Rollback()

	var existing pb.Bracket
	if err := tx.One("Id", b.ID, &existing); err == nil {
		return models.Conflictf("bracket %s already exists", b.ID)
	}

	if err := tx.Save(fromBracket(b)); err != nil {
		return fmt.Errorf("Unable to save bracket: %w", err)
	}
	for _, id := range sortedEntrantIDs(b) {
		if err := tx.Save(fromEntrant(b.ID, b.Entrants[id])); err != nil {
			return fmt.Errorf("Unable to save entrant: %w", err)
		}
	}
	for _, ms := range b.SortedSets() {
		if err := saveSet(tx, b.ID, ms); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Unable to commit bracket: %w", err)
	}
	e.log.WithFields(logrus.Fields{"bracket": b.ID, "sets": len(b.Sets), "entrants": len(b.Entrants)}).Debug("created bracket")
	return nil
}

func (e *Engine) Bracket(id string) (*models.Bracket, error) {
	return loadBracket(e.DB, id)
}

func (e *Engine) UpdateBracket(id string, fn func(b *models.Bracket) (*models.Changes, error)) (*models.Bracket, error) {
	tx, err := e.Begin(true)
	if err != nil {
		return nil, fmt.Errorf("Unable to start transaction: %w", err)
	}
	defer tx.Rollback()

	b, err := loadBracket(tx, id)
	if err != nil {
		return nil, err
	}
	changes, err := fn(b)
	if err != nil {
		return nil, err
	}
	if changes.Empty() {
		return b, nil
	}

	for _, matchID := range changes.DeletedMatches {
		err := tx.DeleteStruct(&pb.Match{Id: matchID})
		if err != nil && !errors.Is(err, storm.ErrNotFound) {
			return nil, fmt.Errorf("Unable to delete match %s: %w", matchID, err)
		}
	}
	for _, entrant := range changes.Entrants {
		if err := tx.Save(fromEntrant(b.ID, entrant)); err != nil {
			return nil, fmt.Errorf("Unable to save entrant: %w", err)
		}
	}
	for _, ms := range changes.Sets {
		if err := saveSet(tx, b.ID, ms); err != nil {
			return nil, err
		}
	}

	b.Version++
	if err := tx.Save(fromBracket(b)); err != nil {
		return nil, fmt.Errorf("Unable to save bracket: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("Unable to commit bracket update: %w", err)
	}

	e.log.WithFields(logrus.Fields{
		"bracket": b.ID,
		"version": b.Version,
		"sets":    len(changes.Sets),
		"deleted": len(changes.DeletedMatches),
	}).Debug("updated bracket")
	return b, nil
}

func (e *Engine) CommitBracket(c *models.Commit) error {
	tx, err := e.Begin(true)
	if err != nil {
		return fmt.Errorf("Unable to start transaction: %w", err)
	}
	defer tx.Rollback()

	var record pb.Bracket
	if err := tx.One("Id", c.BracketID, &record); err != nil {
		return notFound(err, "bracket %s", c.BracketID)
	}
	if record.Committed {
		return models.Conflictf("bracket %s was already completed", c.BracketID)
	}
	if record.Version != c.Version {
		return models.Conflictf("bracket %s changed while completing it, version %d is now %d", c.BracketID, c.Version, record.Version)
	}

	// Deltas go onto the stored ratings, which may have moved since the bracket was rated
	updated := make([]*models.Competitor, 0, len(c.Competitors))
	for _, competitor := range c.Competitors {
		var p pb.Competitor
		if err := tx.One("Id", competitor.ID, &p); err != nil {
			return notFound(err, "competitor %s", competitor.ID)
		}
		addRating(&p, record.GameType, c.Deltas[competitor.ID])
		if err := tx.Save(&p); err != nil {
			return fmt.Errorf("Unable to save competitor ratings: %w", err)
		}
		updated = append(updated, toCompetitor(&p))
	}
	record.Winners = append([]string(nil), c.Winners...)
	record.Committed = true
	record.Version++
	if err := tx.Save(&record); err != nil {
		return fmt.Errorf("Unable to save bracket: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Unable to commit bracket completion: %w", err)
	}

	c.Competitors = updated

	e.log.WithFields(logrus.Fields{"bracket": c.BracketID, "winners": c.Winners}).Info("bracket completed")
	return nil
}

// loadBracket reads a bracket with all of its entrants, sets and matches
func loadBracket(node storm.Node, id string) (*models.Bracket, error) {
	var record pb.Bracket
	if err := node.One("Id", id, &record); err != nil {
		return nil, notFound(err, "bracket %s", id)
	}
	b, err := toBracket(&record)
	if err != nil {
		return nil, err
	}

	var entrants []pb.Entrant
	if err := node.Find("BracketId", id, &entrants); err != nil && !errors.Is(err, storm.ErrNotFound) {
		return nil, fmt.Errorf("Unable to get entrants: %w", err)
	}
	for i := range entrants {
		e := toEntrant(&entrants[i])
		b.Entrants[e.ID] = e
	}

	var matches []pb.Match
	if err := node.Select(q.Eq("BracketId", id)).Find(&matches); err != nil && !errors.Is(err, storm.ErrNotFound) {
		return nil, fmt.Errorf("Unable to get matches: %w", err)
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].MatchSetId != matches[j].MatchSetId {
			return matches[i].MatchSetId < matches[j].MatchSetId
		}
		return matches[i].Index < matches[j].Index
	})
	bySet := map[string][]*models.Match{}
	for i := range matches {
		m, err := toMatch(&matches[i])
		if err != nil {
			return nil, err
		}
		bySet[matches[i].MatchSetId] = append(bySet[matches[i].MatchSetId], m)
	}

	var sets []pb.MatchSet
	if err := node.Find("BracketId", id, &sets); err != nil && !errors.Is(err, storm.ErrNotFound) {
		return nil, fmt.Errorf("Unable to get match sets: %w", err)
	}
	for i := range sets {
		ms := toMatchSet(&sets[i])
		ms.Matches = bySet[ms.ID]
		b.Sets[ms.ID] = ms
	}
	return b, nil
}

// saveSet stores a set and its current matches
func saveSet(node storm.Node, bracketID string, ms *models.MatchSet) error {
	if err := node.Save(fromMatchSet(bracketID, ms)); err != nil {
		return fmt.Errorf("Unable to save match set %s: %w", ms.ID, err)
	}
	for i, m := range ms.Matches {
		if err := node.Save(fromMatch(bracketID, ms.ID, i, m)); err != nil {
			return fmt.Errorf("Unable to save match %s: %w", m.ID, err)
		}
	}
	return nil
}

func notFound(err error, format string, args ...interface{}) error {
	if errors.Is(err, storm.ErrNotFound) {
		return models.NotFoundf(format, args...)
	}
	return fmt.Errorf("Unable to get %s: %w", fmt.Sprintf(format, args...), err)
}

func sortedEntrantIDs(b *models.Bracket) []string {
	ids := make([]string, 0, len(b.Entrants))
	for id := range b.Entrants {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
