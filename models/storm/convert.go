package storm

import (
	"sort"
	"time"

	"github.com/justinjudd/bracket/models"
	"github.com/justinjudd/bracket/models/storm/pb"
)

// toCompetitor skips ratings of game types this build does not know about
func toCompetitor(p *pb.Competitor) *models.Competitor {
	c := &models.Competitor{ID: p.Id, Name: p.Name}
	for _, r := range p.Ratings {
		g, err := models.ParseGameType(r.GameType)
		if err != nil {
			continue
		}
		c.SetRating(g, int(r.Value))
	}
	return c
}

// addRating moves the record's rating for a game type by delta, starting from the default rating if it has none
func addRating(p *pb.Competitor, gameType string, delta int) {
	for _, r := range p.Ratings {
		if r.GameType == gameType {
			r.Value += int32(delta)
			return
		}
	}
	p.Ratings = append(p.Ratings, &pb.Rating{GameType: gameType, Value: int32(models.StartingRating + delta)})
	sort.Slice(p.Ratings, func(i, j int) bool { return p.Ratings[i].GameType < p.Ratings[j].GameType })
}

func fromBracket(b *models.Bracket) *pb.Bracket {
	return &pb.Bracket{
		Id:        b.ID,
		Created:   b.Created.UnixNano(),
		GameType:  b.GameType.String(),
		Rounds:    int32(b.Rounds),
		Seeds:     b.Seeds,
		Winners:   b.Winners,
		Version:   b.Version,
		Committed: b.Committed,
	}
}

func toBracket(p *pb.Bracket) (*models.Bracket, error) {
	g, err := models.ParseGameType(p.GameType)
	if err != nil {
		return nil, err
	}
	return &models.Bracket{
		ID:        p.Id,
		Created:   time.Unix(0, p.Created).UTC(),
		GameType:  g,
		Rounds:    int(p.Rounds),
		Seeds:     p.Seeds,
		Winners:   p.Winners,
		Version:   p.Version,
		Committed: p.Committed,
		Entrants:  map[string]*models.Entrant{},
		Sets:      map[string]*models.MatchSet{},
	}, nil
}

func fromEntrant(bracketID string, e *models.Entrant) *pb.Entrant {
	return &pb.Entrant{Id: e.ID, BracketId: bracketID, Members: e.Members, Name: e.Name}
}

func toEntrant(p *pb.Entrant) *models.Entrant {
	return &models.Entrant{ID: p.Id, Members: p.Members, Name: p.Name}
}

func fromMatchSet(bracketID string, ms *models.MatchSet) *pb.MatchSet {
	return &pb.MatchSet{
		Id:           ms.ID,
		BracketId:    bracketID,
		Round:        int32(ms.Round),
		Predecessors: ms.Predecessors,
		Added:        ms.Added,
		Winners:      ms.Winners,
		Losers:       ms.Losers,
	}
}

func toMatchSet(p *pb.MatchSet) *models.MatchSet {
	return &models.MatchSet{
		ID:           p.Id,
		Round:        int(p.Round),
		Predecessors: p.Predecessors,
		Added:        p.Added,
		Winners:      p.Winners,
		Losers:       p.Losers,
	}
}

func fromMatch(bracketID, setID string, index int, m *models.Match) *pb.Match {
	return &pb.Match{
		Id:         m.ID,
		BracketId:  bracketID,
		MatchSetId: setID,
		Index:      int32(index),
		Placements: m.Placements,
		GameType:   m.GameType.String(),
	}
}

func toMatch(p *pb.Match) (*models.Match, error) {
	g, err := models.ParseGameType(p.GameType)
	if err != nil {
		return nil, err
	}
	return &models.Match{ID: p.Id, Placements: p.Placements, GameType: g}, nil
}
