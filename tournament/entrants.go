package tournament

import "github.com/justinjudd/bracket/models"

// Team is an unseeded team as requested by the caller
type Team struct {
	Name    string
	Members []string // competitor ids
}

// NewEntrants checks the requested teams against the game type's rules and creates an entrant for each
func NewEntrants(rules models.Rules, teams []Team, competitors models.Competitors) ([]*models.Entrant, error) {
	if len(teams) < 2 {
		return nil, models.Invalidf("cannot run a tournament with less than two participants")
	}

	seen := map[string]bool{}
	entrants := make([]*models.Entrant, 0, len(teams))
	for _, team := range teams {
		if len(team.Members) == 0 {
			return nil, models.Invalidf("cannot have an empty team")
		}
		if len(team.Members) != rules.TeamSize {
			return nil, models.Invalidf("teams should be of size %d, %q has %d", rules.TeamSize, team.Name, len(team.Members))
		}
		if rules.TeamSize > 1 && team.Name == "" {
			return nil, models.Invalidf("teams of more than one need a name")
		}

		members := make([]*models.Competitor, 0, len(team.Members))
		for _, id := range team.Members {
			if seen[id] {
				return nil, models.Invalidf("competitor %s is on more than one team", id)
			}
			seen[id] = true
			c, ok := competitors[id]
			if !ok {
				return nil, models.NotFoundf("competitor %s", id)
			}
			members = append(members, c)
		}
		entrants = append(entrants, models.NewEntrant(newID(), members, team.Name))
	}
	return entrants, nil
}
