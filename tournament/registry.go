package tournament

import "github.com/justinjudd/bracket/models"

// AddEntrant puts a late or revived entrant into an open slot of a match set.
// If the bracket already has an entrant made of exactly these competitors it is reused, which revives an eliminated team
func AddEntrant(b *models.Bracket, setID string, members []*models.Competitor, teamName string) (*models.Changes, error) {
	ms, err := b.Set(setID)
	if err != nil {
		return nil, err
	}
	rules := b.Rules()

	if ms.Completed() {
		return nil, models.Invalidf("match set %s is already completed", ms.ID)
	}
	if b.IsFull(ms) {
		return nil, models.Invalidf("match set %s is full", ms.ID)
	}
	if len(members) != rules.TeamSize {
		return nil, models.Invalidf("teams should be of size %d for game type %s", rules.TeamSize, b.GameType)
	}

	ids := make([]string, 0, len(members))
	seen := map[string]bool{}
	for _, m := range members {
		if seen[m.ID] {
			return nil, models.Invalidf("competitor %s is listed twice", m.ID)
		}
		seen[m.ID] = true
		ids = append(ids, m.ID)
		for _, e := range b.Entrants {
			if e.HasMember(m.ID) && b.IsAlive(e.ID) {
				return nil, models.Invalidf("competitor %s is still in the bracket with %s", m.ID, e.Name)
			}
		}
	}

	changes := &models.Changes{}
	entrant := b.EntrantByMembers(ids)
	if entrant == nil {
		if len(members) > 1 && teamName == "" {
			return nil, models.Invalidf("a team name is required for teams of more than one")
		}
		entrant = models.NewEntrant(newID(), members, teamName)
		changes.Entrants = append(changes.Entrants, entrant)
	}

	updated := ms.Clone()
	updated.Added = append(updated.Added, entrant.ID)

	b.Sets[ms.ID] = updated
	_, known := b.Entrants[entrant.ID]
	b.Entrants[entrant.ID] = entrant
	if err := b.Validate(); err != nil {
		b.Sets[ms.ID] = ms
		if !known {
			delete(b.Entrants, entrant.ID)
		}
		return nil, err
	}

	changes.Sets = append(changes.Sets, updated)
	return changes, nil
}
