package bracket

import (
	"sort"
	"strings"
	"time"

	"github.com/justinjudd/bracket/models"
)

// View is the external form of a bracket. Building it twice from the same bracket gives identical results
type View struct {
	ID        string        `json:"id"`
	Created   time.Time     `json:"created"`
	GameType  string        `json:"gameType"`
	Rounds    int           `json:"rounds"`
	Seeds     []string      `json:"seeds"`
	Entrants  []EntrantView `json:"entrants"`
	Winners   []string      `json:"winners,omitempty"`
	Committed bool          `json:"committed"`
	Version   uint64        `json:"version"`
	Sets      [][]SetView   `json:"sets"` // per round in play order, sets by id
}

type EntrantView struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

type SetView struct {
	ID           string      `json:"id"`
	Round        int         `json:"round"`
	Predecessors []string    `json:"predecessors,omitempty"`
	Added        []string    `json:"added,omitempty"`
	Participants []string    `json:"participants,omitempty"`
	Size         int         `json:"size"` // entrants expected once earlier sets are done
	Winners      []string    `json:"winners,omitempty"`
	Losers       []string    `json:"losers,omitempty"`
	Bye          bool        `json:"bye"`
	Completed    bool        `json:"completed"`
	Matches      []MatchView `json:"matches,omitempty"`
}

type MatchView struct {
	ID         string   `json:"id"`
	Placements []string `json:"placements"`
}

func NewView(b *models.Bracket) *View {
	v := &View{
		ID:        b.ID,
		Created:   b.Created,
		GameType:  b.GameType.String(),
		Rounds:    b.Rounds,
		Seeds:     append([]string(nil), b.Seeds...),
		Winners:   sortedCopy(b.Winners),
		Committed: b.Committed,
		Version:   b.Version,
	}

	for _, e := range b.Entrants {
		v.Entrants = append(v.Entrants, EntrantView{ID: e.ID, Name: e.Name, Members: sortedCopy(e.Members)})
	}
	sort.Slice(v.Entrants, func(i, j int) bool { return v.Entrants[i].ID < v.Entrants[j].ID })

	sets := b.SortedSets()
	for _, round := range b.RoundIndexes() {
		var row []SetView
		for _, ms := range sets {
			if ms.Round == round {
				row = append(row, newSetView(b, ms))
			}
		}
		v.Sets = append(v.Sets, row)
	}
	return v
}

func newSetView(b *models.Bracket, ms *models.MatchSet) SetView {
	sv := SetView{
		ID:           ms.ID,
		Round:        ms.Round,
		Predecessors: sortedCopy(ms.Predecessors),
		Added:        append([]string(nil), ms.Added...),
		Participants: b.Participants(ms),
		Size:         b.TotalParticipants(ms),
		Winners:      append([]string(nil), ms.Winners...),
		Losers:       sortedCopy(ms.Losers),
		Bye:          b.IsByeRound(ms),
		Completed:    ms.Completed(),
	}
	for _, m := range ms.Matches {
		sv.Matches = append(sv.Matches, MatchView{ID: m.ID, Placements: append([]string(nil), m.Placements...)})
	}
	return sv
}

// Structure prints the bracket from the final set down as nested sets, like (w:Peach(w:Peachp:Peach,Toad),(p:Mario)).
// Each set lists w: winners, then p: added entrants, then its earlier sets
// Winners are named by their members joined with +, added entrants by their name
func Structure(b *models.Bracket, competitors models.Competitors) (string, error) {
	final, err := b.Final()
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	writeStructure(&sb, b, competitors, final)
	return sb.String(), nil
}

func writeStructure(sb *strings.Builder, b *models.Bracket, competitors models.Competitors, ms *models.MatchSet) {
	sb.WriteString("(")
	if len(ms.Winners) > 0 {
		names := make([]string, 0, len(ms.Winners))
		for _, id := range ms.Winners {
			names = append(names, memberNames(b.Entrants[id], competitors))
		}
		sb.WriteString("w:" + strings.Join(names, ","))
	}
	if len(ms.Added) > 0 {
		names := make([]string, 0, len(ms.Added))
		for _, id := range ms.Added {
			if e, ok := b.Entrants[id]; ok {
				names = append(names, e.Name)
			} else {
				names = append(names, id)
			}
		}
		sb.WriteString("p:" + strings.Join(names, ","))
	}
	for i, id := range ms.Predecessors {
		if i > 0 {
			sb.WriteString(",")
		}
		if pred, ok := b.Sets[id]; ok {
			writeStructure(sb, b, competitors, pred)
		}
	}
	sb.WriteString(")")
}

func memberNames(e *models.Entrant, competitors models.Competitors) string {
	if e == nil {
		return ""
	}
	names := make([]string, 0, len(e.Members))
	for _, id := range e.Members {
		if c, ok := competitors[id]; ok {
			names = append(names, c.Name)
		} else {
			names = append(names, id)
		}
	}
	return strings.Join(names, "+")
}

func sortedCopy(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	out := append([]string(nil), ids...)
	sort.Strings(out)
	return out
}
