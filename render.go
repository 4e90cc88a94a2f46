package bracket

import (
	"bytes"
	"html/template"
	"reflect"

	"github.com/justinjudd/bracket/models"
)

const bracketHTML = `
<h4>{{.Name}}</h4>
<main class="bracket">
{{$winner := lastWinner}}
{{ range $i, $round := .View.Sets }}
    <ul>
    {{ range $j, $set := $round -}}
        {{ $entrants := slots $set -}}
        {{ range $k, $id := $entrants -}}
            {{ if $id }}
            <li class="game{{if eq $k 0}} game-top{{end}}{{if last $k $entrants }} game-bottom{{end}}{{if winner $set $id }} winner{{end}}"><span></span>{{name $id}} <span>{{if $set.Bye}}BYE{{end}}</span></li>
            {{ else }}
            <li class="game{{if eq $k 0}} game-top{{end}}{{if last $k $entrants }} game-bottom{{end}}">  <span></span></li>
            {{ end }}
        {{end -}}
        {{if last $j $round | not }}<li>&nbsp;</li> {{end}}
    {{ end -}}</ul>
{{ end }}{{if $winner}}<ul><li class="game round-winner"><span></span>{{name $winner}} <span></span></li></ul>{{end}}
</main>
`

// Page renders a bracket as nested lists, one list per round, earliest round first
type Page struct {
	Name string
	View *View
	// Names maps entrant ids to display names
	Names map[string]string
}

// NewPage prepares a bracket for rendering
func NewPage(name string, b *models.Bracket) Page {
	names := make(map[string]string, len(b.Entrants))
	for id, e := range b.Entrants {
		names[id] = e.Name
	}
	return Page{Name: name, View: NewView(b), Names: names}
}

func (p Page) FancyHTML() ([]byte, error) {
	funcMap := template.FuncMap{
		"last": func(x int, a interface{}) bool {
			return x == reflect.ValueOf(a).Len()-1
		},
		"winner": func(set SetView, id string) bool {
			for _, w := range set.Winners {
				if w == id {
					return true
				}
			}
			return false
		},
		"name": func(id string) string {
			if name, ok := p.Names[id]; ok {
				return name
			}
			return id
		},
		// slots lists the known participants of a set, padded with empty slots for winners still to come
		"slots": func(set SetView) []string {
			slots := append([]string(nil), set.Participants...)
			if set.Completed {
				return slots
			}
			for len(slots) < set.Size {
				slots = append(slots, "")
			}
			return slots
		},
		"lastWinner": func() string {
			if len(p.View.Sets) == 0 {
				return ""
			}
			lastRound := p.View.Sets[len(p.View.Sets)-1]
			if len(lastRound) != 1 || len(lastRound[0].Winners) != 1 {
				return ""
			}
			return lastRound[0].Winners[0]
		},
	}
	tmpl, err := template.New("bracket").Funcs(funcMap).Parse(bracketHTML)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, p)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

const setHTML = `
{{ $set := .set }}
<div class="mini-bracket" style="min-height:100px">
{{if $set.Completed}}
<div style="text-align:center"><b>Final</b></div>
{{end}}
    <ul>
        {{ range $k, $id := order $set -}}
            <li class="game{{if eq $k 0}} game-top{{end}}{{if last $k $set.Participants }} game-bottom{{end}}{{if winner $id }} winner{{end}}"><span></span>{{name $id}} <span>{{wins $id}}</span></li>
        {{end -}}</ul>
</div>`

// SetToHTML renders a single match set, participants in the order of the last recorded game
func (p Page) SetToHTML(set SetView) ([]byte, error) {
	funcMap := template.FuncMap{
		"last": func(x int, a interface{}) bool {
			return x == reflect.ValueOf(a).Len()-1
		},
		"winner": func(id string) bool {
			for _, w := range set.Winners {
				if w == id {
					return true
				}
			}
			return false
		},
		"name": func(id string) string {
			if name, ok := p.Names[id]; ok {
				return name
			}
			return id
		},
		"order": func(set SetView) []string {
			if len(set.Matches) == 0 {
				return set.Participants
			}
			return set.Matches[len(set.Matches)-1].Placements
		},
		// wins counts the games an entrant finished first in
		"wins": func(id string) int {
			wins := 0
			for _, m := range set.Matches {
				if len(m.Placements) > 0 && m.Placements[0] == id {
					wins++
				}
			}
			return wins
		},
	}
	tmpl, err := template.New("set").Funcs(funcMap).Parse(setHTML)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	err = tmpl.Execute(&buf, map[string]interface{}{"set": set})
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// GenerateBracketHTML renders the whole bracket under a heading, then every set that has recorded games
func GenerateBracketHTML(b *models.Bracket) ([]byte, error) {
	name := b.GameType.String() + " " + b.Created.Format("2006-01-02")
	p := NewPage(name, b)

	var out []byte
	out = append(out, []byte("<h1>"+template.HTMLEscapeString(name)+"</h1>")...)

	h, err := p.FancyHTML()
	if err != nil {
		return nil, err
	}
	out = append(out, h...)

	for _, round := range p.View.Sets {
		for _, set := range round {
			if len(set.Matches) == 0 {
				continue
			}
			h, err := p.SetToHTML(set)
			if err != nil {
				return nil, err
			}
			out = append(out, h...)
		}
	}
	return out, nil
}
