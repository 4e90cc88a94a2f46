package bracket

import (
	"strings"
	"testing"

	"github.com/justinjudd/bracket/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFancyHTML(t *testing.T) {
	b, _ := fixedBracket(t, models.GameType_SMASH_ULTIMATE_SINGLES, 3)
	page := NewPage("Monday", b)

	h, err := page.FancyHTML()
	require.NoError(t, err)
	out := string(h)
	assert.Contains(t, out, "<h4>Monday</h4>")
	assert.Equal(t, 2, strings.Count(out, "<ul>"))
	assert.Contains(t, out, "Peach")
	assert.Contains(t, out, "BYE")
	assert.NotContains(t, out, "round-winner")

	complete(t, b, "s2", "e1")
	complete(t, b, "s3", "e2", []string{"e2", "e3"})
	complete(t, b, "s4", "e2", []string{"e2", "e1"})

	h, err = NewPage("Monday", b).FancyHTML()
	require.NoError(t, err)
	out = string(h)
	assert.Contains(t, out, `<li class="game round-winner"><span></span>Luigi`)
	assert.Contains(t, out, "winner")
}

func TestSetToHTML(t *testing.T) {
	b, _ := fixedBracket(t, models.GameType_SMASH_ULTIMATE_SINGLES, 2)
	complete(t, b, "s2", "e2", []string{"e1", "e2"}, []string{"e2", "e1"}, []string{"e2", "e1"})

	page := NewPage("Monday", b)
	h, err := page.SetToHTML(page.View.Sets[0][0])
	require.NoError(t, err)
	out := string(h)
	assert.Contains(t, out, "<b>Final</b>")
	assert.Contains(t, out, `winner"><span></span>Luigi <span>2</span>`)
	assert.Contains(t, out, `Mario <span>1</span>`)
}

func TestGenerateBracketHTML(t *testing.T) {
	b, _ := fixedBracket(t, models.GameType_SMASH_ULTIMATE_SINGLES, 2)
	complete(t, b, "s2", "e1", []string{"e1", "e2"})

	h, err := GenerateBracketHTML(b)
	require.NoError(t, err)
	out := string(h)
	assert.True(t, strings.HasPrefix(out, "<h1>SMASH_ULTIMATE_SINGLES 2026-03-02</h1>"))
	assert.Contains(t, out, "mini-bracket")
}
