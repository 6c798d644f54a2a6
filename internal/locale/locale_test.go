package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFrench(t *testing.T) {
	tr := New("fr-FR")
	assert.Equal(t, language.French, tr.Tag())

	l1, l2 := tr.DefaultLabels()
	assert.Equal(t, "Rouge", l1)
	assert.Equal(t, "Jaune", l2)
	assert.Equal(t, "Joueur Rouge, à vous de jouer !", tr.TurnPrompt(l1))
	assert.Equal(t, "Victoire du joueur Jaune !", tr.Victory(l2))
	assert.Equal(t, "Partie Nulle !", tr.Draw())
	assert.Equal(t, "Score - Rouge: 1, Jaune: 0", tr.Score(l1, 1, l2, 0))
}

func TestEnglishFallback(t *testing.T) {
	for _, lang := range []string{"", "en-US", "xx", "de"} {
		tr := New(lang)
		assert.Equalf(t, language.English, tr.Tag(), "lang %q", lang)
	}

	tr := New()
	l1, l2 := tr.DefaultLabels()
	assert.Equal(t, "Red", l1)
	assert.Equal(t, "Yellow", l2)
	assert.Equal(t, "Player Red, your turn!", tr.TurnPrompt(l1))
	assert.Equal(t, "It's a draw!", tr.Draw())
}

func TestAcceptLanguageHeader(t *testing.T) {
	tr := New("de-CH, fr;q=0.8, en;q=0.5")
	assert.Equal(t, language.French, tr.Tag())
}
