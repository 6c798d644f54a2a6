// Package locale holds the display strings shown by the game adapters.
package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	keyLabel1      = "Red"
	keyLabel2      = "Yellow"
	keyTurnPrompt  = "Player %s, your turn!"
	keyVictory     = "Player %s wins!"
	keyDraw        = "It's a draw!"
	keyScore       = "Score - %s: %d, %s: %d"
	keyConfiguring = "Choose the board size and the player colors."
)

var supported = []language.Tag{language.English, language.French}

var matcher = language.NewMatcher(supported)

func init() {
	french := map[string]string{
		keyLabel1:      "Rouge",
		keyLabel2:      "Jaune",
		keyTurnPrompt:  "Joueur %s, à vous de jouer !",
		keyVictory:     "Victoire du joueur %s !",
		keyDraw:        "Partie Nulle !",
		keyScore:       "Score - %s: %d, %s: %d",
		keyConfiguring: "Choisissez la taille de la grille et les couleurs des joueurs.",
	}
	for key, msg := range french {
		if err := message.SetString(language.French, key, msg); err != nil {
			panic(err)
		}
	}
}

type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// New picks the closest supported language for a list of BCP 47 tags or
// Accept-Language values. Unknown or empty input falls back to English.
func New(lang ...string) *Translator {
	_, index := language.MatchStrings(matcher, lang...)
	tag := supported[index]
	return &Translator{tag: tag, printer: message.NewPrinter(tag)}
}

func (t *Translator) Tag() language.Tag { return t.tag }

func (t *Translator) DefaultLabels() (string, string) {
	return t.printer.Sprintf(keyLabel1), t.printer.Sprintf(keyLabel2)
}

func (t *Translator) TurnPrompt(label string) string {
	return t.printer.Sprintf(keyTurnPrompt, label)
}

func (t *Translator) Victory(label string) string {
	return t.printer.Sprintf(keyVictory, label)
}

func (t *Translator) Draw() string {
	return t.printer.Sprintf(keyDraw)
}

func (t *Translator) Score(label1 string, score1 int, label2 string, score2 int) string {
	return t.printer.Sprintf(keyScore, label1, score1, label2, score2)
}

func (t *Translator) Configuring() string {
	return t.printer.Sprintf(keyConfiguring)
}
