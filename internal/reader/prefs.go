// Package reader turns story text into wrapped terminal lines under the
// user's accessibility preferences.
package reader

import "math"

const (
	MinFontSize     = 1.0
	MaxFontSize     = 2.0
	FontStep        = 0.1
	DefaultFontSize = 1.1

	// factSizeOffset and minFactSize size the real-world fact box
	// relative to the story.
	factSizeOffset = 0.15
	minFactSize    = 0.875
)

// Preferences live for the login session only.
type Preferences struct {
	FontSize       float64
	SplitSentences bool
	ReadingRuler   bool

	// RulerLine is the laid-out line under the ruler.
	RulerLine int
}

func DefaultPreferences() Preferences {
	return Preferences{FontSize: DefaultFontSize}
}

func (p *Preferences) IncreaseFont() { p.FontSize = clampSize(p.FontSize + FontStep) }
func (p *Preferences) DecreaseFont() { p.FontSize = clampSize(p.FontSize - FontStep) }
func (p *Preferences) ToggleSplit()  { p.SplitSentences = !p.SplitSentences }
func (p *Preferences) ToggleRuler()  { p.ReadingRuler = !p.ReadingRuler }

// MoveRuler shifts the ruler by delta lines, keeping it within
// [0, lines).
func (p *Preferences) MoveRuler(delta, lines int) {
	p.RulerLine += delta
	if p.RulerLine >= lines {
		p.RulerLine = lines - 1
	}
	if p.RulerLine < 0 {
		p.RulerLine = 0
	}
}

// FactFontSize is the size used for the fact box.
func (p Preferences) FactFontSize() float64 {
	return math.Max(p.FontSize-factSizeOffset, minFactSize)
}

// clampSize rounds to one decimal so repeated steps do not drift.
func clampSize(v float64) float64 {
	v = math.Round(v*10) / 10
	return math.Min(math.Max(v, MinFontSize), MaxFontSize)
}
