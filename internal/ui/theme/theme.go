package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette: calm indigo with warm amber accents
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#0EA5E9") // Sky
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#10B981") // Emerald
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgDark    = lipgloss.Color("#0F172A")
	BgCard    = lipgloss.Color("#1E293B")
	BgFact    = lipgloss.Color("#172554") // Deep blue
	BgRuler   = lipgloss.Color("#3F3F1F") // Muted yellow band
	Border    = lipgloss.Color("#334155")
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	StoryTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Text)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	ErrorText = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Story
var (
	RulerLine = lipgloss.NewStyle().
			Foreground(Text).
			Background(BgRuler)

	DimLine = lipgloss.NewStyle().
		Foreground(TextDim)

	FactBox = lipgloss.NewStyle().
		Background(BgFact).
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(Secondary).
		Padding(0, 1)

	FactHeading = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	Section = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	SectionHeading = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Scoreboard
var (
	Points = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	ScoreDate = lipgloss.NewStyle().
			Foreground(TextDim)
)

// Toggle renders an accessibility toggle as on or off.
func Toggle(label string, on bool) string {
	if on {
		return Selected.Render("[x] " + label)
	}
	return Unselected.Render("[ ] " + label)
}
