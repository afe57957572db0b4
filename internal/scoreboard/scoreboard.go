// Package scoreboard derives the point total and display order from a
// user's score entries, and formats them the Danish way.
package scoreboard

import (
	"fmt"
	"slices"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mathstory/mathstory/internal/profile"
)

// Board is a derived view; it is rebuilt whenever the entries change.
type Board struct {
	Total   int
	Entries []profile.ScoreEntry
}

// Build sorts a copy of entries newest first and sums their points.
// Entries with equal timestamps keep their input order.
func Build(entries []profile.ScoreEntry) Board {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b profile.ScoreEntry) int {
		switch {
		case a.Timestamp > b.Timestamp:
			return -1
		case a.Timestamp < b.Timestamp:
			return 1
		}
		return 0
	})

	total := 0
	for _, e := range sorted {
		total += e.Points
	}
	return Board{Total: total, Entries: sorted}
}

func (b Board) Empty() bool { return len(b.Entries) == 0 }

var danishMonths = [...]string{
	"jan.", "feb.", "mar.", "apr.", "maj", "jun.",
	"jul.", "aug.", "sep.", "okt.", "nov.", "dec.",
}

// FormatDate renders t as day, abbreviated month and 24-hour time, for
// example "14. okt. 10.30".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d. %s %02d.%02d", t.Day(), danishMonths[t.Month()-1], t.Hour(), t.Minute())
}

var printer = message.NewPrinter(language.Danish)

// FormatPoints renders n with Danish digit grouping ("1.250").
func FormatPoints(n int) string {
	return printer.Sprintf("%d", n)
}
