package reader

import (
	"math"
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// minColumns keeps wrapping usable on very narrow terminals.
const minColumns = 20

// Columns is the wrap width for a given font size. Larger text gets
// fewer columns, the terminal stand-in for bigger glyphs.
func Columns(width int, size float64) int {
	if size <= 0 {
		size = DefaultFontSize
	}
	cols := int(float64(width) / size)
	if cols < minColumns {
		cols = minColumns
	}
	return cols
}

// Spacing is the number of blank lines between segments.
func Spacing(size float64) int {
	return 1 + int(math.Floor((size-MinFontSize)/0.5+1e-9))
}

// Layout wraps text for width columns under prefs. Segments become
// runs of lines separated by blank lines.
func Layout(text string, prefs Preferences, width int) []string {
	return layout(Segments(text, prefs.SplitSentences), prefs.FontSize, width)
}

// LayoutFact wraps the fact box text, which never splits sentences.
func LayoutFact(text string, prefs Preferences, width int) []string {
	return layout(Segments(text, false), prefs.FactFontSize(), width)
}

func layout(segments []string, size float64, width int) []string {
	cols := uint(Columns(width, size))
	gap := Spacing(size)

	var lines []string
	for i, seg := range segments {
		if i > 0 {
			for range gap {
				lines = append(lines, "")
			}
		}
		lines = append(lines, strings.Split(wordwrap.WrapString(seg, cols), "\n")...)
	}
	return lines
}

// RulerSpan is the inclusive range of lines the ruler highlights.
func RulerSpan(center, lines int) (from, to int) {
	if lines == 0 {
		return 0, -1
	}
	from, to = max(center-1, 0), min(center+1, lines-1)
	return from, to
}

// InRuler reports whether line i is highlighted.
func InRuler(prefs Preferences, i, lines int) bool {
	if !prefs.ReadingRuler {
		return false
	}
	from, to := RulerSpan(prefs.RulerLine, lines)
	return i >= from && i <= to
}
