package challenge

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Tolerance is the accepted absolute distance from the expected answer.
const Tolerance = 0.01

// epsilon absorbs binary rounding so that e.g. 42.49 matches 42.5.
const epsilon = 1e-9

var ErrNotANumber = errors.New("not a number")

// ParseDecimal parses s with either a period or a comma as decimal
// separator. Surrounding whitespace is ignored; thousands separators are
// not accepted.
func ParseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.Count(s, ",")+strings.Count(s, ".") > 1 {
		return 0, fmt.Errorf("%q: %w", s, ErrNotANumber)
	}
	f, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q: %w", s, ErrNotANumber)
	}
	return f, nil
}

// Matches reports whether got is within Tolerance of want.
func Matches(got, want float64) bool {
	return math.Abs(got-want) <= Tolerance+epsilon
}

// Math is the free-text numeric challenge.
//
//	Unanswered --Submit--> Solved (terminal) | Incorrect
//	Incorrect  --Edit----> Unanswered
type Math struct {
	answer   float64
	unit     string
	state    State
	attempts int
}

func NewMath(answer float64, unit string) *Math {
	return &Math{answer: answer, unit: unit}
}

// Submit checks input and reports whether this call earned the points.
// Unparseable input counts as a wrong answer. Once solved, Submit is a
// no-op that returns false.
func (m *Math) Submit(input string) bool {
	if m.state == Solved {
		return false
	}
	m.attempts++

	got, err := ParseDecimal(input)
	if err != nil || !Matches(got, m.answer) {
		m.state = Incorrect
		return false
	}
	m.state = Solved
	return true
}

// Edit clears incorrect feedback when the user changes the input.
func (m *Math) Edit() {
	if m.state == Incorrect {
		m.state = Unanswered
	}
}

func (m *Math) State() State    { return m.state }
func (m *Math) Solved() bool    { return m.state == Solved }
func (m *Math) Attempts() int   { return m.attempts }
func (m *Math) Answer() float64 { return m.answer }
func (m *Math) Unit() string    { return m.unit }
