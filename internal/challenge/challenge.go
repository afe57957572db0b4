// Package challenge holds the two per-story challenges. Each one awards
// Points exactly once, on its first correct answer.
package challenge

// Points awarded for solving a challenge.
const Points = 10

// State of a challenge within one story instance.
type State int

const (
	Unanswered State = iota
	Incorrect
	Solved
)

func (s State) String() string {
	switch s {
	case Unanswered:
		return "unanswered"
	case Incorrect:
		return "incorrect"
	case Solved:
		return "solved"
	}
	return "unknown"
}

// Kind identifies which challenge produced a score.
type Kind int

const (
	KindMath Kind = iota
	KindReading
)

// Label is the Danish suffix used in score titles.
func (k Kind) Label() string {
	if k == KindReading {
		return "Læsning"
	}
	return "Matematik"
}
