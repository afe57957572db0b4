package challenge

// Reading is the multiple-choice challenge. A wrong pick leaves every
// option selectable; the right pick is terminal.
type Reading struct {
	correct  int
	options  int
	selected int
	state    State
	attempts int
}

func NewReading(correctIndex, optionCount int) *Reading {
	return &Reading{correct: correctIndex, options: optionCount, selected: -1}
}

// Select picks option i and reports whether this call earned the points.
// Out-of-range indexes and selections after solving are ignored.
func (r *Reading) Select(i int) bool {
	if r.state == Solved || i < 0 || i >= r.options {
		return false
	}
	r.attempts++
	r.selected = i
	if i != r.correct {
		r.state = Incorrect
		return false
	}
	r.state = Solved
	return true
}

func (r *Reading) State() State  { return r.state }
func (r *Reading) Solved() bool  { return r.state == Solved }
func (r *Reading) Attempts() int { return r.attempts }

// Selected is the last picked option, or -1.
func (r *Reading) Selected() int { return r.selected }

// Correct is the index of the right option.
func (r *Reading) Correct() int { return r.correct }

// Options is the number of options.
func (r *Reading) Options() int { return r.options }
