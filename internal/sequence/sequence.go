package sequence

// Konami is the key sequence that unlocks rainbow mode, as bubbletea key names.
var Konami = []string{"up", "up", "down", "down", "left", "right", "left", "right", "b", "a"}

// Recognizer watches a stream of input codes for one fixed target sequence.
// Partial progress has no timeout and persists until the sequence either
// completes or breaks.
type Recognizer[T comparable] struct {
	target  []T
	cursor  int
	onMatch func()
}

// New creates a recognizer for target. onMatch may be nil.
func New[T comparable](target []T, onMatch func()) *Recognizer[T] {
	t := make([]T, len(target))
	copy(t, target)

	return &Recognizer[T]{
		target:  t,
		onMatch: onMatch,
	}
}

// OnInput feeds one code and reports whether it completed the sequence.
// A mismatch restarts from the first position without reconsidering code as
// the start of a new attempt.
func (r *Recognizer[T]) OnInput(code T) bool {
	if len(r.target) == 0 {
		return false
	}

	if code != r.target[r.cursor] {
		r.cursor = 0
		return false
	}

	r.cursor++
	if r.cursor < len(r.target) {
		return false
	}

	r.cursor = 0
	if r.onMatch != nil {
		r.onMatch()
	}

	return true
}

// Cursor returns how many codes of the target have been matched so far.
func (r *Recognizer[T]) Cursor() int {
	return r.cursor
}

// Len returns the target length.
func (r *Recognizer[T]) Len() int {
	return len(r.target)
}

// Reset discards partial progress.
func (r *Recognizer[T]) Reset() {
	r.cursor = 0
}
