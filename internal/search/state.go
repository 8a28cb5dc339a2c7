package search

// WindowSize is the number of matches shown at once.
const WindowSize = 10

// Transition is the outcome of applying one key to the state.
type Transition int

const (
	// Continue keeps the session editing.
	Continue Transition = iota
	// Select ends the session with the entry under the cursor.
	Select
	// NoMatch reports Enter with an empty match set.
	NoMatch
	// Abort ends the session without a selection.
	Abort
)

// State is the mutable part of a search session.
type State struct {
	Query  string
	Cursor int
}

// Matches returns the match set for the current query. An empty query
// matches every candidate.
func (s State) Matches(candidates []string) []string {
	if s.Query == "" {
		return candidates
	}
	return Filter(candidates, s.Query)
}

// Window returns the visible prefix of the match set.
func (s State) Window(candidates []string) []string {
	return visible(s.Matches(candidates))
}

// Selection returns the window entry under the cursor, or false when the
// window is empty.
func (s State) Selection(candidates []string) (string, bool) {
	window := s.Window(candidates)
	if len(window) == 0 {
		return "", false
	}
	return window[clamp(s.Cursor, len(window))], true
}

// Apply updates the state for key and reports what the session should do
// next. The cursor invariant 0 <= Cursor < max(1, len(window)) holds after
// every call.
func (s *State) Apply(key Key, candidates []string) Transition {
	switch key.Kind {
	case KeyChar:
		s.Query += string(key.Rune)
		s.reclamp(candidates)
	case KeyBackspace:
		if s.Query != "" {
			runes := []rune(s.Query)
			s.Query = string(runes[:len(runes)-1])
		}
		s.reclamp(candidates)
	case KeyUp:
		s.Cursor = max(0, s.Cursor-1)
	case KeyDown:
		window := s.Window(candidates)
		s.Cursor = max(0, min(len(window)-1, s.Cursor+1))
	case KeyEnter:
		if len(s.Matches(candidates)) == 0 {
			return NoMatch
		}
		s.reclamp(candidates)
		return Select
	case KeyInterrupt:
		return Abort
	}
	return Continue
}

// Reset clears the query and returns the cursor to the top.
func (s *State) Reset() {
	s.Query = ""
	s.Cursor = 0
}

func (s *State) reclamp(candidates []string) {
	s.Cursor = clamp(s.Cursor, len(s.Window(candidates)))
}

// clamp resets out of range cursors to the top of a window of size n.
func clamp(cursor, n int) int {
	if cursor < 0 || cursor >= n {
		return 0
	}
	return cursor
}

func visible(matches []string) []string {
	if len(matches) > WindowSize {
		return matches[:WindowSize]
	}
	return matches
}
