package search

import (
	"fmt"
	"io"

	"github.com/kristiankunc/generate-gitignore/internal/logging/events"
	"github.com/kristiankunc/generate-gitignore/internal/theme"
)

// Outcome tells how a session ended.
type Outcome int

const (
	Selected Outcome = iota
	Aborted
)

func (o Outcome) String() string {
	if o == Aborted {
		return "aborted"
	}
	return "selected"
}

// Result is returned by a finished session. Name is empty unless the
// outcome is Selected.
type Result struct {
	Outcome Outcome
	Name    string
}

// Session runs one interactive search over a fixed candidate list.
type Session struct {
	candidates []string
	keys       KeyReader
	out        io.Writer
	renderer   Renderer
	state      State
}

// Option customises a Session.
type Option func(*Session)

// WithStyles overrides the styles used for rendering.
func WithStyles(styles *theme.Styles) Option {
	return func(s *Session) {
		s.renderer.Styles = styles
	}
}

// WithWidth truncates names wider than width columns.
func WithWidth(width int) Option {
	return func(s *Session) {
		s.renderer.Width = width
	}
}

// NewSession prepares a session. The candidate slice is not modified.
func NewSession(candidates []string, keys KeyReader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		candidates: candidates,
		keys:       keys,
		out:        out,
		renderer:   Renderer{Styles: theme.Default()},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a copy of the current session state.
func (s *Session) State() State {
	return s.state
}

// Run loops until a name is selected or the user interrupts. Errors are
// only returned for input device failures and wrap ErrInputDevice.
func (s *Session) Run() (Result, error) {
	events.Search.Start(len(s.candidates))
	for {
		if err := s.renderer.Render(s.out, s.candidates, s.state); err != nil {
			return Result{}, fmt.Errorf("render: %w", err)
		}
		key, err := s.keys.ReadKey()
		if err != nil {
			events.Search.InputError(err)
			return Result{}, err
		}

		switch s.state.Apply(key, s.candidates) {
		case Select:
			name, _ := s.state.Selection(s.candidates)
			events.Search.Select(s.state.Query, name)
			fmt.Fprint(s.out, "\n\n")
			return Result{Outcome: Selected, Name: name}, nil
		case Abort:
			return s.abort(), nil
		case NoMatch:
			events.Search.NoMatch(s.state.Query)
			acknowledged, err := s.acknowledge()
			if err != nil {
				events.Search.InputError(err)
				return Result{}, err
			}
			if !acknowledged {
				return s.abort(), nil
			}
			s.state.Reset()
		case Continue:
			s.trace(key)
		}
	}
}

// acknowledge shows the no-match notice and blocks until Enter. It returns
// false when the user interrupts instead.
func (s *Session) acknowledge() (bool, error) {
	styles := s.renderer.styles()
	fmt.Fprintf(s.out, "\n%s\n%s", styles.Error.Render(noMatchText), continueText)
	for {
		key, err := s.keys.ReadKey()
		if err != nil {
			return false, err
		}
		switch key.Kind {
		case KeyEnter:
			return true, nil
		case KeyInterrupt:
			return false, nil
		}
	}
}

func (s *Session) abort() Result {
	events.Search.Abort(s.state.Query)
	fmt.Fprintf(s.out, "\n%s\n", s.renderer.styles().Error.Render(abortText))
	return Result{Outcome: Aborted}
}

func (s *Session) trace(key Key) {
	switch key.Kind {
	case KeyChar:
		events.Search.Append(s.state.Query, len(s.state.Matches(s.candidates)))
	case KeyBackspace:
		events.Search.Backspace(s.state.Query, len(s.state.Matches(s.candidates)))
	case KeyUp, KeyDown:
		events.Search.Cursor(s.state.Cursor)
	}
}
