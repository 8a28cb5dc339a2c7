package search

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/kristiankunc/generate-gitignore/internal/theme"
)

const (
	clearScreen = "\033[H\033[2J"

	headerText    = "Interactive search (press Enter to select, Ctrl+C to exit):"
	allText       = "All templates:"
	promptText    = "Search: "
	noMatchText   = "No matches found"
	continueText  = "Press Enter to continue..."
	abortText     = "Aborting..."
	selectedMark  = "> "
	unselectedPad = "  "
	ellipsis      = "…"
)

// Renderer draws the full search screen. Width, when positive, truncates
// long names to fit the terminal.
type Renderer struct {
	Styles *theme.Styles
	Width  int
}

// Render redraws the whole screen for the given state. It writes nothing but
// terminal output and produces identical bytes for identical inputs.
func (r Renderer) Render(w io.Writer, candidates []string, st State) error {
	styles := r.styles()
	matches := st.Matches(candidates)
	window := visible(matches)

	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(styles.Header.Render(headerText))
	b.WriteString("\n")
	if st.Query == "" {
		b.WriteString("\n")
		b.WriteString(styles.Section.Render(allText))
		b.WriteString("\n")
	}

	cursor := clamp(st.Cursor, len(window))
	for i, name := range window {
		name = r.fit(name)
		if i == cursor {
			b.WriteString(styles.SelectedItem.Render(selectedMark + name))
		} else {
			b.WriteString(unselectedPad)
			b.WriteString(styles.Item.Render(name))
		}
		b.WriteString("\n")
	}

	if hidden := len(matches) - len(window); hidden > 0 {
		b.WriteString("\n")
		b.WriteString(styles.Overflow.Render(fmt.Sprintf("...and %d more", hidden)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Prompt.Render(promptText + st.Query))

	_, err := io.WriteString(w, b.String())
	return err
}

func (r Renderer) fit(name string) string {
	limit := r.Width - len(selectedMark)
	if r.Width <= 0 || limit <= 0 || ansi.StringWidth(name) <= limit {
		return name
	}
	return ansi.Truncate(name, limit, ellipsis)
}

func (r Renderer) styles() *theme.Styles {
	if r.Styles == nil {
		return theme.Default()
	}
	return r.Styles
}
