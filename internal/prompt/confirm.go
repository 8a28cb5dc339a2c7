package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kristiankunc/generate-gitignore/internal/theme"
)

// DefaultAttempts is how often an unrecognised answer is re-prompted.
const DefaultAttempts = 3

// ErrTooManyAttempts is returned when every answer was unrecognised.
var ErrTooManyAttempts = errors.New("too many invalid answers")

// Confirm asks a yes/no question on out and reads line answers from in. It
// re-prompts on unrecognised input up to attempts times. EOF is returned as
// io.EOF.
func Confirm(in io.Reader, out io.Writer, styles *theme.Styles, question string, attempts int) (bool, error) {
	if styles == nil {
		styles = theme.Default()
	}
	if attempts <= 0 {
		attempts = DefaultAttempts
	}
	scanner := bufio.NewScanner(in)
	for i := 0; i < attempts; i++ {
		fmt.Fprintf(out, "%s (yY/nN): ", styles.Warning.Render(question))
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return false, fmt.Errorf("read answer: %w", err)
			}
			return false, io.EOF
		}
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(out, styles.Error.Render("Invalid input. Please enter 'yes' or 'no'."))
	}
	return false, ErrTooManyAttempts
}
