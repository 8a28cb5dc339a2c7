//go:build windows

package search

import (
	"fmt"
	"os"

	"github.com/containerd/console"
	"golang.org/x/sys/windows"
	"golang.org/x/term"
)

var (
	msvcrt    = windows.NewLazySystemDLL("msvcrt.dll")
	procGetch = msvcrt.NewProc("_getch")
)

// consoleReader reads keys through the C runtime's _getch, which reports
// arrow keys as a prefixed two byte sequence.
type consoleReader struct {
	handle windows.Handle
}

// NewKeyReader returns the key reader for the current platform.
func NewKeyReader(in *os.File) (KeyReader, error) {
	if !term.IsTerminal(int(in.Fd())) {
		return nil, ErrNotTerminal
	}
	if err := procGetch.Find(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputDevice, err)
	}
	// enables virtual terminal processing so color codes render
	console.ConsoleFromFile(os.Stdout) //nolint:errcheck
	return &consoleReader{handle: windows.Handle(in.Fd())}, nil
}

func (r *consoleReader) ReadKey() (Key, error) {
	key, err := decodeConsole(r)
	if err != nil {
		return Key{}, fmt.Errorf("%w: %w", ErrInputDevice, err)
	}
	return key, nil
}

// ReadByte returns the next byte reported by _getch. Processed input is
// switched off around the call so Ctrl+C is delivered as 0x03.
func (r *consoleReader) ReadByte() (byte, error) {
	var mode uint32
	if err := windows.GetConsoleMode(r.handle, &mode); err != nil {
		return 0, fmt.Errorf("get console mode: %w", err)
	}
	if err := windows.SetConsoleMode(r.handle, mode&^windows.ENABLE_PROCESSED_INPUT); err != nil {
		return 0, fmt.Errorf("set console mode: %w", err)
	}
	ch, _, _ := procGetch.Call()
	if err := windows.SetConsoleMode(r.handle, mode); err != nil {
		return 0, fmt.Errorf("restore console mode: %w", err)
	}
	return byte(ch), nil
}
