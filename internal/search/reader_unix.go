//go:build !windows

package search

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// terminalReader reads keys from a POSIX terminal. The terminal is switched
// to raw mode only for the duration of each read and restored afterwards.
// Bytes that only start a key stay in pending until the next read completes
// them.
type terminalReader struct {
	in      io.Reader
	fd      int
	buf     [64]byte
	pending []byte
}

// NewKeyReader returns the key reader for the current platform.
func NewKeyReader(in *os.File) (KeyReader, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}
	return &terminalReader{in: in, fd: fd}, nil
}

func (r *terminalReader) ReadKey() (Key, error) {
	for {
		if key, n := decodeTerminal(r.pending); n > 0 {
			r.pending = r.pending[n:]
			return key, nil
		}
		if err := r.fill(); err != nil {
			return Key{}, fmt.Errorf("%w: %w", ErrInputDevice, err)
		}
	}
}

// fill performs one raw read and appends the bytes to pending. Restoration
// is attempted on every path; a restore failure is reported unless the read
// already failed.
func (r *terminalReader) fill() (err error) {
	old, err := term.MakeRaw(r.fd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	defer func() {
		if rerr := term.Restore(r.fd, old); rerr != nil && err == nil {
			err = fmt.Errorf("restore terminal: %w", rerr)
		}
	}()

	n, err := r.in.Read(r.buf[:])
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}
	r.pending = append(r.pending, r.buf[:n]...)
	return nil
}
