package search

import (
	"errors"
	"io"
	"unicode"
	"unicode/utf8"
)

// KeyKind classifies a raw input event.
type KeyKind int

const (
	KeyNone KeyKind = iota
	KeyChar
	KeyEnter
	KeyBackspace
	KeyUp
	KeyDown
	KeyInterrupt
)

func (k KeyKind) String() string {
	switch k {
	case KeyChar:
		return "char"
	case KeyEnter:
		return "enter"
	case KeyBackspace:
		return "backspace"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyInterrupt:
		return "interrupt"
	default:
		return "none"
	}
}

// Key is a platform independent key event. Rune is only set for KeyChar.
type Key struct {
	Kind KeyKind
	Rune rune
}

// Char builds a KeyChar event.
func Char(r rune) Key {
	return Key{Kind: KeyChar, Rune: r}
}

// KeyReader produces one key event per call, blocking until a key is
// available.
type KeyReader interface {
	ReadKey() (Key, error)
}

var (
	// ErrInputDevice wraps any failure to read from the terminal or to
	// restore its mode. It ends the session.
	ErrInputDevice = errors.New("input device error")
	// ErrNotTerminal is returned when the input is not an interactive terminal.
	ErrNotTerminal = errors.New("input is not a terminal")
)

const (
	byteInterrupt = 0x03
	byteBackspace = 0x08
	byteLineFeed  = 0x0a
	byteReturn    = 0x0d
	byteEscape    = 0x1b
	byteDelete    = 0x7f

	// console special-key prefixes reported by _getch
	consolePrefix  = 0xe0
	consoleNullKey = 0x00
	consoleUp      = 'H'
	consoleDown    = 'P'
)

// decodeTerminal decodes the first key in buf as delivered by a terminal in
// raw mode and returns it together with the number of bytes it consumed.
// A count of 0 means buf holds only the start of a key (an escape prefix or
// part of a UTF-8 sequence) and more input is needed. Escape sequences other
// than the up and down arrows decode to KeyNone.
func decodeTerminal(buf []byte) (Key, int) {
	if len(buf) == 0 {
		return Key{}, 0
	}
	switch b := buf[0]; b {
	case byteInterrupt:
		return Key{Kind: KeyInterrupt}, 1
	case byteReturn, byteLineFeed:
		return Key{Kind: KeyEnter}, 1
	case byteDelete, byteBackspace:
		return Key{Kind: KeyBackspace}, 1
	case byteEscape:
		return decodeEscape(buf)
	}
	if !utf8.FullRune(buf) {
		return Key{}, 0
	}
	r, size := utf8.DecodeRune(buf)
	if r == utf8.RuneError {
		return Key{}, size
	}
	return charKey(r), size
}

// maxEscapeLen bounds how long an unterminated control sequence may grow
// before it is discarded.
const maxEscapeLen = 16

// decodeEscape handles buf starting with ESC. CSI sequences (ESC [ params
// final) and SS3 sequences (ESC O final) are consumed whole; ESC followed by
// anything else is a lone escape.
func decodeEscape(buf []byte) (Key, int) {
	if len(buf) < 2 {
		return Key{}, 0
	}
	switch buf[1] {
	case 'O':
		if len(buf) < 3 {
			return Key{}, 0
		}
		return arrowKey(buf[2]), 3
	case '[':
		for i := 2; i < len(buf); i++ {
			c := buf[i]
			if c >= 0x40 && c <= 0x7e {
				if i == 2 {
					return arrowKey(c), 3
				}
				return Key{}, i + 1
			}
			if c < 0x20 || c > 0x3f {
				// not a valid parameter or intermediate byte
				return Key{}, i
			}
		}
		if len(buf) >= maxEscapeLen {
			return Key{}, len(buf)
		}
		return Key{}, 0
	}
	return Key{}, 1
}

func arrowKey(final byte) Key {
	switch final {
	case 'A':
		return Key{Kind: KeyUp}
	case 'B':
		return Key{Kind: KeyDown}
	}
	return Key{}
}

// decodeConsole reads one key from a console that reports special keys as a
// two byte sequence with a 0xE0 or 0x00 prefix.
func decodeConsole(src io.ByteReader) (Key, error) {
	b, err := src.ReadByte()
	if err != nil {
		return Key{}, err
	}
	switch b {
	case consolePrefix, consoleNullKey:
		code, err := src.ReadByte()
		if err != nil {
			return Key{}, err
		}
		switch code {
		case consoleUp:
			return Key{Kind: KeyUp}, nil
		case consoleDown:
			return Key{Kind: KeyDown}, nil
		}
		return Key{}, nil
	case byteInterrupt:
		return Key{Kind: KeyInterrupt}, nil
	case byteReturn, byteLineFeed:
		return Key{Kind: KeyEnter}, nil
	case byteBackspace, byteDelete:
		return Key{Kind: KeyBackspace}, nil
	}
	if b < utf8.RuneSelf {
		return charKey(rune(b)), nil
	}

	seq := []byte{b}
	for want := utf8SequenceLength(b); len(seq) < want; {
		next, err := src.ReadByte()
		if err != nil {
			return Key{}, err
		}
		seq = append(seq, next)
	}
	r, size := utf8.DecodeRune(seq)
	if r == utf8.RuneError || size != len(seq) {
		return Key{}, nil
	}
	return charKey(r), nil
}

func charKey(r rune) Key {
	if unicode.IsControl(r) {
		return Key{}
	}
	return Char(r)
}

// utf8SequenceLength reports the encoded length announced by a leading byte,
// or 1 for bytes that cannot start a multi-byte sequence.
func utf8SequenceLength(b byte) int {
	switch {
	case b&0xe0 == 0xc0:
		return 2
	case b&0xf0 == 0xe0:
		return 3
	case b&0xf8 == 0xf0:
		return 4
	default:
		return 1
	}
}
