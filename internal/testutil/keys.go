package testutil

import (
	"errors"

	"github.com/kristiankunc/generate-gitignore/internal/search"
)

// ErrKeysExhausted is returned by a KeyScript once every key was consumed.
var ErrKeysExhausted = errors.New("key script exhausted")

// KeyScript replays a fixed sequence of keys.
type KeyScript struct {
	keys []search.Key
	read int
}

// NewKeyScript returns a reader producing keys in order.
func NewKeyScript(keys ...search.Key) *KeyScript {
	return &KeyScript{keys: keys}
}

// Type converts text into character keys.
func Type(text string) []search.Key {
	keys := make([]search.Key, 0, len(text))
	for _, r := range text {
		keys = append(keys, search.Char(r))
	}
	return keys
}

// Keys flattens key groups into one slice.
func Keys(groups ...[]search.Key) []search.Key {
	var out []search.Key
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func (s *KeyScript) ReadKey() (search.Key, error) {
	if s.read >= len(s.keys) {
		return search.Key{}, ErrKeysExhausted
	}
	key := s.keys[s.read]
	s.read++
	return key, nil
}

// Remaining reports how many keys were not consumed.
func (s *KeyScript) Remaining() int {
	return len(s.keys) - s.read
}
