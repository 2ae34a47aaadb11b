package routes

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxIdentifierLength bounds airport identifiers, in characters
const MaxIdentifierLength = 64

// CheckIdentifier reports whether id can name an airport. The same rule
// holds at ingest and at every lookup surface, so any airport in a graph can
// be queried: non-empty, at most MaxIdentifierLength characters, no
// whitespace, control characters or slashes.
func CheckIdentifier(id string) error {
	if id == "" {
		return ErrEmptyIdentifier
	}
	if !utf8.ValidString(id) {
		return fmt.Errorf("%w: not valid UTF-8", ErrInvalidIdentifier)
	}
	if n := utf8.RuneCountInString(id); n > MaxIdentifierLength {
		return fmt.Errorf("%w: %d characters, at most %d allowed", ErrInvalidIdentifier, n, MaxIdentifierLength)
	}
	if i := strings.IndexFunc(id, func(r rune) bool {
		return r == '/' || unicode.IsSpace(r) || unicode.IsControl(r)
	}); i >= 0 {
		r, _ := utf8.DecodeRuneInString(id[i:])
		return fmt.Errorf("%w: character %q not allowed", ErrInvalidIdentifier, r)
	}
	return nil
}
