package domain

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")

	ErrUsernameTaken = errors.New("username already taken")
)

// ValidationError is a form input problem shown back to the user.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Truncate cuts s to at most n runes, the way a bounded column would store it.
// Invalid UTF-8 is replaced with U+FFFD whatever the length.
func Truncate(s string, n int) string {
	s = strings.ToValidUTF8(s, string(utf8.RuneError))
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}
