// Package validate holds the pure field validators shared by every form.
// No page redefines these rules; they are the single source of truth.
package validate

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// emailRe matches the local@domain.tld shape: non-whitespace local part,
// non-whitespace domain, a literal dot, non-whitespace TLD.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email reports whether s looks like an email address.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// Password reports whether s is a valid password: 8 to 20 characters with at
// least one lowercase letter, one uppercase letter, one digit, and one
// special character (neither a word character nor whitespace).
func Password(s string) bool {
	n := utf8.RuneCountInString(s)
	if n < 8 || n > 20 {
		return false
	}
	var lower, upper, digit, special bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case !isWord(r) && !unicode.IsSpace(r):
			special = true
		}
	}
	return lower && upper && digit && special
}

func isWord(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// Nickname reports whether s is a valid nickname: non-empty, at most 10
// characters, and free of whitespace.
func Nickname(s string) bool {
	if s == "" {
		return false
	}
	if utf8.RuneCountInString(s) > 10 {
		return false
	}
	for _, r := range s {
		if unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
