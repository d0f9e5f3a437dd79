// Package strength decides whether a plaintext password is strong enough to
// be turned into a stored credential.
//
// A password is accepted when it is at least MinLength characters long and
// contains at least three of the four character classes (lowercase,
// uppercase, digit, special). Every call builds its own State, so Evaluate
// and IsValid are safe for concurrent use.
package strength

import "unicode/utf8"

// MinLength is the minimum number of characters (Unicode code points).
const MinLength = 6

// Class is a character class checked by the policy.
type Class uint8

const (
	Lowercase Class = iota
	Uppercase
	Digit
	Special
)

// classes lists every class in evaluation order.
var classes = [...]Class{Lowercase, Uppercase, Digit, Special}

func (c Class) String() string {
	switch c {
	case Lowercase:
		return "lowercase"
	case Uppercase:
		return "uppercase"
	case Digit:
		return "digit"
	case Special:
		return "special"
	default:
		return "unknown"
	}
}

// matches reports whether r belongs to class c. Special is anything
// outside [A-Za-z0-9_], so non-ASCII letters count as special.
func (c Class) matches(r rune) bool {
	switch c {
	case Lowercase:
		return r >= 'a' && r <= 'z'
	case Uppercase:
		return r >= 'A' && r <= 'Z'
	case Digit:
		return r >= '0' && r <= '9'
	case Special:
		return !isWordRune(r)
	default:
		return false
	}
}

func isWordRune(r rune) bool {
	return r >= 'a' && r <= 'z' ||
		r >= 'A' && r <= 'Z' ||
		r >= '0' && r <= '9' ||
		r == '_'
}

// Report is the outcome of evaluating one password.
type Report struct {
	Length  int
	Classes []Class
	State   State
	Valid   bool
}

// Missing returns the classes the password does not contain.
func (r Report) Missing() []Class {
	var missing []Class
	for _, c := range classes {
		if !r.has(c) {
			missing = append(missing, c)
		}
	}
	return missing
}

func (r Report) has(c Class) bool {
	for _, found := range r.Classes {
		if found == c {
			return true
		}
	}
	return false
}

// Evaluate checks password against the policy. Passwords shorter than
// MinLength are rejected without looking at their characters.
func Evaluate(password string) Report {
	var state State

	rep := Report{Length: utf8.RuneCountInString(password)}
	if password == "" || rep.Length < MinLength {
		return rep
	}

	for _, c := range classes {
		if contains(password, c) {
			rep.Classes = append(rep.Classes, c)
			state.Advance()
		}
	}

	rep.State = state
	rep.Valid = state == Three
	return rep
}

// IsValid reports whether password satisfies the policy.
func IsValid(password string) bool {
	return Evaluate(password).Valid
}

func contains(s string, c Class) bool {
	for _, r := range s {
		if c.matches(r) {
			return true
		}
	}
	return false
}
