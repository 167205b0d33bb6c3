package session

import "unicode"

// minPasswordLength matches the registration form's strength rules.
const minPasswordLength = 8

// PasswordChecks reports which strength rules a candidate password
// satisfies, so the caller can show per-rule feedback.
type PasswordChecks struct {
	Length    bool
	Number    bool
	UpperCase bool
	LowerCase bool
}

func CheckPassword(pw string) PasswordChecks {
	c := PasswordChecks{Length: len(pw) >= minPasswordLength}
	for _, r := range pw {
		switch {
		case unicode.IsDigit(r):
			c.Number = true
		case unicode.IsUpper(r):
			c.UpperCase = true
		case unicode.IsLower(r):
			c.LowerCase = true
		}
	}
	return c
}

// OK reports whether every strength rule holds.
func (c PasswordChecks) OK() bool {
	return c.Length && c.Number && c.UpperCase && c.LowerCase
}
