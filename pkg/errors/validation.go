package errors

import (
	"strings"
	"unicode"
)

// ValidateAtom validates a propositional atom identifier.
// Atoms appear verbatim in the textual bracket notation, so anything that
// would interfere with parsing (delimiters, commas, control characters) or
// with canonical rendering (surrounding whitespace) is rejected.
func ValidateAtom(name string) error {
	if name == "" {
		return New(ErrCodeInvalidAtom, "atom cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidAtom, "atom too long (max 256 characters)")
	}

	if strings.TrimSpace(name) != name {
		return New(ErrCodeInvalidAtom, "atom cannot have surrounding whitespace: %q", name)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidAtom, "atom contains control characters")
		}
	}

	if strings.ContainsAny(name, "()[],") {
		return New(ErrCodeInvalidAtom, "atom contains reserved characters: %q", name)
	}

	return nil
}
