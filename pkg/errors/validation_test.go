package errors

import (
	"strings"
	"testing"
)

func TestValidateAtom(t *testing.T) {
	tests := []struct {
		name    string
		atom    string
		wantErr bool
	}{
		{"simple", "A", false},
		{"word", "mortal", false},
		{"with digits", "p1", false},
		{"with underscore", "is_red", false},
		{"unicode", "człowiek", false},
		{"internal space", "socrates is mortal", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 257), true},
		{"leading space", " A", true},
		{"trailing space", "A ", true},
		{"control character", "A\tB", true},
		{"open paren", "A(", true},
		{"close paren", ")A", true},
		{"open bracket", "A[B", true},
		{"close bracket", "A]B", true},
		{"comma", "A,B", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAtom(tt.atom)
			if tt.wantErr && err == nil {
				t.Errorf("ValidateAtom(%q) = nil, want error", tt.atom)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateAtom(%q) = %v, want nil", tt.atom, err)
			}
			if tt.wantErr && GetCode(err) != ErrCodeInvalidAtom {
				t.Errorf("ValidateAtom(%q) code = %v, want INVALID_ATOM", tt.atom, GetCode(err))
			}
		})
	}
}

func TestValidateAtomMaxLength(t *testing.T) {
	if err := ValidateAtom(strings.Repeat("a", 256)); err != nil {
		t.Errorf("256-character atom should be valid, got %v", err)
	}
}
