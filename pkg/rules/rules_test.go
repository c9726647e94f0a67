package rules

import (
	"testing"

	"github.com/peircelab/peirce/pkg/errors"
	"github.com/peircelab/peirce/pkg/graph"
)

func TestParseRule(t *testing.T) {
	tests := []struct {
		input   string
		want    Rule
		wantErr bool
	}{
		{input: "double-cut", want: DoubleCut},
		{input: "dc", want: DoubleCut},
		{input: "erasure", want: Erasure},
		{input: "erase", want: Erasure},
		{input: "deiteration", want: Deiteration},
		{input: "di", want: Deiteration},
		{input: "iteration", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseRule(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseRule(%q) succeeded, want error", tt.input)
			} else if !errors.Is(err, errors.ErrCodeInvalidRule) {
				t.Errorf("ParseRule(%q) error code = %v, want INVALID_RULE", tt.input, errors.GetCode(err))
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRule(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRule(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestFindUnknownRule(t *testing.T) {
	if _, err := Find(Rule("insertion"), mustParse(t, "()")); !errors.Is(err, errors.ErrCodeInvalidRule) {
		t.Errorf("Find with unknown rule: error = %v, want INVALID_RULE", err)
	}
	if _, err := Apply(Rule("insertion"), mustParse(t, "()"), graph.Address{0}); !errors.Is(err, errors.ErrCodeInvalidRule) {
		t.Errorf("Apply with unknown rule: error = %v, want INVALID_RULE", err)
	}
}

// Every address an enumerator returns must be accepted by its paired applier.
func TestEnumeratedAddressesAlwaysApply(t *testing.T) {
	inputs := []string{
		"()",
		"([[]])",
		"(A, [A])",
		"(A, [B, C], [[D]])",
		"([A], [[A], B], A)",
		"([[[[A]]]], [B, [B, C]])",
		"(A, [B, [A, [C, [[D]], A]]])",
	}

	for _, input := range inputs {
		g := mustParse(t, input)
		for _, rule := range Rules() {
			addrs, err := Find(rule, g)
			if err != nil {
				t.Fatalf("Find(%v, %q) error: %v", rule, g, err)
			}
			for _, addr := range addrs {
				out, err := Apply(rule, g, addr)
				if err != nil {
					t.Errorf("Apply(%v, %q, %v) error: %v", rule, g, addr, err)
					continue
				}
				if out == nil {
					t.Errorf("Apply(%v, %q, %v) returned nil graph", rule, g, addr)
				}
			}
		}
	}
}
