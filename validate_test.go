package reportstyle

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestIsHexColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  bool
	}{
		{"#1f77b4", true},
		{"#FFF", true},
		{"#abc", true},
		{"#ABCDEF", true},
		{"#000000", true},
		{"blue", false},
		{"", false},
		{"#", false},
		{"#12", false},
		{"#1234", false},
		{"#12345", false},
		{"#1234567", false},
		{"1f77b4", false},
		{"#GGG", false},
		{"#1f77bz", false},
		{" #1f77b4", false},
		{"#1f77b4 ", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()

			if got := isHexColor(tt.value); got != tt.want {
				t.Errorf("isHexColor(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestValidate_AggregatesAllViolations(t *testing.T) {
	t.Parallel()

	doc := &StyleDocument{
		ColorSchemes: map[string]ColorScheme{
			"bad":   {"primary": "blue", "secondary": "#ff7f0e", "accent": "rgb(0,0,0)"},
			"worse": {"fill": "#12345"},
		},
	}

	err := doc.validate()

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("validate() error = %v, want *ValidationError", err)
	}

	want := []Violation{
		{Scheme: "bad", Role: "accent", Value: "rgb(0,0,0)"},
		{Scheme: "bad", Role: "primary", Value: "blue"},
		{Scheme: "worse", Role: "fill", Value: "#12345"},
	}
	if !reflect.DeepEqual(verr.Violations, want) {
		t.Errorf("Violations = %v, want %v", verr.Violations, want)
	}
}

func TestValidate_NamesOffendingTriple(t *testing.T) {
	t.Parallel()

	doc := &StyleDocument{
		ColorSchemes: map[string]ColorScheme{
			"bad": {"primary": "blue"},
		},
	}

	err := doc.validate()
	if err == nil {
		t.Fatal("validate() = nil, want error")
	}
	msg := err.Error()
	for _, part := range []string{"bad", "primary", "blue"} {
		if !strings.Contains(msg, part) {
			t.Errorf("error %q does not name %q", msg, part)
		}
	}
}

func TestValidate_EmptySchemeName(t *testing.T) {
	t.Parallel()

	doc := &StyleDocument{
		ColorSchemes: map[string]ColorScheme{
			"": {"primary": "#1f77b4"},
		},
	}

	var verr *ValidationError
	if err := doc.validate(); !errors.As(err, &verr) {
		t.Fatalf("validate() error = %v, want *ValidationError", err)
	}
	if len(verr.Violations) != 1 {
		t.Fatalf("Violations = %v, want one entry for the unnamed scheme", verr.Violations)
	}
}

func TestValidate_EmptyRoleName(t *testing.T) {
	t.Parallel()

	doc := &StyleDocument{
		ColorSchemes: map[string]ColorScheme{
			"default": {"": "#1f77b4"},
		},
	}

	var verr *ValidationError
	if err := doc.validate(); !errors.As(err, &verr) {
		t.Fatalf("validate() error = %v, want *ValidationError", err)
	}
	want := []Violation{{Scheme: "default", Role: "", Value: "#1f77b4"}}
	if !reflect.DeepEqual(verr.Violations, want) {
		t.Errorf("Violations = %v, want %v", verr.Violations, want)
	}
}

func TestValidate_ValidDocument(t *testing.T) {
	t.Parallel()

	doc := &StyleDocument{
		ColorSchemes: map[string]ColorScheme{
			"default": {"primary": "#1f77b4", "secondary": "#ff7f0e"},
			"short":   {"primary": "#abc"},
		},
		ChartDefaults: FormatDefaults{"dpi": 100},
	}

	if err := doc.validate(); err != nil {
		t.Errorf("validate() error = %v, want nil", err)
	}
}

func TestValidationError_IsStylesInvalid(t *testing.T) {
	t.Parallel()

	err := error(&ValidationError{Violations: []Violation{{Scheme: "x", Role: "y", Value: "z"}}})
	if !errors.Is(err, ErrStylesInvalid) {
		t.Error("errors.Is(*ValidationError, ErrStylesInvalid) = false, want true")
	}
	if errors.Is(err, ErrStylesParse) {
		t.Error("errors.Is(*ValidationError, ErrStylesParse) = true, want false")
	}
}
