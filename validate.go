package reportstyle

import (
	"fmt"
	"sort"
	"strings"
)

// Violation identifies one invalid color entry: the scheme and role it was
// found under, and the offending value. An empty scheme or role name is
// itself a violation and is reported with the empty field left blank.
type Violation struct {
	Scheme string
	Role   string
	Value  string
}

// String renders the violation as a (scheme, role, value) triple.
func (v Violation) String() string {
	return fmt.Sprintf("(%s, %s, %q)", v.Scheme, v.Role, v.Value)
}

// ValidationError aggregates every schema violation found in one pass over
// the document, so callers get the complete diagnostic from a single Load.
// Matches ErrStylesInvalid via errors.Is.
type ValidationError struct {
	MissingKeys []string    // required top-level keys absent from the document
	Violations  []Violation // invalid color entries, sorted by scheme then role
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrStylesInvalid.Error())
	for _, key := range e.MissingKeys {
		fmt.Fprintf(&b, "; missing required key %q", key)
	}
	if len(e.Violations) > 0 {
		fmt.Fprintf(&b, "; %d invalid color value(s):", len(e.Violations))
		for _, v := range e.Violations {
			b.WriteString(" ")
			b.WriteString(v.String())
		}
	}
	return b.String()
}

// Is reports a match for ErrStylesInvalid so callers can use errors.Is
// without knowing the concrete type.
func (e *ValidationError) Is(target error) bool {
	return target == ErrStylesInvalid
}

// validate checks the document's schema. It walks every scheme and every
// role within it, collecting all violations instead of stopping at the
// first. Returns nil or a *ValidationError.
//
// Rules: the color_schemes key must be present (it may be empty); scheme
// and role names are non-empty; every color value is # followed by exactly
// 3 or 6 hex digits. Format defaults blocks are opaque and not inspected.
func (d *StyleDocument) validate() error {
	verr := &ValidationError{}

	if d.ColorSchemes == nil {
		verr.MissingKeys = append(verr.MissingKeys, "color_schemes")
	}

	// Deterministic violation order for stable error messages.
	for _, name := range d.SchemeNames() {
		scheme := d.ColorSchemes[name]
		if name == "" {
			verr.Violations = append(verr.Violations, Violation{})
		}
		for _, role := range sortedRoles(scheme) {
			value := scheme[role]
			if role == "" || !isHexColor(value) {
				verr.Violations = append(verr.Violations, Violation{
					Scheme: name,
					Role:   role,
					Value:  value,
				})
			}
		}
	}

	if len(verr.MissingKeys) > 0 || len(verr.Violations) > 0 {
		return verr
	}
	return nil
}

// isHexColor reports whether s is "#" followed by exactly 3 or 6 hex
// digits. Digits are case-insensitive; no other forms (rgb(), named
// colors, alpha channels) are accepted.
func isHexColor(s string) bool {
	if len(s) != 4 && len(s) != 7 {
		return false
	}
	if s[0] != '#' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

func sortedRoles(s ColorScheme) []string {
	roles := make([]string, 0, len(s))
	for role := range s {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}
