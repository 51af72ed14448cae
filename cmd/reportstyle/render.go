package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"

	reportstyle "github.com/fpna-tools/go-reportstyle"
	"github.com/fpna-tools/go-reportstyle/internal/jsonutil"
)

// renderScheme prints one role per line. With color enabled each line
// carries a lipgloss swatch painted with the role's color; lipgloss
// degrades to plain text on terminals without color support.
func renderScheme(w io.Writer, scheme reportstyle.ColorScheme, noColor bool) {
	roles := make([]string, 0, len(scheme))
	for role := range scheme {
		roles = append(roles, role)
	}
	sort.Strings(roles)

	for _, role := range roles {
		value := scheme[role]
		if noColor {
			fmt.Fprintf(w, "%-12s %s\n", role, value)
			continue
		}
		swatch := lipgloss.NewStyle().
			Background(lipgloss.Color(value)).
			Render("  ")
		fmt.Fprintf(w, "%s %-12s %s\n", swatch, role, value)
	}
}

// encodeDefaults renders a format defaults block as indented JSON.
func encodeDefaults(defaults reportstyle.FormatDefaults) (string, error) {
	data, err := jsonutil.MarshalIndent(defaults)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
