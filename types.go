package reportstyle

import (
	"maps"
	"sort"
)

// Output format names accepted by Defaults.
const (
	FormatChart      = "chart"
	FormatExcel      = "excel"
	FormatPowerPoint = "powerpoint"
	FormatPDF        = "pdf"
)

// DefaultScheme is the conventional fallback scheme name.
const DefaultScheme = "default"

// ColorScheme maps semantic roles ("primary", "warning") to hex colors.
// Values are validated at load time against #RGB and #RRGGBB grammar.
type ColorScheme map[string]string

// FormatDefaults holds styling parameters for one output format.
// The store passes these through uninterpreted - renderers own the meaning
// of conventional keys like dpi, figsize, fonts, header_fill, freeze_panes.
// Nested values are shared between copies; treat them as read-only.
type FormatDefaults map[string]any

// StyleDocument is a validated bundle of color schemes and per-format
// styling defaults. It is immutable after Load: queries return copies and
// Merge builds a new document, so a shared instance needs no locking.
type StyleDocument struct {
	ColorSchemes       map[string]ColorScheme `json:"color_schemes" yaml:"color_schemes"`
	ChartDefaults      FormatDefaults         `json:"chart_defaults,omitempty" yaml:"chart_defaults,omitempty"`
	ExcelDefaults      FormatDefaults         `json:"excel_defaults,omitempty" yaml:"excel_defaults,omitempty"`
	PowerPointDefaults FormatDefaults         `json:"powerpoint_defaults,omitempty" yaml:"powerpoint_defaults,omitempty"`
	PDFDefaults        FormatDefaults         `json:"pdf_defaults,omitempty" yaml:"pdf_defaults,omitempty"`
}

// SchemeNames returns the document's scheme names in sorted order.
func (d *StyleDocument) SchemeNames() []string {
	names := make([]string, 0, len(d.ColorSchemes))
	for name := range d.ColorSchemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasScheme reports whether the document defines the named scheme.
func (d *StyleDocument) HasScheme(name string) bool {
	_, ok := d.ColorSchemes[name]
	return ok
}

// clone returns a copy of the scheme. Safe on nil (returns nil).
func (s ColorScheme) clone() ColorScheme {
	return maps.Clone(s)
}

// clone returns a top-level copy of the defaults block. Nested values are
// shared with the original.
func (f FormatDefaults) clone() FormatDefaults {
	return maps.Clone(f)
}

// cloneSchemes copies the scheme map and every scheme in it.
func cloneSchemes(schemes map[string]ColorScheme) map[string]ColorScheme {
	if schemes == nil {
		return nil
	}
	out := make(map[string]ColorScheme, len(schemes))
	for name, scheme := range schemes {
		out[name] = scheme.clone()
	}
	return out
}
