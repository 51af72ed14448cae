package reportstyle

// Merge layers override on top of base and returns a new document.
// Semantics are shallow per-section replacement: a section present in
// override (non-nil) replaces base's entire section, it is not merged
// field by field. Supplying a partial chart_defaults therefore replaces
// the whole chart_defaults block. Neither input is mutated; the result
// shares no top-level maps with either.
//
// A nil override returns a copy of base. Merge does not re-validate:
// both inputs are expected to come from Load/Parse or Builtin.
func Merge(base, override *StyleDocument) *StyleDocument {
	if base == nil {
		base = &StyleDocument{}
	}

	merged := &StyleDocument{
		ColorSchemes:       cloneSchemes(base.ColorSchemes),
		ChartDefaults:      base.ChartDefaults.clone(),
		ExcelDefaults:      base.ExcelDefaults.clone(),
		PowerPointDefaults: base.PowerPointDefaults.clone(),
		PDFDefaults:        base.PDFDefaults.clone(),
	}
	if override == nil {
		return merged
	}

	if override.ColorSchemes != nil {
		merged.ColorSchemes = cloneSchemes(override.ColorSchemes)
	}
	if override.ChartDefaults != nil {
		merged.ChartDefaults = override.ChartDefaults.clone()
	}
	if override.ExcelDefaults != nil {
		merged.ExcelDefaults = override.ExcelDefaults.clone()
	}
	if override.PowerPointDefaults != nil {
		merged.PowerPointDefaults = override.PowerPointDefaults.clone()
	}
	if override.PDFDefaults != nil {
		merged.PDFDefaults = override.PDFDefaults.clone()
	}
	return merged
}
