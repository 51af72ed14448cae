package reportstyle

import "fmt"

// Scheme returns the named color scheme. Lookup is strict: a missing
// scheme is ErrSchemeNotFound, never a silent substitution. Use
// SchemeOrFallback when fallback behavior is wanted.
func (d *StyleDocument) Scheme(name string) (ColorScheme, error) {
	scheme, ok := d.ColorSchemes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSchemeNotFound, name)
	}
	return scheme.clone(), nil
}

// SchemeOrFallback returns the named scheme, or the fallback scheme when
// name is absent. An empty fallback disables the fallback (strict lookup).
// Returns ErrSchemeNotFound when neither name nor fallback resolves.
func (d *StyleDocument) SchemeOrFallback(name, fallback string) (ColorScheme, error) {
	if scheme, ok := d.ColorSchemes[name]; ok {
		return scheme.clone(), nil
	}
	if fallback != "" {
		if scheme, ok := d.ColorSchemes[fallback]; ok {
			return scheme.clone(), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrSchemeNotFound, name)
}

// Defaults returns the styling defaults block for the given output format
// (chart, excel, powerpoint, or pdf). An absent block is not an error:
// documents need not style every format, so the result is an empty map.
// An unrecognized format name is ErrUnknownFormat.
func (d *StyleDocument) Defaults(format string) (FormatDefaults, error) {
	var block FormatDefaults
	switch format {
	case FormatChart:
		block = d.ChartDefaults
	case FormatExcel:
		block = d.ExcelDefaults
	case FormatPowerPoint:
		block = d.PowerPointDefaults
	case FormatPDF:
		block = d.PDFDefaults
	default:
		return nil, fmt.Errorf("%w: %q (must be %s, %s, %s, or %s)",
			ErrUnknownFormat, format, FormatChart, FormatExcel, FormatPowerPoint, FormatPDF)
	}
	if block == nil {
		return FormatDefaults{}, nil
	}
	return block.clone(), nil
}
