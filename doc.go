// Package reportstyle loads, validates, and merges styling configuration
// for financial report renderers.
//
// A style document is a JSON (or YAML) file carrying named color schemes
// and per-format default blocks for chart, Excel, PowerPoint, and PDF
// output. The package owns the document's shape and validation; rendering
// agents consume the resolved styles through read-only queries and own the
// meaning of format-specific keys.
//
// # Quick Start
//
// Load a document, resolve a scheme, and hand it to a renderer:
//
//	doc, err := reportstyle.Load("chart_styles.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	scheme, err := doc.SchemeOrFallback("executive", reportstyle.DefaultScheme)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	chart, _ := doc.Defaults(reportstyle.FormatChart)
//	render(scheme, chart)
//
// # Layered Configuration
//
// Merge layers a partial override document on top of shipped defaults.
// Sections are replaced whole (shallow per-section semantics):
//
//	doc := reportstyle.Merge(reportstyle.Builtin(), userDoc)
//
// # Validation
//
// Load rejects documents with malformed color values. All violations are
// collected into a single *ValidationError so one pass yields the complete
// diagnostic:
//
//	_, err := reportstyle.Load("styles.json")
//	var verr *reportstyle.ValidationError
//	if errors.As(err, &verr) {
//	    for _, v := range verr.Violations {
//	        fmt.Println(v.Scheme, v.Role, v.Value)
//	    }
//	}
//
// # Immutability
//
// A StyleDocument never changes after Load; queries return copies and
// Merge builds a fresh document. A loaded document is therefore safe to
// share across any number of concurrent readers without locking.
// Customization happens by editing the backing file and reloading.
package reportstyle
