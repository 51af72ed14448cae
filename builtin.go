package reportstyle

import (
	"sync"

	"github.com/fpna-tools/go-reportstyle/internal/assets"
)

var (
	builtinOnce sync.Once
	builtinDoc  *StyleDocument
)

// Builtin returns the embedded default style document: the conventional
// financial-report palette (primary blue, secondary orange, success,
// warning, danger, neutral) plus chart and Excel defaults. It is the
// natural base for Merge when layering a user override file, and the
// fallback document for callers that must keep rendering when a styles
// file is broken.
//
// The returned document is shared; treat it as read-only like any other
// StyleDocument.
func Builtin() *StyleDocument {
	builtinOnce.Do(func() {
		data, err := assets.LoadDocument(BuiltinDocument)
		if err != nil {
			panic("reportstyle: embedded default document missing: " + err.Error())
		}
		doc, err := Parse(data)
		if err != nil {
			panic("reportstyle: embedded default document invalid: " + err.Error())
		}
		builtinDoc = doc
	})
	return builtinDoc
}
