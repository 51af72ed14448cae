package reportstyle

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// writeStyles writes content to a file named name under a temp dir and
// returns the full path.
func writeStyles(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

const validJSON = `{
  "color_schemes": {
    "default": {"primary": "#1f77b4", "secondary": "#ff7f0e"},
    "dark": {"primary": "#0B2545"}
  },
  "chart_defaults": {"dpi": 150, "grid": {"enabled": true, "alpha": 0.3}},
  "excel_defaults": {"header_fill": "#4472C4", "freeze_panes": "A2"}
}`

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("valid JSON document", func(t *testing.T) {
		t.Parallel()

		path := writeStyles(t, "styles.json", validJSON)
		doc, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if got := doc.SchemeNames(); !reflect.DeepEqual(got, []string{"dark", "default"}) {
			t.Errorf("SchemeNames() = %v", got)
		}
		if doc.ColorSchemes["default"]["primary"] != "#1f77b4" {
			t.Errorf("default.primary = %q, want %q", doc.ColorSchemes["default"]["primary"], "#1f77b4")
		}
		if doc.ChartDefaults["dpi"] == nil {
			t.Error("ChartDefaults[dpi] missing")
		}
	})

	t.Run("valid YAML document", func(t *testing.T) {
		t.Parallel()

		content := `color_schemes:
  default:
    primary: "#1f77b4"
chart_defaults:
  dpi: 100
`
		path := writeStyles(t, "styles.yaml", content)
		doc, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if doc.ColorSchemes["default"]["primary"] != "#1f77b4" {
			t.Errorf("default.primary = %q", doc.ColorSchemes["default"]["primary"])
		}
	})

	t.Run("empty path returns ErrEmptyPath", func(t *testing.T) {
		t.Parallel()

		_, err := Load("")
		if !errors.Is(err, ErrEmptyPath) {
			t.Errorf("error = %v, want ErrEmptyPath", err)
		}
	})

	t.Run("missing file returns ErrStylesNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := Load("/nonexistent/chart_styles.json")
		if !errors.Is(err, ErrStylesNotFound) {
			t.Errorf("error = %v, want ErrStylesNotFound", err)
		}
	})

	t.Run("malformed JSON returns ErrStylesParse", func(t *testing.T) {
		t.Parallel()

		path := writeStyles(t, "broken.json", `{"color_schemes": `)
		_, err := Load(path)
		if !errors.Is(err, ErrStylesParse) {
			t.Errorf("error = %v, want ErrStylesParse", err)
		}
	})

	t.Run("malformed YAML returns ErrStylesParse", func(t *testing.T) {
		t.Parallel()

		path := writeStyles(t, "broken.yaml", "color_schemes: [unclosed")
		_, err := Load(path)
		if !errors.Is(err, ErrStylesParse) {
			t.Errorf("error = %v, want ErrStylesParse", err)
		}
	})

	t.Run("invalid color returns ErrStylesInvalid", func(t *testing.T) {
		t.Parallel()

		path := writeStyles(t, "bad.json", `{"color_schemes": {"bad": {"primary": "blue"}}}`)
		_, err := Load(path)
		if !errors.Is(err, ErrStylesInvalid) {
			t.Errorf("error = %v, want ErrStylesInvalid", err)
		}
	})
}

func TestParse_MissingColorSchemes(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`{"chart_defaults": {"dpi": 100}}`))

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if !reflect.DeepEqual(verr.MissingKeys, []string{"color_schemes"}) {
		t.Errorf("MissingKeys = %v, want [color_schemes]", verr.MissingKeys)
	}
}

func TestParse_EmptyColorSchemesIsValid(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(`{"color_schemes": {}}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(doc.SchemeNames()) != 0 {
		t.Errorf("SchemeNames() = %v, want empty", doc.SchemeNames())
	}
}

func TestEncodeJSON_RoundTrip(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(validJSON))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	data, err := doc.EncodeJSON()
	if err != nil {
		t.Fatalf("EncodeJSON() error = %v", err)
	}

	again, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(EncodeJSON()) error = %v", err)
	}
	if !reflect.DeepEqual(doc, again) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", again, doc)
	}
}
