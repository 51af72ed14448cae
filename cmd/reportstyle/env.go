package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly defaults without repeating flags.
type envConfig struct {
	StylesPath string // REPORTSTYLE_STYLES: styles file path
	Scheme     string // REPORTSTYLE_SCHEME: default scheme name
}

// knownEnvVars lists valid REPORTSTYLE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"REPORTSTYLE_STYLES": true,
	"REPORTSTYLE_SCHEME": true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	return &envConfig{
		StylesPath: os.Getenv("REPORTSTYLE_STYLES"),
		Scheme:     os.Getenv("REPORTSTYLE_SCHEME"),
	}
}

// applyEnvConfig fills flag values left empty on the command line.
// Precedence: CLI flags > environment > built-in defaults.
func applyEnvConfig(env *envConfig, flags *cliFlags) {
	if flags.stylesPath == "" && env.StylesPath != "" {
		flags.stylesPath = env.StylesPath
	}
	if flags.scheme == "" && env.Scheme != "" {
		flags.scheme = env.Scheme
	}
}

// warnUnknownEnvVars logs warnings for unrecognized REPORTSTYLE_* variables.
// Helps catch typos like REPORTSTYLE_STYLE instead of REPORTSTYLE_STYLES.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "REPORTSTYLE_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}
