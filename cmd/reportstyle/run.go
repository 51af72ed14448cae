package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	flag "github.com/spf13/pflag"

	reportstyle "github.com/fpna-tools/go-reportstyle"
)

// run drives the CLI: parse flags, load and validate the document, then
// answer the requested query.
func run(args []string, stdout, stderr io.Writer) error {
	flags, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.version {
		fmt.Fprintln(stdout, "reportstyle", Version)
		return nil
	}

	logger := newLogger(stderr, flags)
	warnUnknownEnvVars(stderr)
	applyEnvConfig(loadEnvConfig(), flags)

	doc, err := loadBase(flags, logger)
	if err != nil {
		return err
	}

	if flags.mergePath != "" {
		override, err := reportstyle.Load(flags.mergePath)
		if err != nil {
			return fmt.Errorf("loading override: %w", err)
		}
		doc = reportstyle.Merge(doc, override)
		logger.Debug("merged override", "path", flags.mergePath)
	}

	switch {
	case flags.list:
		for _, name := range doc.SchemeNames() {
			fmt.Fprintln(stdout, name)
		}
		return nil

	case flags.scheme != "":
		scheme, err := doc.SchemeOrFallback(flags.scheme, flags.fallback)
		if err != nil {
			return err
		}
		renderScheme(stdout, scheme, flags.noColor)
		return nil

	case flags.format != "":
		defaults, err := doc.Defaults(flags.format)
		if err != nil {
			return err
		}
		out, err := encodeDefaults(defaults)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, out)
		return nil

	default:
		// No action flag: validation already happened in Load.
		if !flags.quiet {
			fmt.Fprintf(stdout, "ok: %d scheme(s)\n", len(doc.SchemeNames()))
		}
		return nil
	}
}

// loadBase resolves the base document: an explicit file, or the embedded
// default when --builtin is set and no file is named.
func loadBase(flags *cliFlags, logger *log.Logger) (*reportstyle.StyleDocument, error) {
	if flags.stylesPath == "" {
		if flags.builtin {
			logger.Debug("using embedded default document")
			return reportstyle.Builtin(), nil
		}
		return nil, fmt.Errorf("%w: no styles file (pass a path, set REPORTSTYLE_STYLES, or use --builtin)", errUsage)
	}

	doc, err := reportstyle.Load(flags.stylesPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded styles", "path", flags.stylesPath, "schemes", len(doc.SchemeNames()))
	return doc, nil
}

// newLogger builds the CLI logger. Debug level with --verbose, errors only
// with --quiet, warnings otherwise.
func newLogger(w io.Writer, flags *cliFlags) *log.Logger {
	logger := log.New(w)
	switch {
	case flags.verbose:
		logger.SetLevel(log.DebugLevel)
	case flags.quiet:
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}
