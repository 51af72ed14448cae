package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// errUsage marks command-line misuse (bad flags, missing input).
var errUsage = errors.New("usage error")

// cliFlags holds parsed command-line options.
type cliFlags struct {
	stylesPath string // positional argument; REPORTSTYLE_STYLES when empty
	mergePath  string
	scheme     string
	fallback   string
	format     string
	list       bool
	builtin    bool
	noColor    bool
	quiet      bool
	verbose    bool
	version    bool
}

// parseFlags parses args (without the program name).
// Returns flag.ErrHelp when --help is requested; the caller treats that
// as a successful exit after pflag prints the usage text.
func parseFlags(args []string, stderr io.Writer) (*cliFlags, error) {
	flags := &cliFlags{}

	fs := flag.NewFlagSet("reportstyle", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr, fs) }

	fs.StringVar(&flags.mergePath, "merge", "", "override styles file layered on top of the base document")
	fs.StringVarP(&flags.scheme, "scheme", "s", "", "print the named color scheme")
	fs.StringVar(&flags.fallback, "fallback", "default", "fallback scheme when --scheme is absent (empty disables)")
	fs.StringVarP(&flags.format, "format", "f", "", "print the defaults block for a format (chart, excel, powerpoint, pdf)")
	fs.BoolVarP(&flags.list, "list-schemes", "l", false, "list scheme names in the document")
	fs.BoolVar(&flags.builtin, "builtin", false, "use the embedded default document as the base")
	fs.BoolVar(&flags.noColor, "no-color", false, "disable color swatches in scheme output")
	fs.BoolVarP(&flags.quiet, "quiet", "q", false, "suppress non-error output")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, flag.ErrHelp
		}
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}

	switch fs.NArg() {
	case 0:
		// Path may come from REPORTSTYLE_STYLES or --builtin.
	case 1:
		flags.stylesPath = fs.Arg(0)
	default:
		return nil, fmt.Errorf("%w: expected at most one styles file, got %d", errUsage, fs.NArg())
	}

	return flags, nil
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Usage: reportstyle [flags] [styles-file]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Validate and inspect report styling documents (JSON or YAML).")
	fmt.Fprintln(w, "With no action flag, the document is validated and summarized.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "The styles file may also be named via REPORTSTYLE_STYLES, and a")
	fmt.Fprintln(w, "default scheme via REPORTSTYLE_SCHEME.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
}
