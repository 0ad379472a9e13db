package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/geoknoesis/rdfio/internal/render"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config is the validated command configuration.
type Config struct {
	InputPath string // "-" reads standard input
	Format    string
	MaxRows   int
	Color     bool
	LogFormat string
	LogLevel  string
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("sparqlresults", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
sparqlresults - read a SPARQL Query Results XML document and print it.

Usage:
  sparqlresults [options] [FILE]

Arguments:
  FILE
    Results document to read. Omitted or "-" reads standard input.

Options:
`)
		flagSet.PrintDefaults()
	}

	formatFlag := flagSet.String("format", render.FormatTable, "Output format: 'table', 'terms', 'xml', or an RDF syntax (ntriples, turtle, rdfxml, nquads, trig).")
	maxRowsFlag := flagSet.Int("max-rows", 0, "Fail when the document has more rows than this. 0 is unlimited.")
	colorFlag := flagSet.Bool("color", false, "Colorize terms in table and terms output.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "at most one input file may be given"}
	}

	path := "-"
	if flagSet.NArg() == 1 {
		path = flagSet.Arg(0)
	}

	format := strings.ToLower(strings.TrimSpace(*formatFlag))
	if !render.IsFormat(format) {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid format %q", *formatFlag)}
	}
	if *maxRowsFlag < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid max-rows: must not be negative"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	return &Config{
		InputPath: path,
		Format:    format,
		MaxRows:   *maxRowsFlag,
		Color:     *colorFlag,
		LogFormat: logFormat,
		LogLevel:  logLevel,
	}, false, nil
}

// NewLogger creates a logger for the configured level and format. It does not
// set the global logger.
func NewLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}
	return slog.New(handler)
}
