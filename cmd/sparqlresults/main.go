package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/geoknoesis/rdfio/internal/cli"
	"github.com/geoknoesis/rdfio/internal/render"
	"github.com/geoknoesis/rdfio/results"
)

// main is the entrypoint for the sparqlresults command.
func main() {
	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the command so it can be tested without a process.
func run(inR io.Reader, outW, errW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}
	logger := cli.NewLogger(cfg.LogLevel, cfg.LogFormat, errW)

	input := inR
	if cfg.InputPath != "-" {
		f, err := os.Open(cfg.InputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		input = f
	}

	r, err := render.New(outW, cfg.Format, cfg.Color)
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}
	res, err := results.Read(input, results.WithLogger(logger), results.WithMaxRows(cfg.MaxRows))
	if err != nil {
		return fmt.Errorf("reading %s: %w", cfg.InputPath, err)
	}
	n, err := r.Result(res)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", cfg.InputPath, err)
	}
	logger.Info("rendered results", slog.String("input", cfg.InputPath), slog.String("format", cfg.Format), slog.Int("rows", n))
	return nil
}
