package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"rutid/internal/batch"
	"rutid/internal/platform/config"
	"rutid/internal/platform/logger"
	"rutid/pkg/rut"
)

const usage = `usage: rutcheck [-o text|json] [-workers n] <command> [id ...]

commands:
  format        print each id in display form (12.345.678-5)
  canonicalize  print each id with separators removed (123456785)
  validate      report whether each id is valid; exits 1 if any is not
  schema        print the JSON Schema for a RUT

ids are read one per line from stdin when none are given.
`

// Exit codes.
const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
	exitError   = 3
)

// main wires configuration and signal handling; the work happens in run.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(run(ctx, config.FromEnv(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, cfg config.CLI, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rutcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	output := fs.String("o", cfg.Output, "output format: text or json")
	workers := fs.Int("workers", cfg.Workers, "concurrent workers for validation")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if !config.ValidOutput(*output) {
		fmt.Fprintf(stderr, "unknown output format %q\n", *output)
		return exitUsage
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return exitUsage
	}

	log, err := logger.New(cfg.LogLevel, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "logger: %v\n", err)
		return exitUsage
	}

	command, ids := fs.Arg(0), fs.Args()[1:]
	switch command {
	case "schema":
		b, err := rut.Schema()
		if err != nil {
			log.Error("schema generation failed", "error", err)
			return exitError
		}
		fmt.Fprintln(stdout, string(b))
		return exitOK
	case "format", "canonicalize", "validate":
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", command)
		fs.Usage()
		return exitUsage
	}

	if len(ids) == 0 {
		ids, err = readLines(stdin)
		if err != nil {
			log.Error("failed to read stdin", "error", err)
			return exitError
		}
	}

	results, err := batch.New(*workers, log, nil).Check(ctx, ids)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn("interrupted")
		} else {
			log.Error("check failed", "error", err)
		}
		return exitError
	}

	if err := write(stdout, *output, command, results); err != nil {
		log.Error("failed to write output", "error", err)
		return exitError
	}

	if command == "validate" && batch.Summarize(results).Invalid > 0 {
		return exitInvalid
	}
	return exitOK
}

// readLines returns the non-blank lines of r with surrounding whitespace
// trimmed. Lines of any length are returned whole.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func write(w io.Writer, output, command string, results []batch.Result) error {
	if output == config.OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	bw := bufio.NewWriter(w)
	for _, r := range results {
		switch command {
		case "format":
			fmt.Fprintln(bw, r.Formatted)
		case "canonicalize":
			fmt.Fprintln(bw, r.Canonical)
		case "validate":
			status := "invalid"
			if r.Valid {
				status = "valid"
			}
			fmt.Fprintf(bw, "%s\t%s\n", r.Input, status)
		}
	}
	return bw.Flush()
}
