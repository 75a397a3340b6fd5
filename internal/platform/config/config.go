package config

import (
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Output formats accepted by the CLI.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// CLI captures rutcheck configuration.
type CLI struct {
	LogLevel string
	Workers  int
	Output   string
}

// FromEnv builds a CLI config from environment variables so main stays lean.
// A .env file in the working directory is loaded first when present.
func FromEnv() CLI {
	_ = godotenv.Load()

	logLevel := strings.ToLower(strings.TrimSpace(os.Getenv("RUTCHECK_LOG_LEVEL")))
	if logLevel == "" {
		logLevel = "info"
	}

	workers := runtime.NumCPU()
	if v, err := strconv.Atoi(os.Getenv("RUTCHECK_WORKERS")); err == nil && v > 0 {
		workers = v
	}

	output := strings.ToLower(strings.TrimSpace(os.Getenv("RUTCHECK_OUTPUT")))
	if output == "" {
		output = OutputText
	}

	return CLI{
		LogLevel: logLevel,
		Workers:  workers,
		Output:   output,
	}
}

// ValidOutput reports whether format is a known output format.
func ValidOutput(format string) bool {
	return format == OutputText || format == OutputJSON
}
