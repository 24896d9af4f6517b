package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/wrapperflow/internal/app"
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

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
//
// Values come from defaults, then the -config file, then explicitly set
// flags, each overriding the previous.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("wrapperflow", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
wrapperflow - Loads and checks a workflow description.

Usage:
  wrapperflow [options] [WORKFLOW_PATH]

Arguments:
  WORKFLOW_PATH
    Path to a workflow document (.xml or .hcl).

Options:
`)
		flagSet.PrintDefaults()
	}

	defaults := defaultSettings()
	workflowFlag := flagSet.String("workflow", "", "Path to the workflow document.")
	wFlag := flagSet.String("w", "", "Path to the workflow document (shorthand).")
	formatFlag := flagSet.String("format", defaults.format, "Document format. Options: 'auto', 'xml' or 'hcl'.")
	outputFlag := flagSet.String("output", defaults.output, "Summary format. Options: 'text' or 'json'.")
	logFormatFlag := flagSet.String("log-format", defaults.logFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.logLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	configFlag := flagSet.String("config", "", "Path to a TOML file with default settings.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	s := defaults
	if *configFlag != "" {
		if err := s.applyFile(*configFlag); err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		slog.Debug("Config file applied.", "path", *configFlag)
	}

	set := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["format"] {
		s.format = *formatFlag
	}
	if set["output"] {
		s.output = *outputFlag
	}
	if set["log-format"] {
		s.logFormat = *logFormatFlag
	}
	if set["log-level"] {
		s.logLevel = *logLevelFlag
	}

	if *workflowFlag != "" {
		s.workflow = *workflowFlag
	} else if *wFlag != "" {
		s.workflow = *wFlag
	} else if flagSet.NArg() > 0 {
		s.workflow = flagSet.Arg(0)
	}
	slog.Debug("Workflow path determined.", "path", s.workflow)

	if s.workflow == "" {
		slog.Debug("No workflow path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(s.logFormat)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(s.logLevel)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		WorkflowPath: s.workflow,
		Format:       strings.ToLower(s.format),
		Output:       strings.ToLower(s.output),
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
