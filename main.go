package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/dirpick/internal/app"
	"github.com/atomicstack/dirpick/internal/config"
	"github.com/atomicstack/dirpick/internal/logging"
	"github.com/atomicstack/dirpick/internal/logging/events"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var runApp = app.Run

// configError marks failures that exit with status 2.
type configError struct{ err error }

func (e configError) Error() string { return e.err.Error() }
func (e configError) Unwrap() error { return e.err }

func main() {
	os.Exit(execute(os.Args[1:], os.Environ(), os.Stdout, os.Stderr))
}

// execute runs the root command and maps its outcome to an exit status.
func execute(args, environ []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(args, environ, stdout)
	cmd.SetArgs(args)
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)
	err := cmd.Execute()
	if err == nil {
		return 0
	}
	var cfgErr configError
	if errors.As(err, &cfgErr) {
		fmt.Fprintf(stderr, "Configuration error: %v\n", cfgErr.err)
		return 2
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}

func newRootCmd(argv, environ []string, stdout io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dirpick",
		Short: "Pick a folder under your home directory and print its path",
		Long: `dirpick lists the folders directly under ~/Desktop (or --root) in a
full-screen picker. Press / to filter, enter to choose, q or esc to quit.
The chosen path is printed on stdout, e.g. cd "$(dirpick)".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return configError{fmt.Errorf("unexpected argument %q", args[0])}
			}
			return nil
		},
	}
	binding := config.Bind(cmd.Flags(), environ)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return configError{err}
	})
	cmd.RunE = func(_ *cobra.Command, _ []string) error {
		cfg, err := binding.Config(argv)
		if err == nil {
			err = config.Validate(cfg)
		}
		if err != nil {
			return configError{err}
		}
		return runPicker(cfg, stdout)
	}
	return cmd
}

func runPicker(cfg config.Config, stdout io.Writer) error {
	logging.Configure(logPath(cfg.Logging))
	logging.SetTraceEnabled(cfg.Logging.Trace)

	traceStartup(cfg)

	path, err := runApp(cfg.App)
	if err != nil {
		logging.Error(err)
		events.App.Error(err)
		return err
	}
	if path != "" {
		fmt.Fprintln(stdout, path)
	}
	return nil
}

// logPath is the explicit log file, or the cache default when only tracing
// was asked for. Otherwise nothing is logged.
func logPath(cfg config.Logging) string {
	if cfg.FilePath != "" {
		return cfg.FilePath
	}
	if cfg.Trace {
		return logging.DefaultPath()
	}
	return ""
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails reports which standard descriptors are terminals. The
// picker needs stdin and stderr; stdout is usually captured by the shell.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd < 0 || !term.IsTerminal(fd) {
			results = append(results, entry)
			continue
		}
		entry.IsTerminal = true
		width, height, err := term.GetSize(fd)
		if err != nil {
			entry.Error = err.Error()
		} else {
			entry.Width, entry.Height = width, height
			if detected == nil {
				detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
			}
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
