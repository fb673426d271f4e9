package config

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/atomicstack/dirpick/internal/app"
	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

// Logging selects where errors and trace entries are written.
type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envHome       = "HOME"
	envRoot       = "DIRPICK_ROOT"
	envWidth      = "DIRPICK_WIDTH"
	envHeight     = "DIRPICK_HEIGHT"
	envShowFooter = "DIRPICK_FOOTER"
	envTrace      = "DIRPICK_TRACE"
	envLogFile    = "DIRPICK_LOG_FILE"

	defaultRoot = "Desktop"
)

// Binding holds flag values registered on a flag set.
type Binding struct {
	env     map[string]string
	root    *string
	width   *int
	height  *int
	footer  *bool
	trace   *bool
	logFile *string
}

// Bind registers the picker flags on fs, taking defaults from environ.
func Bind(fs *pflag.FlagSet, environ []string) *Binding {
	env := parseEnv(environ)
	return &Binding{
		env:     env,
		root:    fs.String("root", envOrDefault(env, envRoot, defaultRoot), "folder under $HOME to list (e.g. Desktop, Projects)"),
		width:   fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)"),
		height:  fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)"),
		footer:  fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)"),
		trace:   fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging"),
		logFile: fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file"),
	}
}

// Config assembles the configuration once the flag set has been parsed.
func (b *Binding) Config(args []string) (Config, error) {
	if *b.width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *b.width)
	}
	if *b.height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *b.height)
	}
	cfg := Config{
		App: app.Config{
			Home:       envOrDefault(b.env, envHome, ""),
			RootName:   *b.root,
			Width:      *b.width,
			Height:     *b.height,
			ShowFooter: *b.footer,
		},
		Logging: Logging{
			FilePath: *b.logFile,
			Trace:    *b.trace,
		},
		Flags: map[string]string{
			"root":    *b.root,
			"width":   strconv.Itoa(*b.width),
			"height":  strconv.Itoa(*b.height),
			"footer":  strconv.FormatBool(*b.footer),
			"trace":   strconv.FormatBool(*b.trace),
			"logFile": *b.logFile,
		},
		Args: append([]string(nil), args...),
	}
	return cfg, nil
}

// LoadArgs parses args on a fresh flag set with defaults from environ.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("dirpick", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	binding := Bind(fs, environ)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	return binding.Config(args)
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		values[key] = value
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate rejects root names that would list something other than a folder
// directly under home.
func Validate(cfg Config) error {
	root := cfg.App.RootName
	switch {
	case strings.TrimSpace(root) == "":
		return errors.New("root must not be empty")
	case filepath.IsAbs(root):
		return fmt.Errorf("root must be relative to home (got %q)", root)
	}
	for _, part := range strings.Split(filepath.ToSlash(root), "/") {
		if part == ".." {
			return fmt.Errorf("root must stay inside home (got %q)", root)
		}
	}
	return nil
}
