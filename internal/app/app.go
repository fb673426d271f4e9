package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/dirpick/internal/dirs"
	"github.com/atomicstack/dirpick/internal/logging/events"
	"github.com/atomicstack/dirpick/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
)

// Config describes user-provided application options.
type Config struct {
	Home       string
	RootName   string
	Width      int
	Height     int
	ShowFooter bool
}

var fsys afero.Fs = afero.NewOsFs()

// Prepare resolves the root folder and lists its subdirectories, returning a
// model ready to run.
func Prepare(fs afero.Fs, cfg Config) (*ui.Model, error) {
	root, err := dirs.ResolveRoot(fs, cfg.Home, cfg.RootName)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}
	entries, err := dirs.List(fs, root)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	events.App.Listed(root, len(entries))
	return ui.NewModel(root, entries, cfg.Width, cfg.Height, cfg.ShowFooter), nil
}

// Run bootstraps and executes the Bubble Tea program. The picker is drawn on
// stderr so stdout carries only the chosen path.
func Run(cfg Config) (string, error) {
	model, err := Prepare(fsys, cfg)
	if err != nil {
		return "", err
	}
	return run(model, nil, os.Stderr)
}

func run(model *ui.Model, input io.Reader, output io.Writer, opts ...tea.ProgramOption) (string, error) {
	options := []tea.ProgramOption{tea.WithOutput(output)}
	if input != nil {
		options = append(options, tea.WithInput(input))
	} else {
		options = append(options, tea.WithAltScreen())
	}
	options = append(options, opts...)
	program := tea.NewProgram(model, options...)
	_, err := program.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return "", err
	}
	path, ok := model.Result()
	events.App.Exit(path, ok)
	if !ok {
		return "", nil
	}
	return path, nil
}
