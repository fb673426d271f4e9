// Package dirs resolves the picker root and lists the folders inside it.
package dirs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
)

var (
	ErrHomeUnset   = errors.New("HOME environment variable is not set")
	ErrRootMissing = errors.New("root directory not found")
	ErrNoFolders   = errors.New("no folders found")
)

// ResolveRoot joins home with name and checks that the result is a directory.
func ResolveRoot(fs afero.Fs, home, name string) (string, error) {
	if strings.TrimSpace(home) == "" {
		return "", ErrHomeUnset
	}
	root := filepath.Join(home, name)
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	ok, err := afero.IsDir(fs, root)
	if err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("stat %s: %w", root, err)
	}
	if !ok {
		return "", fmt.Errorf("%w at %s", ErrRootMissing, root)
	}
	return root, nil
}

// List returns the visible immediate subdirectories of root, sorted by name.
func List(fs afero.Fs, root string) ([]string, error) {
	infos, err := afero.ReadDir(fs, root)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", root, err)
	}
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		name := info.Name()
		if hidden(name) {
			continue
		}
		if !isDir(fs, root, info) {
			continue
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoFolders, root)
	}
	slices.Sort(names)
	return slices.Compact(names), nil
}

func hidden(name string) bool {
	return name == "" || strings.HasPrefix(name, ".")
}

// isDir follows symlinks so linked project folders are listed too.
func isDir(fs afero.Fs, root string, info os.FileInfo) bool {
	if info.Mode()&os.ModeSymlink == 0 {
		return info.IsDir()
	}
	target, err := fs.Stat(filepath.Join(root, info.Name()))
	if err != nil {
		return false
	}
	return target.IsDir()
}
