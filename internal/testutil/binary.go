// Package testutil builds the dirpick binary and runs it as a subprocess so
// tests can check what a shell caller would see.
package testutil

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"
)

// Result captures a finished invocation.
type Result struct {
	Stdout string
	Stderr string
	Code   int
}

// BuildBinary compiles the module root into a temporary directory.
func BuildBinary(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping: binary tests disabled in short mode")
	}
	gobin, err := exec.LookPath("go")
	if err != nil {
		t.Skip("skipping: go toolchain not available")
	}
	tdir := t.TempDir()
	bin := filepath.Join(tdir, "dirpick")
	cmd := exec.Command(gobin, "build", "-o", bin, ".")
	cmd.Dir = repoRoot(t)
	cmd.Env = append(os.Environ(), "GOCACHE="+filepath.Join(tdir, ".gocache"))
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build binary: %v\n%s", err, out)
	}
	return bin
}

// Run executes bin with exactly env as its environment.
func Run(t *testing.T, bin string, env []string, args ...string) Result {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Env = env
	cmd.Dir = t.TempDir()
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		res.Code = exitErr.ExitCode()
	default:
		t.Fatalf("failed to run %s: %v", bin, err)
	}
	if ctx.Err() != nil {
		t.Fatalf("%s timed out", bin)
	}
	return res
}

// Home creates a temporary home directory with the given folders under root.
func Home(t *testing.T, root string, folders ...string) string {
	t.Helper()
	home := t.TempDir()
	if root == "" {
		return home
	}
	if err := os.MkdirAll(filepath.Join(home, root), 0o755); err != nil {
		t.Fatalf("failed to create root: %v", err)
	}
	for _, name := range folders {
		if err := os.MkdirAll(filepath.Join(home, root, name), 0o755); err != nil {
			t.Fatalf("failed to create folder %s: %v", name, err)
		}
	}
	return home
}

func repoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd failed: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
