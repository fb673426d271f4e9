package dirs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memFs(t *testing.T, dirs ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, dir := range dirs {
		require.NoError(t, fs.MkdirAll(dir, 0o755))
	}
	return fs
}

func TestResolveRootJoinsHome(t *testing.T) {
	fs := memFs(t, "/home/tester/Desktop")

	root, err := ResolveRoot(fs, "/home/tester", "Desktop")
	require.NoError(t, err)
	assert.Equal(t, "/home/tester/Desktop", root)
}

func TestResolveRootRequiresHome(t *testing.T) {
	_, err := ResolveRoot(memFs(t), "", "Desktop")
	assert.ErrorIs(t, err, ErrHomeUnset)
}

func TestResolveRootMissingDirectory(t *testing.T) {
	fs := memFs(t, "/home/tester")

	_, err := ResolveRoot(fs, "/home/tester", "Projects")
	require.ErrorIs(t, err, ErrRootMissing)
	assert.Contains(t, err.Error(), "/home/tester/Projects")
}

func TestResolveRootRejectsFile(t *testing.T) {
	fs := memFs(t, "/home/tester")
	require.NoError(t, afero.WriteFile(fs, "/home/tester/Desktop", []byte("x"), 0o644))

	_, err := ResolveRoot(fs, "/home/tester", "Desktop")
	assert.ErrorIs(t, err, ErrRootMissing)
}

func TestListSortsAndSkipsHiddenAndFiles(t *testing.T) {
	root := "/home/tester/Desktop"
	fs := memFs(t,
		root+"/gamma",
		root+"/Alpha",
		root+"/beta",
		root+"/.cache",
		root+"/alpha/nested",
	)
	require.NoError(t, afero.WriteFile(fs, root+"/notes.txt", []byte("hi"), 0o644))

	names, err := List(fs, root)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "alpha", "beta", "gamma"}, names)
}

func TestListEmptyRoot(t *testing.T) {
	root := "/home/tester/Desktop"
	fs := memFs(t, root+"/.hidden")
	require.NoError(t, afero.WriteFile(fs, root+"/file", nil, 0o644))

	names, err := List(fs, root)
	require.ErrorIs(t, err, ErrNoFolders)
	assert.Nil(t, names)
}

func TestListMissingRoot(t *testing.T) {
	_, err := List(memFs(t), "/nowhere")
	assert.Error(t, err)
}

func TestListFollowsSymlinkedFolders(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "Desktop")
	target := filepath.Join(base, "elsewhere")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "real"), 0o755))
	require.NoError(t, os.MkdirAll(target, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "file"), nil, 0o644))
	if err := os.Symlink(target, filepath.Join(root, "linked")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(base, "file"), filepath.Join(root, "filelink")))
	require.NoError(t, os.Symlink(filepath.Join(base, "missing"), filepath.Join(root, "dangling")))

	names, err := List(afero.NewOsFs(), root)
	require.NoError(t, err)
	assert.Equal(t, []string{"linked", "real"}, names)
}
