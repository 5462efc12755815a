package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/sawkit/pkg/filesystem"
	"github.com/arthur-debert/sawkit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func implementations(t *testing.T) map[string]struct {
	fs   types.FS
	root string
} {
	return map[string]struct {
		fs   types.FS
		root string
	}{
		"os":     {fs: filesystem.NewOS(), root: t.TempDir()},
		"memory": {fs: filesystem.NewMemoryFS(), root: "/virtual"},
	}
}

func TestCopyFile(t *testing.T) {
	for name, impl := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			src := filepath.Join(impl.root, "target", "release", "chainsaw")
			dst := filepath.Join(impl.root, "bin", "chainsaw")

			require.NoError(t, impl.fs.MkdirAll(filepath.Dir(src), 0755))
			require.NoError(t, impl.fs.WriteFile(src, []byte("binary"), 0644))

			require.NoError(t, filesystem.CopyFile(impl.fs, src, dst, 0755))

			data, err := impl.fs.ReadFile(dst)
			require.NoError(t, err)
			assert.Equal(t, "binary", string(data))

			info, err := impl.fs.Stat(dst)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
		})
	}
}

func TestCopyFile_MissingSource(t *testing.T) {
	fs := filesystem.NewMemoryFS()
	err := filesystem.CopyFile(fs, "/nope", "/bin/chainsaw", 0755)
	assert.Error(t, err)
	assert.False(t, filesystem.Exists(fs, "/bin/chainsaw"))
}

func TestExistenceHelpers(t *testing.T) {
	for name, impl := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			dir := filepath.Join(impl.root, "sigma")
			file := filepath.Join(dir, "README.md")
			require.NoError(t, impl.fs.MkdirAll(dir, 0755))
			require.NoError(t, impl.fs.WriteFile(file, []byte("x"), 0644))

			assert.True(t, filesystem.Exists(impl.fs, dir))
			assert.True(t, filesystem.IsDir(impl.fs, dir))
			assert.False(t, filesystem.IsFile(impl.fs, dir))
			assert.True(t, filesystem.IsFile(impl.fs, file))
			assert.False(t, filesystem.Exists(impl.fs, filepath.Join(impl.root, "missing")))
		})
	}
}

func TestWalk(t *testing.T) {
	fs := filesystem.NewMemoryFS()
	files := []string{
		"/rules/windows/process_creation/proc_a.yml",
		"/rules/windows/builtin/b.yml",
		"/rules/linux/c.yml",
		"/rules/.github/workflow.yml",
		"/rules/linux/.hidden.yml",
	}
	for _, f := range files {
		require.NoError(t, fs.MkdirAll(filepath.Dir(f), 0755))
		require.NoError(t, fs.WriteFile(f, []byte("title: x"), 0644))
	}

	var seen []string
	err := filesystem.Walk(fs, "/rules", func(rel string) error {
		seen = append(seen, rel)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"linux/c.yml",
		"windows/builtin/b.yml",
		"windows/process_creation/proc_a.yml",
	}, seen)
}
