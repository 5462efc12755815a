package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/sawkit/pkg/config"
	"github.com/arthur-debert/sawkit/pkg/filesystem"
	"github.com/arthur-debert/sawkit/pkg/paths"
	"github.com/arthur-debert/sawkit/pkg/types"
	"github.com/stretchr/testify/require"
)

// DefaultHome is the fake home directory used by NewEnvironment
const DefaultHome = "/home/analyst"

// Environment bundles what most sawkit components need in a test
type Environment struct {
	FS     types.FS
	Paths  paths.Paths
	Config *config.Config
	Home   string
}

// NewEnvironment creates an in-memory home directory with default
// configuration. The home directory itself exists; nothing else does.
func NewEnvironment(t *testing.T) *Environment {
	t.Helper()

	cfg := config.Default()
	opts := cfg.PathOptions(DefaultHome)
	opts.ConfigDir = filepath.Join(DefaultHome, ".config", paths.AppDirName)
	opts.StateDir = filepath.Join(DefaultHome, ".local", "state", paths.AppDirName)

	p, err := paths.New(opts)
	require.NoError(t, err)

	fs := filesystem.NewMemoryFS()
	require.NoError(t, fs.MkdirAll(DefaultHome, 0755))

	return &Environment{FS: fs, Paths: p, Config: cfg, Home: DefaultHome}
}

// WriteFile creates path with content, parents included
func (e *Environment) WriteFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, e.FS.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, e.FS.WriteFile(path, []byte(content), 0644))
}

// ReadFile returns the content of path, failing the test when missing
func (e *Environment) ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := e.FS.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// InstallRules lays out a rules tree under SIGMA_RULES. Keys are paths
// relative to the rules directory.
func (e *Environment) InstallRules(t *testing.T, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		e.WriteFile(t, filepath.Join(e.Paths.SigmaRulesDir(), rel), content)
	}
}

// InstallBinary places an executable chainsaw in the bin directory
func (e *Environment) InstallBinary(t *testing.T) {
	t.Helper()
	e.WriteFile(t, e.Paths.BinaryPath(), "#!/bin/sh\n")
	require.NoError(t, e.FS.Chmod(e.Paths.BinaryPath(), 0755))
}

// Snapshot returns every file below root with its content, for comparing
// filesystem state before and after an operation
func (e *Environment) Snapshot(t *testing.T, root string) map[string]string {
	t.Helper()
	snapshot := make(map[string]string)
	if !filesystem.IsDir(e.FS, root) {
		return snapshot
	}
	require.NoError(t, snapshotDir(e.FS, root, snapshot))
	return snapshot
}

func snapshotDir(fs types.FS, dir string, out map[string]string) error {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			out[path+"/"] = ""
			if err := snapshotDir(fs, path, out); err != nil {
				return err
			}
			continue
		}
		data, err := fs.ReadFile(path)
		if err != nil {
			return err
		}
		out[path] = string(data)
	}
	return nil
}
