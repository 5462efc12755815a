package paths_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/sawkit/pkg/errors"
	"github.com/arthur-debert/sawkit/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	p, err := paths.New(paths.Options{
		HomeDir:   "/home/analyst",
		ConfigDir: "/home/analyst/.config/sawkit",
		StateDir:  "/home/analyst/.local/state/sawkit",
	})
	require.NoError(t, err)

	assert.Equal(t, "/home/analyst/tools", p.InstallBase())
	assert.Equal(t, "/home/analyst/tools/chainsaw", p.InstallRoot())
	assert.Equal(t, "/home/analyst/tools/chainsaw/bin", p.BinDir())
	assert.Equal(t, "/home/analyst/tools/chainsaw/bin/chainsaw", p.BinaryPath())
	assert.Equal(t, "/home/analyst/tools/chainsaw/target/release/chainsaw", p.ArtifactPath())
	assert.Equal(t, "/home/analyst/tools/chainsaw/sigma", p.SigmaDir())
	assert.Equal(t, "/home/analyst/tools/chainsaw/sigma/rules", p.SigmaRulesDir())
	assert.Equal(t, "/home/analyst/.bash_aliases", p.AliasFile())
	assert.Equal(t, "/home/analyst/.bashrc", p.StartupFile())
	assert.Equal(t, "/home/analyst/.cargo/bin", p.CargoBinDir())
	assert.Equal(t, "/home/analyst/.config/sawkit/config.toml", p.ConfigFile())
	assert.Equal(t, "/home/analyst/.config/sawkit/install.toml", p.InstallRecordPath())
	assert.Equal(t, "/home/analyst/.local/state/sawkit/sawkit.log", p.LogFilePath())
}

func TestNew_Overrides(t *testing.T) {
	p, err := paths.New(paths.Options{
		HomeDir:     "/home/analyst",
		InstallRoot: "~/dfir/chainsaw",
		AliasFile:   "/etc/skel/aliases",
		StartupFile: "~/.zshrc",
		Artifact:    "target/x86_64-unknown-linux-musl/release/chainsaw",
	})
	require.NoError(t, err)

	assert.Equal(t, "/home/analyst/dfir/chainsaw", p.InstallRoot())
	assert.Equal(t, "/home/analyst/dfir", p.InstallBase())
	assert.Equal(t, "/etc/skel/aliases", p.AliasFile())
	assert.Equal(t, "/home/analyst/.zshrc", p.StartupFile())
	assert.Equal(t, "/home/analyst/dfir/chainsaw/target/x86_64-unknown-linux-musl/release/chainsaw", p.ArtifactPath())
}

func TestNew_RejectsDangerousRoots(t *testing.T) {
	for _, root := range []string{"/", "~", "/home/analyst/"} {
		t.Run(root, func(t *testing.T) {
			_, err := paths.New(paths.Options{HomeDir: "/home/analyst", InstallRoot: root})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
		})
	}
}

func TestNew_RejectsAbsoluteArtifact(t *testing.T) {
	_, err := paths.New(paths.Options{HomeDir: "/home/analyst", Artifact: "/usr/bin/chainsaw"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestNew_ConfigDirFromEnv(t *testing.T) {
	t.Setenv(paths.EnvConfigDir, "/custom/config")
	t.Setenv("XDG_STATE_HOME", "/custom/state")

	p, err := paths.New(paths.Options{HomeDir: "/home/analyst"})
	require.NoError(t, err)

	assert.Equal(t, "/custom/config", p.ConfigDir())
	assert.Equal(t, "/custom/state/sawkit", p.StateDir())
}

func TestBackupPath(t *testing.T) {
	ts := time.Date(2026, 10, 16, 9, 5, 7, 0, time.UTC)

	assert.Equal(t, "/home/a/.bash_aliases.backup.20261016_090507", paths.BackupPath("/home/a/.bash_aliases", ts, 0))
	assert.Equal(t, "/home/a/.bash_aliases.backup.20261016_090507.2", paths.BackupPath("/home/a/.bash_aliases", ts, 2))

	assert.True(t, paths.IsBackupOf("/home/a/.bash_aliases", paths.BackupPath("/home/a/.bash_aliases", ts, 1)))
	assert.False(t, paths.IsBackupOf("/home/a/.bash_aliases", "/home/a/.bashrc"))
}

func TestContractHome(t *testing.T) {
	assert.Equal(t, "~", paths.ContractHome("/home/a", "/home/a"))
	assert.Equal(t, "~/tools/chainsaw", paths.ContractHome("/home/a", "/home/a/tools/chainsaw"))
	assert.Equal(t, "/home/ab/x", paths.ContractHome("/home/a", "/home/ab/x"))
	assert.Equal(t, "/opt/x", paths.ContractHome("", "/opt/x"))
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, ".bashrc"), paths.ExpandHome("~/.bashrc"))
	assert.Equal(t, home, paths.ExpandHome("~"))
	assert.Equal(t, "~other/x", paths.ExpandHome("~other/x"))
	assert.Equal(t, "/abs", paths.ExpandHome("/abs"))
}

func TestValidatePath(t *testing.T) {
	assert.Error(t, paths.ValidatePath(""))
	assert.Error(t, paths.ValidatePath("a\x00b"))
	assert.NoError(t, paths.ValidatePath("/home/a/.bashrc"))
}
