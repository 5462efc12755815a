// cmd/sawkit/commands_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Real filesystem under t.TempDir
// PURPOSE: Drive the cobra tree end to end for commands that need no toolchain

package sawkit

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/sawkit/pkg/chainsaw"
	"github.com/arthur-debert/sawkit/pkg/errors"
	"github.com/arthur-debert/sawkit/pkg/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupHome points HOME and every sawkit directory at a fresh temp dir
func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SAWKIT_CONFIG_DIR", filepath.Join(home, ".config", "sawkit"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, ".local", "state"))
	t.Setenv("NO_COLOR", "1")

	for _, name := range []string{"SAWKIT_ROOT", "SAWKIT_INSTALL_ROOT", "SAWKIT_ALIAS_FILE", "SAWKIT_STARTUP_FILE", "SAWKIT_SHELL_ALIAS_FILE", "SAWKIT_SHELL_STARTUP_FILE"} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}

	orig := executable
	executable = func() (string, error) { return "/usr/local/bin/sawkit", nil }
	t.Cleanup(func() { executable = orig })

	return home
}

// execute runs the root command with args and returns stdout
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(""))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeRule(t *testing.T, home, rel, content string) {
	t.Helper()
	path := filepath.Join(home, "tools", "chainsaw", "sigma", "rules", rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestVersionCmd(t *testing.T) {
	setupHome(t)

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "sawkit version dev")
	assert.Contains(t, out, "commit: unknown")
}

func TestRootWithoutCommand(t *testing.T) {
	setupHome(t)

	_, err := execute(t)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestRulesCommands(t *testing.T) {
	home := setupHome(t)
	writeRule(t, home, "windows/proc_creation_win_whoami.yml", "title: Whoami Execution\nlevel: low\n")
	writeRule(t, home, "windows/proc_creation_win_mimikatz.yml", "title: Mimikatz\ndetection:\n  keywords: [sekurlsa]\nlevel: high\n")
	writeRule(t, home, "linux/lnx_shell_susp.yml", "title: Suspicious Shell\nlevel: medium\n")
	rulesDir := filepath.Join(home, "tools", "chainsaw", "sigma", "rules")

	t.Run("path", func(t *testing.T) {
		out, err := execute(t, "rules", "path", "-o", "text")
		require.NoError(t, err)
		assert.Equal(t, rulesDir+"\n", out)
	})

	t.Run("count", func(t *testing.T) {
		out, err := execute(t, "rules", "count", "-o", "text")
		require.NoError(t, err)
		assert.Equal(t, "3\n", out)
	})

	t.Run("list_json", func(t *testing.T) {
		out, err := execute(t, "rules", "list", "-o", "json")
		require.NoError(t, err)

		var got struct {
			Root       string   `json:"root"`
			Categories []string `json:"categories"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, rulesDir, got.Root)
		assert.Equal(t, []string{"linux", "windows"}, got.Categories)
	})

	t.Run("search_case_insensitive", func(t *testing.T) {
		out, err := execute(t, "rules", "search", "SEKURLSA", "-o", "text")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("windows", "proc_creation_win_mimikatz.yml")+"\n", out)
	})

	t.Run("search_needs_a_term", func(t *testing.T) {
		_, err := execute(t, "rules", "search")
		require.Error(t, err)
	})
}

func TestHunt_TooFewArguments(t *testing.T) {
	setupHome(t)

	_, err := execute(t, "hunt", "Security.evtx")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Contains(t, err.Error(), chainsaw.HuntUsage)
}

func TestRun_MissingBinary(t *testing.T) {
	setupHome(t)

	_, err := execute(t, "run", "--", "--version")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrBinaryMissing))
}

func TestShellCommands(t *testing.T) {
	home := setupHome(t)
	aliasFile := filepath.Join(home, ".bash_aliases")
	startupFile := filepath.Join(home, ".bashrc")

	out, err := execute(t, "shell", "snippet")
	require.NoError(t, err)
	assert.Equal(t, shell.SourceSnippet(aliasFile), out)

	_, err = execute(t, "shell", "install", "-o", "text")
	require.NoError(t, err)

	aliases, err := os.ReadFile(aliasFile)
	require.NoError(t, err)
	assert.Contains(t, string(aliases), shell.BeginMarker)
	assert.Contains(t, string(aliases), "'/usr/local/bin/sawkit' hunt \"$@\"")

	startup, err := os.ReadFile(startupFile)
	require.NoError(t, err)
	assert.Contains(t, string(startup), shell.SourceSnippet(aliasFile))

	_, err = execute(t, "shell", "remove", "-o", "text")
	require.NoError(t, err)

	aliases, err = os.ReadFile(aliasFile)
	require.NoError(t, err)
	assert.NotContains(t, string(aliases), shell.BeginMarker)
}

func TestShellSnippet_Block(t *testing.T) {
	setupHome(t)

	out, err := execute(t, "shell", "snippet", "--block")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, shell.BeginMarker+"\n"))
	assert.True(t, strings.HasSuffix(out, shell.EndMarker+"\n"))
}

func TestStatus_NothingInstalled(t *testing.T) {
	home := setupHome(t)

	out, err := execute(t, "status", "-o", "json")
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, filepath.Join(home, "tools", "chainsaw"), got["installRoot"])
	assert.Equal(t, false, got["installed"])
	assert.Equal(t, false, got["shellInstalled"])
}

func TestStatus_UnknownOutputFormat(t *testing.T) {
	setupHome(t)

	_, err := execute(t, "status", "-o", "xml")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestUninstall_NothingInstalled(t *testing.T) {
	setupHome(t)

	out, err := execute(t, "uninstall", "-o", "text")
	require.NoError(t, err)
	assert.Equal(t, "Nothing to uninstall\n", out)
}

func TestUninstall_Declined(t *testing.T) {
	home := setupHome(t)
	writeRule(t, home, "windows/a.yml", "title: A\n")

	// Empty stdin answers with the default, which is no
	_, err := execute(t, "uninstall", "-o", "text")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCancelled))
	assert.DirExists(t, filepath.Join(home, "tools", "chainsaw"))
}

func TestUninstall_Yes(t *testing.T) {
	home := setupHome(t)
	writeRule(t, home, "windows/a.yml", "title: A\n")

	_, err := execute(t, "uninstall", "--yes", "-o", "text")
	require.NoError(t, err)
	assert.NoDirExists(t, filepath.Join(home, "tools", "chainsaw"))
}

func TestConfigCommands(t *testing.T) {
	home := setupHome(t)

	out, err := execute(t, "config", "show", "-o", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "[install]")
	assert.Contains(t, out, "~/tools/chainsaw")

	out, err = execute(t, "config", "init", "-o", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "[install]")
	assert.Contains(t, out, `# root = "~/tools/chainsaw"`)
	assert.NoFileExists(t, filepath.Join(home, ".config", "sawkit", "config.toml"))

	_, err = execute(t, "config", "init", "--write", "-o", "text")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(home, ".config", "sawkit", "config.toml"))
}

func TestConfigFile_ChangesInstallRoot(t *testing.T) {
	home := setupHome(t)
	cfgFile := filepath.Join(home, "custom.toml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("[install]\nroot = \"~/forensics/chainsaw\"\n"), 0644))
	rulesDir := filepath.Join(home, "forensics", "chainsaw", "sigma", "rules")
	require.NoError(t, os.MkdirAll(rulesDir, 0755))

	out, err := execute(t, "rules", "path", "--config", cfgFile, "-o", "text")
	require.NoError(t, err)
	assert.Equal(t, rulesDir+"\n", out)
}

func TestGuideAndHelpTopics(t *testing.T) {
	setupHome(t)

	out, err := execute(t, "guide")
	require.NoError(t, err)
	assert.Contains(t, out, "sawkit installs")

	out, err = execute(t, "help", "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "Available help topics:")
	assert.Contains(t, out, "hunting")
	assert.Contains(t, out, "--dry-run")

	_, err = execute(t, "guide", "no-such-topic")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestCompletionCmd(t *testing.T) {
	setupHome(t)

	out, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "sawkit")

	_, err = execute(t, "completion", "tcsh")
	require.Error(t, err)
}

func TestPassthroughArgs(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"empty", nil, nil},
		{"leading_separator", []string{"--", "--version"}, []string{"--version"}},
		{"no_separator", []string{"hunt", "-s", "rules"}, []string{"hunt", "-s", "rules"}},
		{"separator_later", []string{"dump", "--", "x"}, []string{"dump", "--", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, passthroughArgs(tt.in))
		})
	}
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantOut  string
	}{
		{"nil", nil, 0, ""},
		{"cancelled", errors.New(errors.ErrCancelled, "reinstall declined"), 0, ""},
		{"plain", stderrors.New("boom"), 1, "Error: boom\n"},
		{"build", errors.New(errors.ErrBuild, "cargo build failed"), 1, "Error: cargo build failed\n"},
		{"child_status", errors.New(errors.ErrCommandExecute, "chainsaw failed").WithDetail(errors.DetailExitCode, 3), 3, "Error: chainsaw failed\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			assert.Equal(t, tt.wantCode, HandleError(nil, tt.err, &buf))
			assert.Equal(t, tt.wantOut, buf.String())
		})
	}
}
