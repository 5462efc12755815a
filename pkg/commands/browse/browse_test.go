package browse_test

import (
	"testing"

	"github.com/arthur-debert/sawkit/pkg/commands/browse"
	"github.com/arthur-debert/sawkit/pkg/errors"
	"github.com/arthur-debert/sawkit/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const whoamiRule = `title: Whoami Execution
id: e28a5a99-da44-436d-b7a0-2afc20a5f413
status: test
description: Detects the execution of whoami
author: Florian Roth
date: 2018-08-13
level: high
tags:
    - attack.discovery
    - attack.t1033
logsource:
    category: process_creation
    product: windows
detection:
    selection:
        Image|endswith: '\whoami.exe'
    condition: selection
`

func setup(t *testing.T) browse.BrowseOptions {
	env := testutil.NewEnvironment(t)
	env.InstallRules(t, map[string]string{
		"windows/process_creation/proc_creation_win_whoami.yml": whoamiRule,
		"windows/builtin/win_security_a.yml":                    "title: Security A\nlevel: low\n",
		"linux/lnx_b.yml":                                       "title: Linux B\nlevel: high\n",
		".github/workflow.yml":                                  "title: not a category\n",
	})
	return browse.BrowseOptions{FS: env.FS, Paths: env.Paths, Config: env.Config}
}

func TestPath(t *testing.T) {
	result, err := browse.Path(setup(t))
	require.NoError(t, err)
	assert.Equal(t, "/home/analyst/tools/chainsaw/sigma/rules", result.RenderText())

	env := testutil.NewEnvironment(t)
	_, err = browse.Path(browse.BrowseOptions{FS: env.FS, Paths: env.Paths, Config: env.Config})
	assert.True(t, errors.IsErrorCode(err, errors.ErrRuleNotFound))
}

func TestList(t *testing.T) {
	result, err := browse.List(setup(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"linux", "windows"}, result.Categories)
	assert.Equal(t, "linux\nwindows", result.RenderText())
}

func TestSearch(t *testing.T) {
	opts := setup(t)

	result, err := browse.Search(opts, "WHOAMI")
	require.NoError(t, err)
	assert.Equal(t, []string{"windows/process_creation/proc_creation_win_whoami.yml"}, result.Matches)

	none, err := browse.Search(opts, "mimikatz")
	require.NoError(t, err)
	assert.Empty(t, none.Matches)
	assert.NotNil(t, none.Matches)

	_, err = browse.Search(opts, "  ")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestCount(t *testing.T) {
	result, err := browse.Count(setup(t))
	require.NoError(t, err)
	assert.Equal(t, 3, result.Count)
	assert.Equal(t, "3", result.RenderText())
}

func TestShow(t *testing.T) {
	opts := setup(t)

	for _, path := range []string{
		"windows/process_creation/proc_creation_win_whoami.yml",
		"sigma/windows/process_creation/proc_creation_win_whoami.yml",
	} {
		result, err := browse.Show(opts, path)
		require.NoError(t, err, path)
		assert.Equal(t, "Whoami Execution", result.Title)

		text := result.RenderText()
		assert.Contains(t, text, "Level      high\n")
		assert.Contains(t, text, "Logsource  windows / process_creation\n")
		assert.Contains(t, text, "Tags       attack.discovery, attack.t1033\n")
		assert.Contains(t, text, "Condition  selection\n")
	}

	_, err := browse.Show(opts, "windows/missing.yml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrRuleNotFound))
}

func TestStats(t *testing.T) {
	result, err := browse.Stats(setup(t), true)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Total)
	require.Len(t, result.Categories, 2)
	assert.Equal(t, "linux", result.Categories[0].Name)
	assert.Equal(t, 2, result.Categories[1].Rules)
	assert.Equal(t, map[string]int{"high": 1, "low": 1}, result.Categories[1].Levels)

	table := result.RenderText()
	assert.Contains(t, table, "CATEGORY")
	assert.Contains(t, table, "HIGH")
	assert.Contains(t, table, "windows")
	assert.Contains(t, table, "TOTAL")
	assert.NotContains(t, table, "CRITICAL")
}
