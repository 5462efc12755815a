// pkg/rules/store_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: In-memory filesystem
// PURPOSE: Test listing, searching, counting and parsing Sigma rules

package rules_test

import (
	"testing"

	"github.com/arthur-debert/sawkit/pkg/errors"
	"github.com/arthur-debert/sawkit/pkg/rules"
	"github.com/arthur-debert/sawkit/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mimikatzRule = `title: Mimikatz Command Line
id: a642964e-bead-4bed-8910-1bb4d63e3b4d
status: test
description: Detects well-known Mimikatz command line arguments
author: Teymur Kheirkhabarov
date: 2019-10-22
level: high
tags:
    - attack.credential-access
    - attack.t1003.001
logsource:
    category: process_creation
    product: windows
detection:
    selection:
        CommandLine|contains:
            - 'sekurlsa::'
            - 'lsadump::'
    condition: selection
falsepositives:
    - Unlikely
`

const sshRule = `title: SSH Brute Force
id: 5a1d5e0c-0d5c-4a1b-9a33-3c2b2cf0a001
level: medium
logsource:
    product: linux
    service: sshd
detection:
    keywords:
        - 'Failed password'
    condition: keywords
`

func newStore(t *testing.T) (*rules.Store, *testutil.Environment) {
	t.Helper()
	env := testutil.NewEnvironment(t)
	env.InstallRules(t, map[string]string{
		"windows/process_creation/proc_creation_win_mimikatz.yml": mimikatzRule,
		"windows/builtin/security/win_susp_logon.yml":             "title: Suspicious Logon\nlevel: low\n",
		"linux/auditd/lnx_ssh_bruteforce.yml":                     sshRule,
		"cloud/README.md":                                         "not a rule, mentions MIMIKATZ\n",
		".github/workflow.yml":                                    "title: ci\n",
		"top_level.yml":                                           "title: Top\n",
	})
	return rules.NewStore(env.FS, env.Paths.SigmaRulesDir(), []string{".yml"}), env
}

func TestCategories(t *testing.T) {
	store, _ := newStore(t)

	categories, err := store.Categories()
	require.NoError(t, err)
	assert.Equal(t, []string{"cloud", "linux", "top_level.yml", "windows"}, categories)
}

func TestCount(t *testing.T) {
	store, _ := newStore(t)

	n, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestSearch(t *testing.T) {
	store, _ := newStore(t)

	tests := []struct {
		term string
		want []string
	}{
		{"mimikatz", []string{"windows/process_creation/proc_creation_win_mimikatz.yml"}},
		{"SEKURLSA::", []string{"windows/process_creation/proc_creation_win_mimikatz.yml"}},
		{"failed password", []string{"linux/auditd/lnx_ssh_bruteforce.yml"}},
		{"title", []string{
			"linux/auditd/lnx_ssh_bruteforce.yml",
			"top_level.yml",
			"windows/builtin/security/win_susp_logon.yml",
			"windows/process_creation/proc_creation_win_mimikatz.yml",
		}},
		{"no such thing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			got, err := store.Search(tt.term)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearch_EmptyTerm(t *testing.T) {
	store, _ := newStore(t)

	_, err := store.Search("  ")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestMissingRoot(t *testing.T) {
	env := testutil.NewEnvironment(t)
	store := rules.NewStore(env.FS, env.Paths.SigmaRulesDir(), nil)

	assert.False(t, store.Exists())
	_, err := store.Categories()
	assert.True(t, errors.IsErrorCode(err, errors.ErrRuleNotFound))
	_, err = store.Count()
	assert.True(t, errors.IsErrorCode(err, errors.ErrRuleNotFound))
	_, err = store.Search("x")
	assert.True(t, errors.IsErrorCode(err, errors.ErrRuleNotFound))
}

func TestStats(t *testing.T) {
	store, _ := newStore(t)

	stats, err := store.Stats(true)
	require.NoError(t, err)
	require.Len(t, stats, 3)

	assert.Equal(t, ".", stats[0].Name)
	assert.Equal(t, 1, stats[0].Rules)
	assert.Equal(t, map[string]int{"unknown": 1}, stats[0].Levels)

	assert.Equal(t, "linux", stats[1].Name)
	assert.Equal(t, map[string]int{"medium": 1}, stats[1].Levels)

	assert.Equal(t, "windows", stats[2].Name)
	assert.Equal(t, 2, stats[2].Rules)
	assert.Equal(t, map[string]int{"high": 1, "low": 1}, stats[2].Levels)

	plain, err := store.Stats(false)
	require.NoError(t, err)
	assert.Nil(t, plain[2].Levels)
}

func TestLoad(t *testing.T) {
	store, env := newStore(t)

	rule, err := store.Load("windows/process_creation/proc_creation_win_mimikatz.yml")
	require.NoError(t, err)
	assert.Equal(t, "Mimikatz Command Line", rule.Title)
	assert.Equal(t, "high", rule.Level)
	assert.Equal(t, "2019-10-22", rule.Date)
	assert.Equal(t, "windows", rule.Logsource.Product)
	assert.Equal(t, "process_creation", rule.Logsource.Category)
	assert.Equal(t, []string{"attack.credential-access", "attack.t1003.001"}, rule.Tags)
	assert.Equal(t, "selection", rule.Detection.Condition())
	assert.Equal(t, "windows/process_creation/proc_creation_win_mimikatz.yml", rule.Path)

	abs, err := store.Load(env.Paths.SigmaRulesDir() + "/linux/auditd/lnx_ssh_bruteforce.yml")
	require.NoError(t, err)
	assert.Equal(t, "linux/auditd/lnx_ssh_bruteforce.yml", abs.Path)
	assert.Equal(t, "sshd", abs.Logsource.Service)

	_, err = store.Load("windows/nope.yml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrRuleNotFound))
}

func TestParseRule_Invalid(t *testing.T) {
	_, err := rules.ParseRule([]byte("title: [unterminated"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrRuleParse))

	_, err = rules.ParseRule([]byte("level: high\n"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrRuleParse))
}

func TestDetectionCondition(t *testing.T) {
	assert.Equal(t, "a or b", rules.Detection{"condition": []interface{}{"a or b", "c"}}.Condition())
	assert.Equal(t, "", rules.Detection{}.Condition())
}
