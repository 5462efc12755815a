// Package commands provides high-level command implementations for sawkit.
//
// This package contains the command orchestration layer that coordinates
// between the CLI interface and the bootstrap, shell and rules packages.
//
// Each command is implemented in its own subdirectory:
//   - install/   - Install command (bootstrap + summary)
//   - update/    - Update command
//   - uninstall/ - Uninstall command
//   - status/    - Status command
//   - aliases/   - shell install/remove/snippet
//   - browse/    - rules path/list/search/count/show/stats
//   - genconfig/ - config init/show
//
// Every command takes an Options struct and returns a result that renders
// itself as text, styled terminal output or JSON.
package commands

import (
	"context"

	"github.com/arthur-debert/sawkit/pkg/commands/aliases"
	"github.com/arthur-debert/sawkit/pkg/commands/browse"
	"github.com/arthur-debert/sawkit/pkg/commands/genconfig"
	"github.com/arthur-debert/sawkit/pkg/commands/install"
	"github.com/arthur-debert/sawkit/pkg/commands/status"
	"github.com/arthur-debert/sawkit/pkg/commands/uninstall"
	"github.com/arthur-debert/sawkit/pkg/commands/update"
	"github.com/arthur-debert/sawkit/pkg/config"
	"github.com/arthur-debert/sawkit/pkg/summary"
)

// Install runs the bootstrap procedure.
type InstallOptions = install.InstallOptions

func Install(ctx context.Context, opts InstallOptions) (*install.InstallResult, error) {
	return install.Install(ctx, opts)
}

// Update pulls, rebuilds and reports every failed step.
type UpdateOptions = update.UpdateOptions

func Update(ctx context.Context, opts UpdateOptions) (*update.UpdateResult, error) {
	return update.Update(ctx, opts)
}

// Uninstall removes the installation after confirmation.
type UninstallOptions = uninstall.UninstallOptions

func Uninstall(opts UninstallOptions) (*uninstall.UninstallResult, error) {
	return uninstall.Uninstall(opts)
}

// Status summarizes the installation.
type StatusOptions = status.StatusOptions

func Status(ctx context.Context, opts StatusOptions) *summary.Summary {
	return status.Status(ctx, opts)
}

// ShellInstall, ShellRemove and ShellSnippet manage the shell integration.
type AliasesOptions = aliases.AliasesOptions

func ShellInstall(opts AliasesOptions) (*aliases.AliasesResult, error) {
	return aliases.Install(opts)
}

func ShellRemove(opts AliasesOptions) (*aliases.AliasesResult, error) {
	return aliases.Remove(opts)
}

func ShellSnippet(opts AliasesOptions) string {
	return aliases.Snippet(opts)
}

func ShellBlock(opts AliasesOptions) string {
	return aliases.Block(opts)
}

// The rules commands browse the Sigma rules directory.
type BrowseOptions = browse.BrowseOptions

func RulesPath(opts BrowseOptions) (*browse.PathResult, error) {
	return browse.Path(opts)
}

func RulesList(opts BrowseOptions) (*browse.ListResult, error) {
	return browse.List(opts)
}

func RulesSearch(opts BrowseOptions, term string) (*browse.SearchResult, error) {
	return browse.Search(opts, term)
}

func RulesCount(opts BrowseOptions) (*browse.CountResult, error) {
	return browse.Count(opts)
}

func RulesShow(opts BrowseOptions, path string) (*browse.ShowResult, error) {
	return browse.Show(opts, path)
}

func RulesStats(opts BrowseOptions, withLevels bool) (*browse.StatsResult, error) {
	return browse.Stats(opts, withLevels)
}

// GenConfig prints or writes the commented default configuration.
type GenConfigOptions = genconfig.GenConfigOptions

func GenConfig(opts GenConfigOptions) (*genconfig.GenConfigResult, error) {
	return genconfig.GenConfig(opts)
}

// ShowConfig prints the effective configuration.
func ShowConfig(cfg *config.Config) (*genconfig.GenConfigResult, error) {
	return genconfig.ShowConfig(cfg)
}
