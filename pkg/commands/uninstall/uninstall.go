// Package uninstall implements `sawkit uninstall`: remove the installation
// root, the generated shell block and the install record.
package uninstall

import (
	"fmt"
	"strings"
	"time"

	"github.com/arthur-debert/sawkit/pkg/config"
	"github.com/arthur-debert/sawkit/pkg/errors"
	"github.com/arthur-debert/sawkit/pkg/filesystem"
	"github.com/arthur-debert/sawkit/pkg/logging"
	"github.com/arthur-debert/sawkit/pkg/paths"
	"github.com/arthur-debert/sawkit/pkg/shell"
	"github.com/arthur-debert/sawkit/pkg/style"
	"github.com/arthur-debert/sawkit/pkg/types"
)

// UninstallOptions defines the options for the Uninstall command.
type UninstallOptions struct {
	FS        types.FS
	Confirmer types.Confirmer
	Paths     paths.Paths
	DryRun    bool
	Now       func() time.Time
}

// UninstallResult lists what was (or, in a dry run, would be) removed
type UninstallResult struct {
	Targets       []string      `json:"targets"`
	RootRemoved   bool          `json:"rootRemoved"`
	RecordRemoved bool          `json:"recordRemoved"`
	Shell         *shell.Result `json:"shell,omitempty"`
	DryRun        bool          `json:"dryRun"`
}

// Uninstall asks for confirmation, then strips the shell integration and
// removes the installation root and the install record. The alias file is
// checked first so a marker mismatch stops the uninstall before anything
// is deleted.
func Uninstall(opts UninstallOptions) (*UninstallResult, error) {
	log := logging.GetLogger("commands.uninstall")
	log.Debug().Str("command", "Uninstall").Bool("dryRun", opts.DryRun).Msg("Executing command")

	p := opts.Paths
	integration := shell.NewIntegration(shell.Options{
		FS:          opts.FS,
		AliasFile:   p.AliasFile(),
		StartupFile: p.StartupFile(),
		HomeDir:     p.HomeDir(),
		Now:         opts.Now,
	})

	shellInstalled, err := integration.Installed()
	if err != nil {
		return nil, err
	}
	hasRoot := filesystem.Exists(opts.FS, p.InstallRoot())
	hasRecord := filesystem.Exists(opts.FS, p.InstallRecordPath())

	result := &UninstallResult{DryRun: opts.DryRun}
	if hasRoot {
		result.Targets = append(result.Targets, p.InstallRoot())
	}
	if shellInstalled {
		result.Targets = append(result.Targets, fmt.Sprintf("generated block in %s", p.AliasFile()))
	}
	if hasRecord {
		result.Targets = append(result.Targets, p.InstallRecordPath())
	}

	if len(result.Targets) == 0 || opts.DryRun {
		return result, nil
	}

	ok, err := opts.Confirmer.Confirm(types.ConfirmationRequest{
		Title:       "Uninstall Chainsaw",
		Description: "This removes the following. The alias file is backed up first.",
		Items:       result.Targets,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to ask for confirmation")
	}
	if !ok {
		return result, errors.New(errors.ErrCancelled, "uninstall declined; nothing was removed")
	}

	// Remove also takes out the source line when the block is already gone
	shellResult, err := integration.Remove()
	if err != nil {
		return result, err
	}
	result.Shell = shellResult

	if hasRoot {
		if err := opts.FS.RemoveAll(p.InstallRoot()); err != nil {
			return result, errors.Wrapf(err, errors.ErrDirRemove, "failed to remove %s", p.InstallRoot())
		}
		result.RootRemoved = true
		log.Info().Str("root", p.InstallRoot()).Msg("Removed installation root")
	}

	if hasRecord {
		if err := config.RemoveInstallRecord(opts.FS, p.InstallRecordPath()); err != nil {
			return result, err
		}
		result.RecordRemoved = true
	}

	log.Info().Str("command", "Uninstall").Msg("Command finished")
	return result, nil
}

func (r *UninstallResult) lines() (string, []string) {
	if len(r.Targets) == 0 {
		return "Nothing to uninstall", nil
	}
	if r.DryRun {
		return "Would remove (dry run, nothing was changed)", r.Targets
	}
	var items []string
	items = append(items, r.Targets...)
	if r.Shell != nil && r.Shell.BackupFile != "" {
		items = append(items, "alias file backed up to "+r.Shell.BackupFile)
	}
	return "Removed", items
}

// RenderText renders the removed items, one per line
func (r *UninstallResult) RenderText() string {
	heading, items := r.lines()
	var b strings.Builder
	b.WriteString(heading + "\n")
	for _, item := range items {
		b.WriteString("  " + item + "\n")
	}
	return b.String()
}

// RenderTerminal renders the removed items with indicators
func (r *UninstallResult) RenderTerminal() string {
	heading, items := r.lines()
	var b strings.Builder
	b.WriteString(style.SubtitleStyle.Render(heading) + "\n")
	indicator := style.SuccessIndicator
	if r.DryRun {
		indicator = style.PendingIndicator
	}
	for _, item := range items {
		b.WriteString("  " + indicator + " " + style.PathStyle.Render(item) + "\n")
	}
	return b.String()
}
