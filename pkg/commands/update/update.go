// Package update implements `sawkit update`: pull both repositories,
// rebuild and reinstall the binary, refresh the install record.
package update

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/arthur-debert/sawkit/pkg/bootstrap"
	"github.com/arthur-debert/sawkit/pkg/config"
	"github.com/arthur-debert/sawkit/pkg/errors"
	"github.com/arthur-debert/sawkit/pkg/filesystem"
	"github.com/arthur-debert/sawkit/pkg/internal/hashutil"
	"github.com/arthur-debert/sawkit/pkg/logging"
	"github.com/arthur-debert/sawkit/pkg/paths"
	"github.com/arthur-debert/sawkit/pkg/style"
	"github.com/arthur-debert/sawkit/pkg/summary"
	"github.com/arthur-debert/sawkit/pkg/types"
)

// UpdateOptions defines the options for the Update command.
type UpdateOptions struct {
	FS      types.FS
	Runner  types.Runner
	Paths   paths.Paths
	Config  *config.Config
	Output  io.Writer
	Version string
	DryRun  bool
	Now     func() time.Time
}

// UpdateResult is the outcome of an update
type UpdateResult struct {
	Report          *bootstrap.Report `json:"report"`
	ChainsawVersion string            `json:"chainsawVersion,omitempty"`
	BinaryChanged   bool              `json:"binaryChanged"`
}

// Update attempts every update step even when earlier ones fail and
// returns an error naming all failed steps
func Update(ctx context.Context, opts UpdateOptions) (*UpdateResult, error) {
	log := logging.GetLogger("commands.update")
	log.Debug().Str("command", "Update").Bool("dryRun", opts.DryRun).Msg("Executing command")

	if !filesystem.IsDir(opts.FS, opts.Paths.InstallRoot()) {
		return nil, errors.Newf(errors.ErrNotFound, "chainsaw is not installed at %s; run sawkit install", opts.Paths.InstallRoot()).
			WithDetail("path", opts.Paths.InstallRoot())
	}

	b := bootstrap.New(bootstrap.Options{
		FS:      opts.FS,
		Runner:  opts.Runner,
		Paths:   opts.Paths,
		Config:  opts.Config,
		Output:  opts.Output,
		Version: opts.Version,
		Now:     opts.Now,
	})

	before, _ := hashutil.FileChecksum(opts.FS, opts.Paths.BinaryPath())

	report, err := b.Update(ctx, opts.DryRun)
	result := &UpdateResult{Report: report, ChainsawVersion: b.ChainsawVersion()}
	if after, cerr := hashutil.FileChecksum(opts.FS, opts.Paths.BinaryPath()); cerr == nil {
		result.BinaryChanged = after != before
	}
	if err != nil {
		return result, err
	}

	log.Info().Str("command", "Update").Msg("Command finished")
	return result, nil
}

func (r *UpdateResult) heading() string {
	switch {
	case r.Report == nil:
		return ""
	case r.Report.DryRun:
		return "Update plan (dry run, nothing was changed)"
	case len(r.Report.Failed()) > 0:
		return "Update finished with failures"
	case r.ChainsawVersion != "" && !r.BinaryChanged:
		return "Already up to date (" + r.ChainsawVersion + ")"
	case r.ChainsawVersion != "":
		return "Updated to " + r.ChainsawVersion
	default:
		return "Update complete"
	}
}

// RenderText renders the step report
func (r *UpdateResult) RenderText() string {
	var b strings.Builder
	if h := r.heading(); h != "" {
		b.WriteString(h + "\n")
	}
	b.WriteString(summary.RenderReportText(r.Report))
	return b.String()
}

// RenderTerminal renders the step report with status colors
func (r *UpdateResult) RenderTerminal() string {
	var b strings.Builder
	if h := r.heading(); h != "" {
		b.WriteString(style.SubtitleStyle.Render(h) + "\n")
	}
	b.WriteString(summary.RenderReportTerminal(r.Report))
	return b.String()
}
