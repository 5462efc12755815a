package install

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/arthur-debert/sawkit/pkg/bootstrap"
	"github.com/arthur-debert/sawkit/pkg/config"
	"github.com/arthur-debert/sawkit/pkg/logging"
	"github.com/arthur-debert/sawkit/pkg/paths"
	"github.com/arthur-debert/sawkit/pkg/shell"
	"github.com/arthur-debert/sawkit/pkg/style"
	"github.com/arthur-debert/sawkit/pkg/summary"
	"github.com/arthur-debert/sawkit/pkg/types"
)

// InstallOptions defines the options for the Install command.
type InstallOptions struct {
	FS        types.FS
	Runner    types.Runner
	Confirmer types.Confirmer
	Paths     paths.Paths
	Config    *config.Config

	// Output receives the output of git, cargo and the toolchain installer
	Output io.Writer
	// Sawkit is the executable the generated shell functions call
	Sawkit string
	// Version of sawkit, kept in the install record
	Version string
	// DryRun lists the steps without running them
	DryRun bool
	// Now defaults to time.Now
	Now func() time.Time
}

// InstallResult is the outcome of an install
type InstallResult struct {
	Report  *bootstrap.Report `json:"report"`
	Shell   *shell.Result     `json:"shell,omitempty"`
	Summary *summary.Summary  `json:"summary,omitempty"`
}

// Install runs the bootstrap procedure and, when it completes, collects a
// summary of the result. The result is returned even when the procedure
// fails so the caller can show which steps ran.
func Install(ctx context.Context, opts InstallOptions) (*InstallResult, error) {
	log := logging.GetLogger("commands.install")
	log.Debug().Str("command", "Install").Bool("dryRun", opts.DryRun).Msg("Executing command")

	b := bootstrap.New(bootstrap.Options{
		FS:        opts.FS,
		Runner:    opts.Runner,
		Confirmer: opts.Confirmer,
		Paths:     opts.Paths,
		Config:    opts.Config,
		Output:    opts.Output,
		Sawkit:    opts.Sawkit,
		Version:   opts.Version,
		Now:       opts.Now,
	})

	report, err := b.Install(ctx, opts.DryRun)
	result := &InstallResult{Report: report, Shell: b.ShellResult()}
	if err != nil {
		return result, err
	}

	if !opts.DryRun {
		result.Summary = summary.Collect(ctx, summary.Options{
			FS:     opts.FS,
			Runner: opts.Runner,
			Paths:  opts.Paths,
			Config: opts.Config,
			Now:    opts.Now,
		})
	}

	log.Info().Str("command", "Install").Msg("Command finished")
	return result, nil
}

func (r *InstallResult) heading() string {
	switch {
	case r.Report == nil:
		return ""
	case r.Report.DryRun:
		return "Install plan (dry run, nothing was changed)"
	case r.Report.Cancelled:
		return "Install cancelled, nothing was changed"
	case len(r.Report.Failed()) > 0:
		return "Install failed"
	default:
		return "Install complete"
	}
}

func (r *InstallResult) nextSteps() string {
	if r.Summary == nil || r.Shell == nil {
		return ""
	}
	return "Open a new shell or run [code]source " + r.Shell.StartupFile + "[/code] to load the shell functions."
}

// RenderText renders the step report, the summary and the next steps
func (r *InstallResult) RenderText() string {
	var b strings.Builder
	if h := r.heading(); h != "" {
		b.WriteString(h + "\n")
	}
	b.WriteString(summary.RenderReportText(r.Report))
	if r.Summary != nil {
		b.WriteString("\n" + r.Summary.RenderText())
	}
	if next := r.nextSteps(); next != "" {
		b.WriteString("\n" + style.Strip(next) + "\n")
	}
	return b.String()
}

// RenderTerminal is RenderText with styling
func (r *InstallResult) RenderTerminal() string {
	var b strings.Builder
	if h := r.heading(); h != "" {
		b.WriteString(style.SubtitleStyle.Render(h) + "\n")
	}
	b.WriteString(summary.RenderReportTerminal(r.Report))
	if r.Summary != nil {
		b.WriteString("\n" + r.Summary.RenderTerminal())
	}
	if next := r.nextSteps(); next != "" {
		b.WriteString("\n" + style.InfoIndicator + " " + style.Render(next) + "\n")
	}
	return b.String()
}
