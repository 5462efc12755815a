package bootstrap

import (
	"context"
	"io"
	"time"

	"github.com/arthur-debert/sawkit/pkg/config"
	"github.com/arthur-debert/sawkit/pkg/logging"
	"github.com/arthur-debert/sawkit/pkg/paths"
	"github.com/arthur-debert/sawkit/pkg/shell"
	"github.com/arthur-debert/sawkit/pkg/types"
	"github.com/rs/zerolog"
)

// Step names, in install order
const (
	StepGuard         = "guard"
	StepPrepare       = "prepare"
	StepToolchain     = "toolchain"
	StepFetchChainsaw = "fetch-chainsaw"
	StepFetchSigma    = "fetch-sigma"
	StepBuild         = "build"
	StepVerifyRules   = "verify-rules"
	StepRecord        = "record"
	StepShell         = "shell"

	StepPullChainsaw = "pull-chainsaw"
	StepPullSigma    = "pull-sigma"
)

// Options are the collaborators a Bootstrapper works through
type Options struct {
	FS        types.FS
	Runner    types.Runner
	Confirmer types.Confirmer
	Paths     paths.Paths
	Config    *config.Config

	// Output receives the output of git, cargo and the toolchain
	// installer as they run. Nil keeps it captured only.
	Output io.Writer

	// Sawkit is the executable the shell functions call
	Sawkit string

	// Version is recorded in the install record
	Version string

	// Now defaults to time.Now
	Now func() time.Time
}

// Bootstrapper holds the state shared by the install and update steps
type Bootstrapper struct {
	fs        types.FS
	runner    types.Runner
	confirmer types.Confirmer
	paths     paths.Paths
	cfg       *config.Config
	output    io.Writer
	sawkit    string
	version   string
	now       func() time.Time
	logger    zerolog.Logger

	chainsawVersion string
	shellResult     *shell.Result
}

// New creates a Bootstrapper
func New(opts Options) *Bootstrapper {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	return &Bootstrapper{
		fs:        opts.FS,
		runner:    opts.Runner,
		confirmer: opts.Confirmer,
		paths:     opts.Paths,
		cfg:       cfg,
		output:    opts.Output,
		sawkit:    opts.Sawkit,
		version:   opts.Version,
		now:       now,
		logger:    logging.GetLogger("bootstrap"),
	}
}

// InstallSteps returns the install procedure in order
func (b *Bootstrapper) InstallSteps() []Step {
	return []Step{
		{StepGuard, "Check for an existing installation", b.Guard},
		{StepPrepare, "Create the installation directory", b.Prepare},
		{StepToolchain, "Ensure the " + b.cfg.Toolchain.Name + " toolchain is available", b.EnsureToolchain},
		{StepFetchChainsaw, "Clone " + b.cfg.Repos.Chainsaw.Label, b.fetchStep(b.cfg.Repos.Chainsaw, b.paths.InstallRoot())},
		{StepFetchSigma, "Clone " + b.cfg.Repos.Sigma.Label, b.fetchStep(b.cfg.Repos.Sigma, b.paths.SigmaDir())},
		{StepBuild, "Build and install the chainsaw binary", b.Build},
		{StepVerifyRules, "Verify the rules directory", b.VerifyRules},
		{StepRecord, "Write the install record", b.WriteRecord},
		{StepShell, "Write the shell integration", b.InstallShell},
	}
}

// UpdateSteps returns the update procedure in order
func (b *Bootstrapper) UpdateSteps() []Step {
	return []Step{
		{StepPullChainsaw, "Pull " + b.cfg.Repos.Chainsaw.Label, b.pullStep(b.cfg.Repos.Chainsaw, b.paths.InstallRoot())},
		{StepPullSigma, "Pull " + b.cfg.Repos.Sigma.Label, b.pullStep(b.cfg.Repos.Sigma, b.paths.SigmaDir())},
		{StepBuild, "Rebuild and reinstall the chainsaw binary", b.Build},
		{StepRecord, "Refresh the install record", b.RefreshRecord},
	}
}

// ChainsawVersion is the version reported by the smoke test, if it passed
func (b *Bootstrapper) ChainsawVersion() string {
	return b.chainsawVersion
}

// ShellResult describes what the shell step changed, nil until it ran
func (b *Bootstrapper) ShellResult() *shell.Result {
	return b.shellResult
}

// Install runs the install procedure, fail-fast
func (b *Bootstrapper) Install(ctx context.Context, dryRun bool) (*Report, error) {
	return NewPipeline(b.InstallSteps(), WithDryRun(dryRun)).Run(ctx)
}

// Update runs every update step and reports all failures
func (b *Bootstrapper) Update(ctx context.Context, dryRun bool) (*Report, error) {
	return NewPipeline(b.UpdateSteps(), WithDryRun(dryRun), WithContinueOnError()).Run(ctx)
}
