package summary

import (
	"context"
	"strings"
	"time"

	"github.com/arthur-debert/sawkit/pkg/config"
	"github.com/arthur-debert/sawkit/pkg/filesystem"
	"github.com/arthur-debert/sawkit/pkg/logging"
	"github.com/arthur-debert/sawkit/pkg/paths"
	"github.com/arthur-debert/sawkit/pkg/rules"
	"github.com/arthur-debert/sawkit/pkg/shell"
	"github.com/arthur-debert/sawkit/pkg/types"
)

// Unknown is shown for any value that could not be queried
const Unknown = "Unknown"

// Options are the read-only collaborators Collect queries
type Options struct {
	FS     types.FS
	Runner types.Runner
	Paths  paths.Paths
	Config *config.Config

	// Now defaults to time.Now
	Now func() time.Time
}

// Summary is a point-in-time view of an installation
type Summary struct {
	InstallRoot     string     `json:"installRoot"`
	Installed       bool       `json:"installed"`
	Binary          string     `json:"binary"`
	BinaryPresent   bool       `json:"binaryPresent"`
	ChainsawVersion string     `json:"chainsawVersion"`
	RulesDir        string     `json:"rulesDir"`
	RulesPresent    bool       `json:"rulesPresent"`
	RuleCount       int        `json:"ruleCount"`
	AliasFile       string     `json:"aliasFile"`
	StartupFile     string     `json:"startupFile"`
	ShellInstalled  bool       `json:"shellInstalled"`
	InstalledAt     *time.Time `json:"installedAt,omitempty"`
	SawkitVersion   string     `json:"sawkitVersion,omitempty"`

	home string
	now  time.Time
}

// Collect queries the current state of the installation
func Collect(ctx context.Context, opts Options) *Summary {
	logger := logging.GetLogger("summary")
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	p := opts.Paths

	s := &Summary{
		InstallRoot:     p.InstallRoot(),
		Installed:       filesystem.IsDir(opts.FS, p.InstallRoot()),
		Binary:          p.BinaryPath(),
		BinaryPresent:   filesystem.IsFile(opts.FS, p.BinaryPath()),
		ChainsawVersion: Unknown,
		RulesDir:        p.SigmaRulesDir(),
		RuleCount:       -1,
		AliasFile:       p.AliasFile(),
		StartupFile:     p.StartupFile(),
		home:            p.HomeDir(),
		now:             now(),
	}

	if s.BinaryPresent {
		s.ChainsawVersion = binaryVersion(ctx, opts.Runner, p.BinaryPath(), cfg.Build.SmokeArgs)
	}

	store := rules.NewStore(opts.FS, p.SigmaRulesDir(), cfg.Rules.Extensions)
	s.RulesPresent = store.Exists()
	if count, err := store.Count(); err == nil {
		s.RuleCount = count
	} else {
		logger.Debug().Err(err).Msg("Rule count unavailable")
	}

	integration := shell.NewIntegration(shell.Options{
		FS:          opts.FS,
		AliasFile:   p.AliasFile(),
		StartupFile: p.StartupFile(),
		HomeDir:     p.HomeDir(),
	})
	if installed, err := integration.Installed(); err == nil {
		s.ShellInstalled = installed
	} else {
		logger.Debug().Err(err).Msg("Shell integration state unavailable")
	}

	if rec, err := config.ReadInstallRecord(opts.FS, p.InstallRecordPath()); err == nil {
		if !rec.Install.InstalledAt.IsZero() {
			at := rec.Install.InstalledAt
			s.InstalledAt = &at
		}
		s.SawkitVersion = rec.Install.SawkitVersion
	}

	return s
}

func binaryVersion(ctx context.Context, runner types.Runner, binary string, args []string) string {
	if runner == nil {
		return Unknown
	}
	result, err := runner.Run(ctx, types.Command{
		Name:        binary,
		Args:        args,
		Description: "query chainsaw version",
	})
	if err != nil {
		return Unknown
	}
	version := strings.TrimSpace(result.Stdout)
	if i := strings.IndexByte(version, '\n'); i >= 0 {
		version = strings.TrimSpace(version[:i])
	}
	if version == "" {
		return Unknown
	}
	return version
}

// Ready reports whether every part of the installation is in place
func (s *Summary) Ready() bool {
	return s.Installed && s.BinaryPresent && s.RulesPresent && s.ShellInstalled
}
