package chainsaw

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/sawkit/pkg/config"
	"github.com/arthur-debert/sawkit/pkg/errors"
	"github.com/arthur-debert/sawkit/pkg/filesystem"
	"github.com/arthur-debert/sawkit/pkg/logging"
	"github.com/arthur-debert/sawkit/pkg/paths"
	"github.com/arthur-debert/sawkit/pkg/rules"
	"github.com/arthur-debert/sawkit/pkg/types"
	"github.com/rs/zerolog"
)

// HuntUsage is printed when hunt gets too few arguments
const HuntUsage = "Usage: sawkit hunt <evtx_path> <rules_path> [additional_args...]"

// Options configures a Wrapper
type Options struct {
	FS     types.FS
	Runner types.Runner
	Paths  paths.Paths
	Config *config.Config

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Wrapper runs the installed chainsaw binary
type Wrapper struct {
	fs     types.FS
	runner types.Runner
	paths  paths.Paths
	hunt   config.Hunt
	store  *rules.Store
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger zerolog.Logger
}

// New creates a Wrapper
func New(opts Options) *Wrapper {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	w := &Wrapper{
		fs:     opts.FS,
		runner: opts.Runner,
		paths:  opts.Paths,
		hunt:   cfg.Hunt,
		store:  rules.NewStore(opts.FS, opts.Paths.SigmaRulesDir(), cfg.Rules.Extensions),
		stdin:  opts.Stdin,
		stdout: opts.Stdout,
		stderr: opts.Stderr,
		logger: logging.GetLogger("chainsaw.wrapper"),
	}
	if w.stdin == nil {
		w.stdin = os.Stdin
	}
	if w.stdout == nil {
		w.stdout = os.Stdout
	}
	if w.stderr == nil {
		w.stderr = os.Stderr
	}
	return w
}

// Run passes args to the binary unchanged
func (w *Wrapper) Run(ctx context.Context, args []string) error {
	binary := w.paths.BinaryPath()
	if !filesystem.IsFile(w.fs, binary) {
		return errors.Newf(errors.ErrBinaryMissing,
			"chainsaw binary not found at %s; run `sawkit install` (or `sawkit update`) to build it", binary).
			WithDetail("binary", binary)
	}

	_, err := w.runner.Run(ctx, types.Command{
		Name:        binary,
		Args:        args,
		Stdin:       w.stdin,
		Stdout:      w.stdout,
		Stderr:      w.stderr,
		Description: "chainsaw",
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrCommandExecute, "chainsaw failed").
			WithDetail(errors.DetailExitCode, errors.ExitCode(err))
	}
	return nil
}

// Forward runs a chainsaw subcommand with args
func (w *Wrapper) Forward(ctx context.Context, subcommand string, args []string) error {
	return w.Run(ctx, append([]string{subcommand}, args...))
}

// ResolveRulePath rewrites a path starting with the rule prefix (sigma/)
// to the same path under SIGMA_RULES. Any other input is returned as is.
func (w *Wrapper) ResolveRulePath(input string) string {
	prefix := w.hunt.RulePrefix
	if prefix == "" || !strings.HasPrefix(input, prefix) {
		return input
	}
	return filepath.Join(w.paths.SigmaRulesDir(), strings.TrimPrefix(input, prefix))
}

// HuntArgs builds the chainsaw argument list for a hunt
func (w *Wrapper) HuntArgs(args []string) ([]string, error) {
	if len(args) < 2 {
		return nil, errors.New(errors.ErrInvalidInput, HuntUsage)
	}

	logs, rulePath, extra := args[0], w.ResolveRulePath(args[1]), args[2:]
	if !filesystem.Exists(w.fs, rulePath) {
		return nil, w.missingRulePath(rulePath)
	}

	huntArgs := []string{"hunt", logs, "-s", rulePath}
	huntArgs = append(huntArgs, extra...)

	if mapping := w.mappingPath(); mapping != "" && !hasFlag(extra, "--mapping", "-m") {
		huntArgs = append(huntArgs, "--mapping", mapping)
	}

	return huntArgs, nil
}

// Hunt runs `chainsaw hunt <logs> -s <rules> [extra...]`
func (w *Wrapper) Hunt(ctx context.Context, args []string) error {
	huntArgs, err := w.HuntArgs(args)
	if err != nil {
		return err
	}
	w.logger.Debug().Strs("args", huntArgs).Msg("Hunting")
	return w.Run(ctx, huntArgs)
}

func (w *Wrapper) missingRulePath(rulePath string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "rules path not found: %s", rulePath)

	categories, err := w.store.Categories()
	if err == nil && len(categories) > 0 {
		limit := w.hunt.MaxCategories
		if limit <= 0 || limit > len(categories) {
			limit = len(categories)
		}
		b.WriteString("\nAvailable rule categories:")
		for _, c := range categories[:limit] {
			fmt.Fprintf(&b, "\n  %s", c)
		}
		categories = categories[:limit]
	}

	return errors.New(errors.ErrRuleNotFound, b.String()).
		WithDetail("path", rulePath).
		WithDetail("categories", categories)
}

// mappingPath returns the configured mapping file when it exists
func (w *Wrapper) mappingPath() string {
	if w.hunt.Mapping == "" {
		return ""
	}
	mapping := w.hunt.Mapping
	if !filepath.IsAbs(mapping) {
		mapping = filepath.Join(w.paths.InstallRoot(), mapping)
	}
	if !filesystem.IsFile(w.fs, mapping) {
		w.logger.Debug().Str("mapping", mapping).Msg("Mapping file not found, not passing --mapping")
		return ""
	}
	return mapping
}

// hasFlag reports whether args contain any of names, alone or as name=value
func hasFlag(args []string, names ...string) bool {
	for _, arg := range args {
		for _, name := range names {
			if arg == name || strings.HasPrefix(arg, name+"=") {
				return true
			}
		}
	}
	return false
}
