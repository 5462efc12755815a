package bootstrap

import (
	"context"
	"strings"

	"github.com/arthur-debert/sawkit/pkg/errors"
	"github.com/arthur-debert/sawkit/pkg/types"
)

// EnsureToolchain installs the build toolchain when its probe fails and
// makes its bin directory visible to every later command
func (b *Bootstrapper) EnsureToolchain(ctx context.Context, r *Report) error {
	tc := b.cfg.Toolchain

	if version, ok := b.probeToolchain(ctx); ok {
		b.logger.Info().Str("version", version).Msgf("%s already installed", tc.Name)
		return nil
	}

	b.logger.Info().Str("toolchain", tc.Name).Msg("Toolchain not found, running installer")
	_, err := b.runner.Run(ctx, types.Command{
		Name:        "sh",
		Args:        []string{"-c", tc.InstallCommand},
		Stdout:      b.output,
		Stderr:      b.output,
		Description: "install " + tc.Name,
	})
	if err != nil {
		return errors.Wrapf(err, errors.ErrToolchainInstall,
			"%s installation failed; install it manually following %s", tc.Name, tc.ManualURL).
			WithDetail("manual_url", tc.ManualURL)
	}

	b.runner.PrependPath(b.paths.CargoBinDir())

	if _, ok := b.probeToolchain(ctx); !ok {
		envFile := displayHome(tc.EnvFile)
		return errors.Newf(errors.ErrToolchainMissing,
			"%s was installed but is not on PATH; run `source \"%s\"` or open a new shell, then run sawkit install again",
			tc.Name, envFile).
			WithDetail("env_file", envFile)
	}

	return nil
}

// probeToolchain runs the configured version query
func (b *Bootstrapper) probeToolchain(ctx context.Context) (string, bool) {
	probe := b.cfg.Toolchain.Probe
	result, err := b.runner.Run(ctx, types.Command{Name: probe[0], Args: probe[1:], Description: "probe toolchain"})
	if err != nil {
		return "", false
	}
	return firstLine(result.Stdout), true
}

// displayHome rewrites a leading ~/ as $HOME/ for shell instructions
func displayHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		return "$HOME/" + path[2:]
	}
	return path
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
