package bootstrap

import (
	"context"

	"github.com/arthur-debert/sawkit/pkg/errors"
	"github.com/arthur-debert/sawkit/pkg/filesystem"
	"github.com/arthur-debert/sawkit/pkg/types"
)

// Build compiles the tool, copies the artifact into the bin directory and
// smoke tests it. A failed smoke test is only a warning.
func (b *Bootstrapper) Build(ctx context.Context, r *Report) error {
	b.runner.PrependPath(b.paths.CargoBinDir())

	root := b.paths.InstallRoot()
	command := b.cfg.Build.Command
	_, err := b.runner.Run(ctx, types.Command{
		Name:        command[0],
		Args:        command[1:],
		Dir:         root,
		Stdout:      b.output,
		Stderr:      b.output,
		Description: "build chainsaw",
	})
	if err != nil {
		return errors.Wrapf(err, errors.ErrBuild, "build failed in %s", root)
	}

	artifact := b.paths.ArtifactPath()
	if !filesystem.IsFile(b.fs, artifact) {
		return errors.Newf(errors.ErrArtifactMissing, "build reported success but %s does not exist", artifact).
			WithDetail("artifact", artifact)
	}

	binary := b.paths.BinaryPath()
	if err := filesystem.CopyFile(b.fs, artifact, binary, 0755); err != nil {
		return err
	}
	b.logger.Info().Str("binary", binary).Msg("Installed chainsaw binary")

	b.smokeTest(ctx, r)
	return nil
}

// smokeTest runs the installed binary with the version flag
func (b *Bootstrapper) smokeTest(ctx context.Context, r *Report) {
	binary := b.paths.BinaryPath()
	result, err := b.runner.Run(ctx, types.Command{
		Name:        binary,
		Args:        b.cfg.Build.SmokeArgs,
		Description: "smoke test",
	})
	if err != nil {
		b.chainsawVersion = ""
		b.logger.Warn().Err(err).Msg("Smoke test failed")
		r.Warn("smoke test of %s failed; the binary may still work: %v", binary, err)
		return
	}

	b.chainsawVersion = firstLine(result.Stdout)
	b.logger.Info().Str("version", b.chainsawVersion).Msg("Smoke test passed")
}
