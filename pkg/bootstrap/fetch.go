package bootstrap

import (
	"context"
	"strconv"

	"github.com/arthur-debert/sawkit/pkg/config"
	"github.com/arthur-debert/sawkit/pkg/errors"
	"github.com/arthur-debert/sawkit/pkg/filesystem"
	"github.com/arthur-debert/sawkit/pkg/types"
)

// Fetch clones repo into dest. There is no retry and a partial checkout is
// left in place for the reinstall guard to clean up.
func (b *Bootstrapper) Fetch(ctx context.Context, repo config.Repo, dest string) error {
	args := []string{"clone"}
	if repo.Branch != "" {
		args = append(args, "--branch", repo.Branch)
	}
	if repo.Depth > 0 {
		args = append(args, "--depth", strconv.Itoa(repo.Depth))
	}
	args = append(args, repo.URL, dest)

	b.logger.Info().Str("repo", repo.Label).Str("dest", dest).Msg("Cloning")
	_, err := b.runner.Run(ctx, types.Command{
		Name:        "git",
		Args:        args,
		Stdout:      b.output,
		Stderr:      b.output,
		Description: "clone " + repo.Label,
	})
	if err != nil {
		return errors.Wrapf(err, errors.ErrClone, "failed to clone %s from %s", repo.Label, repo.URL).
			WithDetail("label", repo.Label).
			WithDetail("url", repo.URL).
			WithDetail("dest", dest)
	}

	return nil
}

// Pull updates the checkout in dir
func (b *Bootstrapper) Pull(ctx context.Context, repo config.Repo, dir string) error {
	if !filesystem.IsDir(b.fs, dir) {
		return errors.Newf(errors.ErrNotFound, "%s checkout not found at %s; run sawkit install", repo.Label, dir)
	}

	b.logger.Info().Str("repo", repo.Label).Str("dir", dir).Msg("Pulling")
	_, err := b.runner.Run(ctx, types.Command{
		Name:        "git",
		Args:        []string{"pull"},
		Dir:         dir,
		Stdout:      b.output,
		Stderr:      b.output,
		Description: "pull " + repo.Label,
	})
	if err != nil {
		return errors.Wrapf(err, errors.ErrPull, "failed to update %s", repo.Label).
			WithDetail("label", repo.Label).
			WithDetail("dir", dir)
	}

	return nil
}

func (b *Bootstrapper) fetchStep(repo config.Repo, dest string) StepFunc {
	return func(ctx context.Context, r *Report) error {
		return b.Fetch(ctx, repo, dest)
	}
}

func (b *Bootstrapper) pullStep(repo config.Repo, dir string) StepFunc {
	return func(ctx context.Context, r *Report) error {
		return b.Pull(ctx, repo, dir)
	}
}
