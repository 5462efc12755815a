package bootstrap

import (
	"context"
	"fmt"

	"github.com/arthur-debert/sawkit/pkg/errors"
	"github.com/arthur-debert/sawkit/pkg/filesystem"
	"github.com/arthur-debert/sawkit/pkg/types"
)

// Guard asks before replacing an existing installation. Declining returns
// ErrCancelled and leaves the filesystem untouched.
func (b *Bootstrapper) Guard(ctx context.Context, r *Report) error {
	root := b.paths.InstallRoot()
	if !filesystem.Exists(b.fs, root) {
		b.logger.Debug().Str("root", root).Msg("No existing installation")
		return nil
	}

	ok, err := b.confirmer.Confirm(types.ConfirmationRequest{
		Title:       fmt.Sprintf("Chainsaw is already installed at %s", root),
		Description: "Remove it and reinstall?",
		Items:       []string{root},
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to ask for confirmation")
	}
	if !ok {
		return errors.New(errors.ErrCancelled, "reinstall declined; existing installation left as is").
			WithDetail("root", root)
	}

	if err := b.fs.RemoveAll(root); err != nil {
		return errors.Wrapf(err, errors.ErrDirRemove, "failed to remove %s", root)
	}
	b.logger.Info().Str("root", root).Msg("Removed existing installation")

	return nil
}

// Prepare creates the base directory the installation root lives in
func (b *Bootstrapper) Prepare(ctx context.Context, r *Report) error {
	base := b.paths.InstallBase()
	if err := b.fs.MkdirAll(base, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", base)
	}
	return nil
}
