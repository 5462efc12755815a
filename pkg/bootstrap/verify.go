package bootstrap

import (
	"context"

	"github.com/arthur-debert/sawkit/pkg/filesystem"
)

// VerifyRules checks that the Sigma checkout contains its rules directory.
// It never fails.
func (b *Bootstrapper) VerifyRules(ctx context.Context, r *Report) error {
	dir := b.paths.SigmaRulesDir()
	if filesystem.IsDir(b.fs, dir) {
		b.logger.Info().Str("dir", dir).Msg("Sigma rules found")
		return nil
	}

	b.logger.Warn().Str("dir", dir).Msg("Sigma rules directory missing")
	r.Warn("Sigma rules directory %s not found; the checkout may be incomplete", dir)
	return nil
}
