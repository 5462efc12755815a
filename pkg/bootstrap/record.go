package bootstrap

import (
	"context"
	"time"

	"github.com/arthur-debert/sawkit/pkg/config"
	"github.com/arthur-debert/sawkit/pkg/errors"
	"github.com/arthur-debert/sawkit/pkg/internal/hashutil"
	"github.com/arthur-debert/sawkit/pkg/shell"
)

// WriteRecord persists where this installation lives
func (b *Bootstrapper) WriteRecord(ctx context.Context, r *Report) error {
	return config.WriteInstallRecord(b.fs, b.paths.InstallRecordPath(), b.record(b.now()))
}

// RefreshRecord updates the recorded version, keeping the install time
func (b *Bootstrapper) RefreshRecord(ctx context.Context, r *Report) error {
	installedAt := b.now()
	existing, err := config.ReadInstallRecord(b.fs, b.paths.InstallRecordPath())
	switch {
	case err == nil:
		installedAt = existing.Install.InstalledAt
	case !errors.IsErrorCode(err, errors.ErrNotFound):
		return err
	}
	return config.WriteInstallRecord(b.fs, b.paths.InstallRecordPath(), b.record(installedAt))
}

func (b *Bootstrapper) record(installedAt time.Time) config.Record {
	checksum, err := hashutil.FileChecksum(b.fs, b.paths.BinaryPath())
	if err != nil {
		b.logger.Debug().Err(err).Msg("Binary checksum unavailable")
	}
	return config.Record{
		Install: config.RecordInstall{
			Root:            b.paths.InstallRoot(),
			Binary:          b.paths.BinaryPath(),
			BinaryChecksum:  checksum,
			RulesDir:        b.paths.SigmaRulesDir(),
			ChainsawVersion: b.chainsawVersion,
			SawkitVersion:   b.version,
			InstalledAt:     installedAt.UTC().Truncate(time.Second),
		},
		Shell: config.RecordShell{
			AliasFile:   b.paths.AliasFile(),
			StartupFile: b.paths.StartupFile(),
		},
	}
}

// InstallShell writes the generated alias block and the startup source line
func (b *Bootstrapper) InstallShell(ctx context.Context, r *Report) error {
	integration := shell.NewIntegration(shell.Options{
		FS:          b.fs,
		AliasFile:   b.paths.AliasFile(),
		StartupFile: b.paths.StartupFile(),
		HomeDir:     b.paths.HomeDir(),
		Now:         b.now,
	})

	result, err := integration.Install(shell.NewEnv(b.paths, b.sawkit))
	if err != nil {
		return err
	}
	b.shellResult = result
	return nil
}
