package shell

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/sawkit/pkg/errors"
	"github.com/arthur-debert/sawkit/pkg/filesystem"
	"github.com/arthur-debert/sawkit/pkg/logging"
	"github.com/arthur-debert/sawkit/pkg/paths"
	"github.com/arthur-debert/sawkit/pkg/types"
	"github.com/rs/zerolog"
)

// maxBackupAttempts bounds the numeric suffixes tried within one second
const maxBackupAttempts = 1000

// Options configures an Integration
type Options struct {
	FS          types.FS
	AliasFile   string
	StartupFile string

	// HomeDir enables ~/ and $HOME/ forms in the startup file check
	HomeDir string

	// Now defaults to time.Now
	Now func() time.Time
}

// Integration writes the generated block into the alias file and makes the
// startup file source it
type Integration struct {
	fs          types.FS
	aliasFile   string
	startupFile string
	homeDir     string
	now         func() time.Time
	logger      zerolog.Logger
}

// Result describes what an Install or Remove changed
type Result struct {
	AliasFile     string `json:"aliasFile"`
	StartupFile   string `json:"startupFile"`
	BackupFile    string `json:"backupFile,omitempty"`
	BlocksRemoved int    `json:"blocksRemoved"`
	BlockWritten  bool   `json:"blockWritten"`
	SourceAdded   bool   `json:"sourceAdded"`
	SourceRemoved bool   `json:"sourceRemoved"`
}

// NewIntegration creates an Integration
func NewIntegration(opts Options) *Integration {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Integration{
		fs:          opts.FS,
		aliasFile:   opts.AliasFile,
		startupFile: opts.StartupFile,
		homeDir:     opts.HomeDir,
		now:         now,
		logger:      logging.GetLogger("shell.integration"),
	}
}

// Install replaces the generated block in the alias file with one rendered
// from env and ensures the startup file sources the alias file
func (i *Integration) Install(env Env) (*Result, error) {
	result := &Result{AliasFile: i.aliasFile, StartupFile: i.startupFile}

	content, existed, err := i.readAlias()
	if err != nil {
		return nil, err
	}

	updated, removed, err := ReplaceBlock(content, env)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrMarkerMismatch, "refusing to edit %s", i.aliasFile).
			WithDetail("path", i.aliasFile)
	}
	result.BlocksRemoved = removed

	if existed {
		backup, err := i.Backup()
		if err != nil {
			return nil, err
		}
		result.BackupFile = backup
	}

	if err := i.EnsureExists(); err != nil {
		return nil, err
	}

	if err := i.fs.WriteFile(i.aliasFile, []byte(updated), 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", i.aliasFile)
	}
	result.BlockWritten = true

	i.logger.Info().
		Str("file", i.aliasFile).
		Int("replaced", removed).
		Msg("Wrote generated alias block")

	added, err := i.EnsureSourced()
	if err != nil {
		return nil, err
	}
	result.SourceAdded = added

	return result, nil
}

// Remove strips every generated block from the alias file and drops the
// source block sawkit added to the startup file. Lines the user wrote are
// left alone.
func (i *Integration) Remove() (*Result, error) {
	result := &Result{AliasFile: i.aliasFile, StartupFile: i.startupFile}

	content, existed, err := i.readAlias()
	if err != nil {
		return nil, err
	}

	if existed {
		stripped, removed, err := StripBlocks(content)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrMarkerMismatch, "refusing to edit %s", i.aliasFile).
				WithDetail("path", i.aliasFile)
		}

		if removed > 0 {
			backup, err := i.Backup()
			if err != nil {
				return nil, err
			}
			result.BackupFile = backup

			if err := i.fs.WriteFile(i.aliasFile, []byte(stripped), 0644); err != nil {
				return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", i.aliasFile)
			}
			result.BlocksRemoved = removed
			i.logger.Info().Str("file", i.aliasFile).Int("removed", removed).Msg("Removed generated alias block")
		}
	}

	dropped, err := i.removeSourced()
	if err != nil {
		return nil, err
	}
	result.SourceRemoved = dropped

	return result, nil
}

// Backup copies the alias file to a timestamped sibling and returns its
// path. Existing backups are never overwritten; a numeric suffix is added
// when one was already taken in the same second. Returns "" when there is
// nothing to back up.
func (i *Integration) Backup() (string, error) {
	info, err := i.fs.Stat(i.aliasFile)
	if err != nil {
		if errors.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", i.aliasFile)
	}

	now := i.now()
	for attempt := 0; attempt < maxBackupAttempts; attempt++ {
		candidate := paths.BackupPath(i.aliasFile, now, attempt)
		if filesystem.Exists(i.fs, candidate) {
			continue
		}

		if err := filesystem.CopyFile(i.fs, i.aliasFile, candidate, info.Mode().Perm()); err != nil {
			return "", errors.Wrapf(err, errors.ErrBackup, "failed to back up %s", i.aliasFile)
		}

		i.logger.Info().Str("backup", candidate).Msg("Backed up alias file")
		return candidate, nil
	}

	return "", errors.Newf(errors.ErrBackup, "too many backups of %s in one second", i.aliasFile)
}

// EnsureExists creates an empty alias file when there is none
func (i *Integration) EnsureExists() error {
	if filesystem.Exists(i.fs, i.aliasFile) {
		return nil
	}

	if err := i.fs.MkdirAll(filepath.Dir(i.aliasFile), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(i.aliasFile))
	}
	if err := i.fs.WriteFile(i.aliasFile, nil, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileCreate, "failed to create %s", i.aliasFile)
	}

	i.logger.Debug().Str("file", i.aliasFile).Msg("Created alias file")
	return nil
}

// EnsureSourced appends the source snippet to the startup file unless the
// file already mentions the alias file. Reports whether it wrote.
func (i *Integration) EnsureSourced() (bool, error) {
	content, err := i.readOptional(i.startupFile)
	if err != nil {
		return false, err
	}

	if ReferencesFile(content, i.aliasFile, i.homeDir) {
		i.logger.Debug().Str("file", i.startupFile).Msg("Startup file already sources alias file")
		return false, nil
	}

	var b strings.Builder
	b.WriteString(content)
	if content != "" && !strings.HasSuffix(content, "\n") {
		b.WriteString("\n")
	}
	if content != "" {
		b.WriteString("\n")
	}
	b.WriteString(SourceSnippet(i.aliasFile))

	if err := i.fs.MkdirAll(filepath.Dir(i.startupFile), 0755); err != nil {
		return false, errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(i.startupFile))
	}
	if err := i.fs.WriteFile(i.startupFile, []byte(b.String()), 0644); err != nil {
		return false, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", i.startupFile)
	}

	i.logger.Info().Str("file", i.startupFile).Msg("Added alias source line to startup file")
	return true, nil
}

// Installed reports whether the alias file holds a generated block
func (i *Integration) Installed() (bool, error) {
	content, _, err := i.readAlias()
	if err != nil {
		return false, err
	}
	n, err := CountBlocks(content)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// removeSourced removes the exact snippet EnsureSourced writes
func (i *Integration) removeSourced() (bool, error) {
	content, err := i.readOptional(i.startupFile)
	if err != nil || content == "" {
		return false, err
	}

	snippet := SourceSnippet(i.aliasFile)
	if !strings.Contains(content, snippet) {
		return false, nil
	}

	updated := strings.ReplaceAll(content, "\n"+snippet, "")
	updated = strings.ReplaceAll(updated, snippet, "")

	if err := i.fs.WriteFile(i.startupFile, []byte(updated), 0644); err != nil {
		return false, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", i.startupFile)
	}

	i.logger.Info().Str("file", i.startupFile).Msg("Removed alias source line from startup file")
	return true, nil
}

func (i *Integration) readAlias() (string, bool, error) {
	data, err := i.fs.ReadFile(i.aliasFile)
	if err != nil {
		if errors.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", i.aliasFile)
	}
	return string(data), true, nil
}

func (i *Integration) readOptional(path string) (string, error) {
	data, err := i.fs.ReadFile(path)
	if err != nil {
		if errors.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path)
	}
	return string(data), nil
}

