package config

import (
	"path/filepath"
	"time"

	"github.com/arthur-debert/sawkit/pkg/errors"
	"github.com/arthur-debert/sawkit/pkg/types"
	"github.com/pelletier/go-toml/v2"
)

// Record is the install record written after a successful install. Its
// install.root and shell.* keys line up with Config so Load can layer it.
type Record struct {
	Install RecordInstall `toml:"install"`
	Shell   RecordShell   `toml:"shell"`
}

// RecordInstall describes the installed tree
type RecordInstall struct {
	Root            string    `toml:"root"`
	Binary          string    `toml:"binary"`
	BinaryChecksum  string    `toml:"binary_checksum,omitempty"`
	RulesDir        string    `toml:"rules_dir"`
	ChainsawVersion string    `toml:"chainsaw_version,omitempty"`
	SawkitVersion   string    `toml:"sawkit_version,omitempty"`
	InstalledAt     time.Time `toml:"installed_at"`
}

// RecordShell locates the shell integration
type RecordShell struct {
	AliasFile   string `toml:"alias_file"`
	StartupFile string `toml:"startup_file"`
}

const recordHeader = "# Generated by sawkit install. Do not edit; rerun `sawkit install` instead.\n\n"

// WriteInstallRecord writes rec to path, creating the directory
func WriteInstallRecord(fsys types.FS, path string, rec Record) error {
	data, err := toml.Marshal(rec)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigWrite, "failed to encode install record")
	}

	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(path))
	}

	if err := fsys.WriteFile(path, append([]byte(recordHeader), data...), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "failed to write install record %s", path)
	}

	return nil
}

// ReadInstallRecord reads the record at path. A missing file returns an
// ErrNotFound error.
func ReadInstallRecord(fsys types.FS, path string) (*Record, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrNotFound, "no install record at %s", path)
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read install record %s", path)
	}

	var rec Record
	if err := toml.Unmarshal(data, &rec); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse install record %s", path)
	}

	return &rec, nil
}

// RemoveInstallRecord deletes the record; a missing record is not an error
func RemoveInstallRecord(fsys types.FS, path string) error {
	if err := fsys.Remove(path); err != nil && !errors.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to remove install record %s", path)
	}
	return nil
}

// Marshal renders cfg as TOML for `config show`
func Marshal(cfg *Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return data, nil
}
