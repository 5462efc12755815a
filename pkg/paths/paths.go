package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/sawkit/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for sawkit
	EnvConfigDir = "SAWKIT_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Fixed names inside the installation layout. User-configurable locations
// (root, alias file, startup file) live in pkg/config instead.
const (
	// AppDirName is the directory name for sawkit-specific files
	AppDirName = "sawkit"

	// ConfigFileName is the user configuration file inside the config dir
	ConfigFileName = "config.toml"

	// InstallRecordName is the generated record of the last install
	InstallRecordName = "install.toml"

	// LogFileName is the name of the log file
	LogFileName = "sawkit.log"

	// BinDirName is the stable binary directory under the install root
	BinDirName = "bin"

	// BinaryName is the name of the installed chainsaw executable
	BinaryName = "chainsaw"

	// SigmaDirName is the rules checkout under the install root
	SigmaDirName = "sigma"

	// SigmaRulesDirName is the rules tree inside the Sigma checkout
	SigmaRulesDirName = "rules"

	// BackupInfix separates the alias file name from the backup timestamp
	BackupInfix = ".backup."

	// BackupTimeFormat has second resolution
	BackupTimeFormat = "20060102_150405"
)

// Default user-facing locations, relative to the home directory
const (
	DefaultInstallRoot = "~/tools/chainsaw"
	DefaultAliasFile   = "~/.bash_aliases"
	DefaultStartupFile = "~/.bashrc"
	DefaultArtifact    = "target/release/chainsaw"
	DefaultCargoBinDir = "~/.cargo/bin"
)

// Options are the inputs every path is derived from. Empty fields fall back
// to the defaults above.
type Options struct {
	HomeDir     string
	InstallRoot string
	AliasFile   string
	StartupFile string
	Artifact    string
	CargoBinDir string
	ConfigDir   string
	StateDir    string
}

// Paths provides centralized path management for sawkit
type Paths interface {
	HomeDir() string
	InstallBase() string
	InstallRoot() string
	BinDir() string
	BinaryPath() string
	ArtifactPath() string
	SigmaDir() string
	SigmaRulesDir() string
	AliasFile() string
	StartupFile() string
	CargoBinDir() string
	ConfigDir() string
	ConfigFile() string
	InstallRecordPath() string
	StateDir() string
	LogFilePath() string
}

// paths provides centralized path management for sawkit
type paths struct {
	homeDir     string
	installRoot string
	aliasFile   string
	startupFile string
	artifact    string
	cargoBinDir string
	configDir   string
	stateDir    string
}

// New resolves all locations from opts
func New(opts Options) (Paths, error) {
	home := opts.HomeDir
	if home == "" {
		h, err := GetHomeDirectory()
		if err != nil {
			return nil, err
		}
		home = h
	}

	p := &paths{homeDir: filepath.Clean(home)}

	var err error
	if p.installRoot, err = p.resolve(opts.InstallRoot, DefaultInstallRoot); err != nil {
		return nil, err
	}
	if err := ValidateInstallRoot(p.installRoot, p.homeDir); err != nil {
		return nil, err
	}
	if p.aliasFile, err = p.resolve(opts.AliasFile, DefaultAliasFile); err != nil {
		return nil, err
	}
	if p.startupFile, err = p.resolve(opts.StartupFile, DefaultStartupFile); err != nil {
		return nil, err
	}
	if p.cargoBinDir, err = p.resolve(opts.CargoBinDir, DefaultCargoBinDir); err != nil {
		return nil, err
	}

	artifact := opts.Artifact
	if artifact == "" {
		artifact = DefaultArtifact
	}
	if filepath.IsAbs(artifact) {
		return nil, errors.Newf(errors.ErrInvalidInput, "build artifact must be relative to the install root: %s", artifact)
	}
	p.artifact = filepath.Clean(artifact)

	p.setupXDGDirs(opts)

	return p, nil
}

// resolve expands ~ against the configured home and makes value absolute
func (p *paths) resolve(value, fallback string) (string, error) {
	if value == "" {
		value = fallback
	}
	if err := ValidatePath(value); err != nil {
		return "", err
	}

	expanded := expandHomeWith(p.homeDir, value)
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", value)
	}
	return filepath.Clean(abs), nil
}

// setupXDGDirs initializes XDG directories, respecting environment overrides
func (p *paths) setupXDGDirs(opts Options) {
	switch {
	case opts.ConfigDir != "":
		p.configDir = expandHomeWith(p.homeDir, opts.ConfigDir)
	case os.Getenv(EnvConfigDir) != "":
		p.configDir = expandHomeWith(p.homeDir, os.Getenv(EnvConfigDir))
	default:
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	// XDG_STATE_HOME is read directly so that tests setting it after
	// package init still take effect.
	switch {
	case opts.StateDir != "":
		p.stateDir = expandHomeWith(p.homeDir, opts.StateDir)
	case os.Getenv("XDG_STATE_HOME") != "":
		p.stateDir = filepath.Join(os.Getenv("XDG_STATE_HOME"), AppDirName)
	default:
		p.stateDir = filepath.Join(p.homeDir, ".local", "state", AppDirName)
	}
}

// HomeDir returns the home directory all defaults are relative to
func (p *paths) HomeDir() string {
	return p.homeDir
}

// InstallBase returns the parent of the installation root
func (p *paths) InstallBase() string {
	return filepath.Dir(p.installRoot)
}

// InstallRoot returns CHAINSAW_HOME
func (p *paths) InstallRoot() string {
	return p.installRoot
}

// BinDir returns the stable binary directory
func (p *paths) BinDir() string {
	return filepath.Join(p.installRoot, BinDirName)
}

// BinaryPath returns the installed chainsaw executable
func (p *paths) BinaryPath() string {
	return filepath.Join(p.BinDir(), BinaryName)
}

// ArtifactPath returns where cargo leaves the release build
func (p *paths) ArtifactPath() string {
	return filepath.Join(p.installRoot, p.artifact)
}

// SigmaDir returns the Sigma checkout
func (p *paths) SigmaDir() string {
	return filepath.Join(p.installRoot, SigmaDirName)
}

// SigmaRulesDir returns SIGMA_RULES
func (p *paths) SigmaRulesDir() string {
	return filepath.Join(p.SigmaDir(), SigmaRulesDirName)
}

func (p *paths) AliasFile() string {
	return p.aliasFile
}

func (p *paths) StartupFile() string {
	return p.startupFile
}

// CargoBinDir returns where rustup places cargo
func (p *paths) CargoBinDir() string {
	return p.cargoBinDir
}

// ConfigDir returns the XDG config directory for sawkit
func (p *paths) ConfigDir() string {
	return p.configDir
}

// ConfigFile returns the user configuration file
func (p *paths) ConfigFile() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

// InstallRecordPath returns the generated install record
func (p *paths) InstallRecordPath() string {
	return filepath.Join(p.configDir, InstallRecordName)
}

// StateDir returns the XDG state directory for sawkit
func (p *paths) StateDir() string {
	return p.stateDir
}

// LogFilePath returns the path to the sawkit log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// BackupPath returns the backup name for file taken at t. attempt > 0
// appends a numeric suffix for backups taken within the same second.
func BackupPath(file string, t time.Time, attempt int) string {
	name := file + BackupInfix + t.Format(BackupTimeFormat)
	if attempt > 0 {
		name = fmt.Sprintf("%s.%d", name, attempt)
	}
	return name
}

// IsBackupOf reports whether name is a backup of file
func IsBackupOf(file, name string) bool {
	return strings.HasPrefix(name, file+BackupInfix)
}

// ExpandHome expands a leading ~ using the current user's home directory
func ExpandHome(path string) string {
	home, err := GetHomeDirectory()
	if err != nil {
		return path
	}
	return expandHomeWith(home, path)
}

// expandHomeWith expands ~ to home
func expandHomeWith(home, path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	if len(path) == 1 {
		return home
	}

	// Handle both ~/ and ~
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(home, path[2:])
	}

	// ~something (not the user's home)
	return path
}

// ContractHome replaces a leading home directory with ~ for display
func ContractHome(home, path string) string {
	if home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+string(filepath.Separator)) {
		return "~" + path[len(home):]
	}
	return path
}

// GetHomeDirectory returns the user's home directory with proper error handling
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Try the HOME environment variable as a fallback
		if home := os.Getenv(EnvHome); home != "" {
			return home, nil
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get home directory")
	}
	return homeDir, nil
}
