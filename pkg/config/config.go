package config

import (
	"strings"

	"github.com/arthur-debert/sawkit/pkg/errors"
	"github.com/arthur-debert/sawkit/pkg/paths"
)

// Config is the fully merged sawkit configuration
type Config struct {
	Install   Install   `koanf:"install" toml:"install"`
	Repos     Repos     `koanf:"repos" toml:"repos"`
	Toolchain Toolchain `koanf:"toolchain" toml:"toolchain"`
	Build     Build     `koanf:"build" toml:"build"`
	Shell     Shell     `koanf:"shell" toml:"shell"`
	Hunt      Hunt      `koanf:"hunt" toml:"hunt"`
	Rules     Rules     `koanf:"rules" toml:"rules"`
}

// Install holds the installation root (CHAINSAW_HOME)
type Install struct {
	Root string `koanf:"root" toml:"root"`
}

// Repo describes one repository to clone
type Repo struct {
	Label  string `koanf:"label" toml:"label"`
	URL    string `koanf:"url" toml:"url"`
	Branch string `koanf:"branch" toml:"branch"`
	Depth  int    `koanf:"depth" toml:"depth"`
}

// Repos are the two repositories the installer fetches
type Repos struct {
	Chainsaw Repo `koanf:"chainsaw" toml:"chainsaw"`
	Sigma    Repo `koanf:"sigma" toml:"sigma"`
}

// Toolchain describes how to detect and install the build toolchain
type Toolchain struct {
	Name           string   `koanf:"name" toml:"name"`
	Probe          []string `koanf:"probe" toml:"probe"`
	InstallCommand string   `koanf:"install_command" toml:"install_command"`
	ManualURL      string   `koanf:"manual_url" toml:"manual_url"`
	EnvFile        string   `koanf:"env_file" toml:"env_file"`
	BinDir         string   `koanf:"bin_dir" toml:"bin_dir"`
}

// Build describes the release build of the tool
type Build struct {
	Command   []string `koanf:"command" toml:"command"`
	Artifact  string   `koanf:"artifact" toml:"artifact"`
	SmokeArgs []string `koanf:"smoke_args" toml:"smoke_args"`
}

// Shell locates the files the shell integration writes
type Shell struct {
	AliasFile   string `koanf:"alias_file" toml:"alias_file"`
	StartupFile string `koanf:"startup_file" toml:"startup_file"`
}

// Hunt configures the hunt shortcut
type Hunt struct {
	RulePrefix    string `koanf:"rule_prefix" toml:"rule_prefix"`
	Mapping       string `koanf:"mapping" toml:"mapping"`
	MaxCategories int    `koanf:"max_categories" toml:"max_categories"`
}

// Rules configures rule-file discovery
type Rules struct {
	Extensions []string `koanf:"extensions" toml:"extensions"`
}

// PathOptions maps the configuration onto paths.Options
func (c *Config) PathOptions(home string) paths.Options {
	return paths.Options{
		HomeDir:     home,
		InstallRoot: c.Install.Root,
		AliasFile:   c.Shell.AliasFile,
		StartupFile: c.Shell.StartupFile,
		Artifact:    c.Build.Artifact,
		CargoBinDir: c.Toolchain.BinDir,
	}
}

// validate checks the merged configuration and normalizes it in place
func (c *Config) validate() error {
	if c.Install.Root == "" {
		return errors.New(errors.ErrConfigValid, "install.root must be set")
	}

	for name, repo := range map[string]Repo{"chainsaw": c.Repos.Chainsaw, "sigma": c.Repos.Sigma} {
		if repo.URL == "" {
			return errors.Newf(errors.ErrConfigValid, "repos.%s.url must be set", name)
		}
		if repo.Depth < 0 {
			return errors.Newf(errors.ErrConfigValid, "repos.%s.depth must not be negative", name)
		}
	}
	if c.Repos.Chainsaw.Label == "" {
		c.Repos.Chainsaw.Label = "Chainsaw"
	}
	if c.Repos.Sigma.Label == "" {
		c.Repos.Sigma.Label = "Sigma rules"
	}

	if len(c.Toolchain.Probe) == 0 {
		return errors.New(errors.ErrConfigValid, "toolchain.probe must name a command")
	}
	if len(c.Build.Command) == 0 {
		return errors.New(errors.ErrConfigValid, "build.command must name a command")
	}

	if c.Hunt.MaxCategories <= 0 {
		c.Hunt.MaxCategories = 10
	}

	if len(c.Rules.Extensions) == 0 {
		return errors.New(errors.ErrConfigValid, "rules.extensions must list at least one extension")
	}
	for i, ext := range c.Rules.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Rules.Extensions[i] = ext
	}

	return nil
}
