package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/sawkit/pkg/errors"
	"github.com/arthur-debert/sawkit/pkg/logging"
	"github.com/arthur-debert/sawkit/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read as configuration
const EnvPrefix = "SAWKIT_"

// sections are the top-level keys an environment variable may target
var sections = map[string]bool{
	"install":   true,
	"repos":     true,
	"toolchain": true,
	"build":     true,
	"shell":     true,
	"hunt":      true,
	"rules":     true,
}

// envAliases are short names for the most commonly overridden keys
var envAliases = map[string]string{
	"root":         "install.root",
	"alias_file":   "shell.alias_file",
	"startup_file": "shell.startup_file",
}

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// ConfigDir holds config.toml and install.toml. Empty skips both.
	ConfigDir string

	// ConfigFile replaces <ConfigDir>/config.toml and must exist
	ConfigFile string

	// SkipRecord ignores the install record, used by a fresh install
	SkipRecord bool

	// SkipEnv ignores SAWKIT_* variables
	SkipEnv bool

	// Overrides are dotted keys set from command-line flags
	Overrides map[string]interface{}
}

// Load builds the merged configuration
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config.loader")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load default configuration")
	}

	userFile := opts.ConfigFile
	if userFile == "" && opts.ConfigDir != "" {
		userFile = filepath.Join(opts.ConfigDir, paths.ConfigFileName)
		if _, err := os.Stat(userFile); err != nil {
			userFile = ""
		}
	}
	if userFile != "" {
		if err := k.Load(file.Provider(userFile), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config file %s", userFile).
				WithDetail("path", userFile)
		}
		logger.Debug().Str("path", userFile).Msg("Loaded user config")
	}

	if !opts.SkipRecord && opts.ConfigDir != "" {
		recordFile := filepath.Join(opts.ConfigDir, paths.InstallRecordName)
		if _, err := os.Stat(recordFile); err == nil {
			if err := k.Load(file.Provider(recordFile), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load install record %s", recordFile).
					WithDetail("path", recordFile)
			}
			logger.Debug().Str("path", recordFile).Msg("Loaded install record")
		}
	}

	if !opts.SkipEnv {
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
		}
	}

	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply flag overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the embedded defaults only
func Default() *Config {
	cfg, err := Load(LoadOptions{SkipRecord: true, SkipEnv: true})
	if err != nil {
		panic(err)
	}
	return cfg
}

// envKey maps SAWKIT_SECTION_KEY to section.key. Repository keys take one
// more segment: SAWKIT_REPOS_SIGMA_DEPTH is repos.sigma.depth. Variables
// outside the known sections are ignored.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if key, ok := envAliases[s]; ok {
		return key
	}

	section, rest, ok := strings.Cut(s, "_")
	if !ok || !sections[section] || rest == "" {
		return ""
	}

	if section == "repos" {
		repo, key, ok := strings.Cut(rest, "_")
		if !ok || key == "" {
			return ""
		}
		return "repos." + repo + "." + key
	}

	return section + "." + rest
}
