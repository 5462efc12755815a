// Package config handles configuration management for sawkit.
//
// Configuration is assembled with koanf from, in increasing priority:
//
//  1. the embedded defaults (embedded/defaults.toml)
//  2. the user's config.toml in the sawkit config directory
//  3. the install record written by the last successful install
//  4. SAWKIT_* environment variables
//  5. command-line flag overrides
//
// The result is decoded into a typed Config. The install record is the
// only file sawkit writes here; it is how later commands (hunt, rules,
// update) find an installation made with a non-default root.
package config
