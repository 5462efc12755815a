// Package paths provides centralized path handling for sawkit.
//
// Every location the installer touches is derived here from a handful of
// inputs (home directory, installation root, alias and startup files) so
// the rest of the code never joins path fragments by hand. It handles:
//
//   - The installation layout (root, bin, build artifact, Sigma checkout)
//   - Shell files (alias file, startup file, timestamped backups)
//   - XDG locations for sawkit's own config, install record and log
//   - Home expansion and normalization
//
// # Layout
//
// With the default root of ~/tools/chainsaw:
//
//	~/tools                               install base, created on demand
//	~/tools/chainsaw                      CHAINSAW_HOME, cloned tool source
//	~/tools/chainsaw/target/release/...   cargo build artifact
//	~/tools/chainsaw/bin/chainsaw         installed binary
//	~/tools/chainsaw/sigma                cloned rules dataset
//	~/tools/chainsaw/sigma/rules          SIGMA_RULES
//
// # Environment Variables
//
//   - SAWKIT_CONFIG_DIR: Override XDG config directory (default: $XDG_CONFIG_HOME/sawkit)
//   - XDG_STATE_HOME: Base for the log file (default: ~/.local/state)
package paths
