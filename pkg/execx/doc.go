// Package execx runs external commands for sawkit.
//
// OSRunner is the only types.Runner used outside tests. It keeps its own
// PATH prefix so that a toolchain installed during the current run (cargo
// under ~/.cargo/bin) is visible to later steps without touching the
// process environment.
package execx
