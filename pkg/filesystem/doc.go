// Package filesystem provides filesystem implementations for sawkit.
//
// This package contains implementations of the types.FS interface,
// including the standard OS filesystem and an afero-backed filesystem
// used by tests, plus small helpers (copy, existence checks) built on
// top of the interface.
package filesystem
