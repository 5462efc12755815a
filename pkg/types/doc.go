// Package types defines the core interfaces shared across sawkit:
// the filesystem abstraction, the command runner that every external
// tool invocation goes through, and the confirmation contract used by
// the reinstall guard.
package types
