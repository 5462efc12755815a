// Package testutil provides utilities for testing sawkit components.
//
// Key components:
//   - Environment: in-memory filesystem, resolved paths and default
//     configuration for a fake home directory
//   - FakeRunner: scripted types.Runner that records every command
//   - MockRunner / MockConfirmer: testify mocks for expectation-style tests
//
// Usage guidelines:
//   - Prefer the in-memory filesystem; only pkg/execx and pkg/filesystem
//     need the real one
//   - Define test data inline, not in external files
package testutil
