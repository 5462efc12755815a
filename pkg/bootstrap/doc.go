// Package bootstrap implements the install procedure: an ordered list of
// named steps run by Pipeline.
//
// Install runs fail-fast: the first fatal error stops the run and later
// steps are reported as skipped. Nothing already done is rolled back; the
// reinstall guard cleans up on the next run instead. Update runs the same
// machinery with ContinueOnError so every failure is reported.
//
// Steps talk to the outside world only through types.FS and types.Runner,
// which keeps the whole procedure testable against an in-memory home.
package bootstrap
