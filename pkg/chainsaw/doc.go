// Package chainsaw forwards commands to the installed chainsaw binary.
//
// It replaces the wrapper functions that used to live in the alias file:
// Run is the main wrapper, Hunt adds rule path shortcuts on top of
// `chainsaw hunt`, and Forward passes search, analyse and dump through
// unchanged. Output is streamed to the caller and the child's exit status
// is carried back in the returned error.
package chainsaw
