// Package shell owns the generated alias block and its wiring into the
// user's startup file.
//
// The block helpers (RenderBlock, StripBlocks, ReplaceBlock) are pure
// string functions. Integration applies them to the alias file in a fixed
// order: backup, ensure the file exists, strip, append, ensure the startup
// file sources the alias file. A block that cannot be parsed cleanly stops
// the run before any file is touched.
package shell
