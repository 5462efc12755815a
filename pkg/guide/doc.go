// Package guide provides the embedded user guide and topic-based help for
// the sawkit command tree. Topics are markdown files compiled into the
// binary; `sawkit help <topic>` and `sawkit guide [topic]` render them with
// glamour when writing to a terminal.
package guide
