// Package install implements `sawkit install`: the full bootstrap
// procedure followed by a summary of the installation.
package install
