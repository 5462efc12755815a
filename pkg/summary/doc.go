// Package summary describes the state of an installation: where things
// live, which chainsaw version answers, how many rules are present and
// whether the shell integration is in place.
//
// Collect never changes anything and never fails. Every query that cannot
// be answered shows up as Unknown instead.
package summary
