// Package rules reads the Sigma rules dataset installed under SIGMA_RULES.
//
// The dataset is a tree of YAML rule files grouped by top-level category
// (windows, linux, cloud, ...). Store answers the questions the shell
// helpers used to answer with ls, grep and find: which categories exist,
// which rules mention a term, how many rules there are. Load parses one
// rule's metadata for `sawkit rules show`.
//
// Everything here is read-only.
package rules
