// Package cmd implements the sqldiag command line interface.
//
// Each subcommand wraps one formatting entry point from pkg/errfmt; batch
// formats a YAML list of fragments in one pass. The CLI adds no formatting
// behavior of its own.
package cmd
