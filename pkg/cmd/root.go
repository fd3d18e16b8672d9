package cmd

import (
	"github.com/urfave/cli/v3"
)

// New builds the sqldiag CLI. The tool exposes the diagnostic formatter from
// the shell, which is handy when authoring or reviewing engine error message
// templates: every fragment printed here matches what the engine would embed
// in a real diagnostic.
func New(version string) *cli.Command {
	return &cli.Command{
		Name:    "sqldiag",
		Usage:   "Format SQL fragments the way engine diagnostics do",
		Version: version,
		Commands: []*cli.Command{
			identCmd(),
			typeNameCmd(),
			stmtCmd(),
			confCmd(),
			batchCmd(),
		},
	}
}
