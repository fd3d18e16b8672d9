package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/tessella/sqldiag/pkg/errfmt"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// fragment is one entry in a batch file.
type fragment struct {
	Kind  string `yaml:"kind"`
	Input string `yaml:"input"`
}

// batchCmd formats a YAML list of fragments, one result per line. Batch files
// are how error-template fixtures are kept alongside the templates:
//
//   - kind: ident
//     input: db.tbl
//   - kind: conf
//     input: engine.sql.ansi.enabled
//   - kind: stmt
//     input: desc partition
//
// Supported kinds: ident, typename, stmt, conf, confval, option, schema.
func batchCmd() *cli.Command {
	return &cli.Command{
		Name:      "batch",
		Usage:     "Format a YAML list of fragments",
		ArgsUsage: "<file>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path, err := singleArg(cmd)
			if err != nil {
				return err
			}

			content, err := os.ReadFile(path)
			if err != nil {
				return errors.Wrapf(err, "failed to read batch file: %s", path)
			}

			var fragments []fragment
			if err := yaml.Unmarshal(content, &fragments); err != nil {
				return errors.Wrapf(err, "failed to parse batch file: %s", path)
			}

			for i, f := range fragments {
				formatted, err := formatFragment(f)
				if err != nil {
					return errors.Wrapf(err, "fragment %d", i)
				}
				fmt.Fprintln(cmd.Writer, formatted)
			}

			return nil
		},
	}
}

func formatFragment(f fragment) (string, error) {
	switch f.Kind {
	case "ident":
		return errfmt.IdentifierString(f.Input)
	case "typename":
		return errfmt.TypeName(f.Input), nil
	case "stmt":
		return errfmt.Statement(f.Input), nil
	case "conf":
		return errfmt.Conf(f.Input), nil
	case "confval":
		return errfmt.ConfValue(f.Input), nil
	case "option":
		return errfmt.DSOption(f.Input), nil
	case "schema":
		return errfmt.Schema(f.Input), nil
	default:
		return "", errors.Errorf("unknown fragment kind: %s", f.Kind)
	}
}
