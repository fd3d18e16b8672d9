package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/tessella/sqldiag/pkg/errfmt"
	"github.com/urfave/cli/v3"
)

// identCmd formats a dotted identifier path.
//
// Examples:
//
//	# Plain path
//	sqldiag ident db.tbl
//
//	# Quoted segment containing a dot
//	sqldiag ident '`a.b`.c'
func identCmd() *cli.Command {
	return &cli.Command{
		Name:      "ident",
		Usage:     "Format a dotted identifier path",
		ArgsUsage: "<path>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			input, err := singleArg(cmd)
			if err != nil {
				return err
			}

			formatted, err := errfmt.IdentifierString(input)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.Writer, formatted)
			return nil
		},
	}
}

// typeNameCmd formats a raw type name.
func typeNameCmd() *cli.Command {
	return &cli.Command{
		Name:      "typename",
		Usage:     "Format a type name",
		ArgsUsage: "<name>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			input, err := singleArg(cmd)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.Writer, errfmt.TypeName(input))
			return nil
		},
	}
}

// stmtCmd formats a statement or clause keyword.
func stmtCmd() *cli.Command {
	return &cli.Command{
		Name:      "stmt",
		Usage:     "Format a statement keyword",
		ArgsUsage: "<text>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			input, err := singleArg(cmd)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.Writer, errfmt.Statement(input))
			return nil
		},
	}
}

// confCmd formats a configuration key.
func confCmd() *cli.Command {
	return &cli.Command{
		Name:      "conf",
		Usage:     "Format a configuration key",
		ArgsUsage: "<key>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			input, err := singleArg(cmd)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.Writer, errfmt.Conf(input))
			return nil
		},
	}
}

func singleArg(cmd *cli.Command) (string, error) {
	if cmd.Args().Len() != 1 {
		return "", errors.New("exactly one argument is required")
	}
	return cmd.Args().First(), nil
}
