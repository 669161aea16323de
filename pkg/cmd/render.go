package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/casskeeper/casskeeper/pkg/consts"
	"github.com/casskeeper/casskeeper/pkg/generator"
	"github.com/casskeeper/casskeeper/pkg/schema"
)

// render returns the command that compiles the schema definition and prints
// the generated statements without touching any cluster.
//
// Example usage:
//
//	casskeeper render
//	casskeeper render --schema db/schema.yaml --out schema.cql
func render() *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "Compile the schema definition and print the CQL statements",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "schema",
				Aliases: []string{"s"},
				Usage:   "path to the schema definition (defaults to the config's schema entry)",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "write output to this file instead of stdout",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			out, err := renderSchema(cmd)
			if err != nil {
				return err
			}

			if path := cmd.String("out"); path != "" {
				return errors.Wrapf(os.WriteFile(path, out, consts.ModeFile), "failed to write %s", path)
			}

			_, err = fmt.Fprintln(cmd.Writer, string(bytes.TrimRight(out, "\n")))
			return err
		},
	}
}

// renderSchema compiles the configured schema definition into statement text.
func renderSchema(cmd *cli.Command) ([]byte, error) {
	path := cmd.String("schema")
	if path == "" {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return nil, err
		}
		path = cfg.Schema
	}
	if path == "" {
		return nil, errors.New("no schema definition configured")
	}

	def, err := schema.LoadFile(path)
	if err != nil {
		return nil, err
	}

	specs, err := def.Compile()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := generator.WriteStatements(&buf, specs...); err != nil {
		return nil, err
	}
	buf.WriteString("\n")

	return buf.Bytes(), nil
}
