// Package cmd wires up the casskeeper CLI: loading configuration, compiling
// schema definitions, and rendering or applying the resulting statements.
package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/casskeeper/casskeeper/pkg/config"
	"github.com/casskeeper/casskeeper/pkg/logger"
)

// Version identifies a build of the CLI.
type Version struct {
	Version string
	Commit  string
	Date    string
}

// Run builds and executes the casskeeper CLI with the given arguments.
func Run(ctx context.Context, v Version, args []string) error {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", v.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", v.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", v.Date)
	}

	app := &cli.Command{
		Name:  "casskeeper",
		Usage: "A tool for managing Cassandra keyspace schemas",
		Description: `casskeeper compiles declarative schema definitions into CQL DDL
statements and can apply them to a live cluster.`,
		Version: v.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the casskeeper config file",
				Sources: cli.EnvVars("CASSKEEPER_CONFIG"),
				Value:   "casskeeper.yaml",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (debug, info, warn, error)",
				Value: "info",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, logger.Init(cmd.String("log-level"))
		},
		Commands: []*cli.Command{
			render(),
			apply(),
		},
	}

	return app.Run(ctx, args)
}

// loadConfig reads the config file named by the global --config flag.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	return config.LoadConfigFile(cmd.String("config"))
}
