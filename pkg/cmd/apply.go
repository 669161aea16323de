package cmd

import (
	"context"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/casskeeper/casskeeper/pkg/cassandra"
	"github.com/casskeeper/casskeeper/pkg/logger"
	"github.com/casskeeper/casskeeper/pkg/schema"
)

// apply returns the command that compiles the schema definition and executes
// the generated statements against the configured cluster.
//
// Example usage:
//
//	casskeeper apply
//	casskeeper apply --schema db/schema.yaml
func apply() *cli.Command {
	return &cli.Command{
		Name:  "apply",
		Usage: "Compile the schema definition and execute it against the cluster",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "schema",
				Aliases: []string{"s"},
				Usage:   "path to the schema definition (defaults to the config's schema entry)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			path := cmd.String("schema")
			if path == "" {
				path = cfg.Schema
			}
			if path == "" {
				return errors.New("no schema definition configured")
			}

			def, err := schema.LoadFile(path)
			if err != nil {
				return err
			}

			specs, err := def.Compile()
			if err != nil {
				return err
			}

			client, err := cassandra.Connect(cfg.Cassandra)
			if err != nil {
				return err
			}
			defer client.Close()

			if err := cassandra.Apply(ctx, client, specs...); err != nil {
				return err
			}

			logger.Log.Info("schema applied", zap.Int("statements", len(specs)))
			return nil
		},
	}
}
