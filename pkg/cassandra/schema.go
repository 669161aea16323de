package cassandra

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/casskeeper/casskeeper/pkg/generator"
	"github.com/casskeeper/casskeeper/pkg/logger"
	"github.com/casskeeper/casskeeper/pkg/spec"
)

// Runner executes one statement against the cluster. *Client implements it;
// tests substitute fakes.
type Runner interface {
	Run(ctx context.Context, stmt string, values ...any) error
}

// Execute generates the statement for the specification and runs it.
// Generation failures surface before anything reaches the cluster.
func Execute(ctx context.Context, r Runner, s spec.Specification) error {
	stmt, err := generator.CQL(s)
	if err != nil {
		return err
	}

	logger.Log.Debug("executing schema statement", zap.String("stmt", stmt))
	if err := r.Run(ctx, stmt); err != nil {
		return errors.Wrapf(err, "failed to execute %q", stmt)
	}
	return nil
}

// Apply executes the specifications in order, stopping at the first failure.
// All statements are generated up front, so a specification that cannot
// render fails the whole batch before any statement runs.
func Apply(ctx context.Context, r Runner, specs ...spec.Specification) error {
	stmts := make([]string, 0, len(specs))
	for i, s := range specs {
		stmt, err := generator.CQL(s)
		if err != nil {
			return errors.Wrapf(err, "statement %d", i+1)
		}
		stmts = append(stmts, stmt)
	}

	for _, stmt := range stmts {
		logger.Log.Debug("executing schema statement", zap.String("stmt", stmt))
		if err := r.Run(ctx, stmt); err != nil {
			return errors.Wrapf(err, "failed to execute %q", stmt)
		}
	}
	return nil
}
