// Package cassandra connects to a cluster and executes generated schema
// statements, plus thin query/update helpers on top of the driver session.
//
// The generator stays pure; this package is where statement strings meet the
// network.
package cassandra

import (
	"context"

	gocql "github.com/apache/cassandra-gocql-driver/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/casskeeper/casskeeper/pkg/config"
	"github.com/casskeeper/casskeeper/pkg/logger"
)

// Client wraps a driver session configured from project configuration.
type Client struct {
	session *gocql.Session
}

// Connect creates a session against the configured cluster.
//
// Example:
//
//	client, err := cassandra.Connect(cfg.Cassandra)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
func Connect(cfg config.Cassandra) (*Client, error) {
	cluster := gocql.NewCluster(cfg.Hosts...)
	cluster.Port = cfg.Port
	cluster.Keyspace = cfg.Keyspace
	cluster.Timeout = cfg.Timeout.Std()

	consistency, err := gocql.ParseConsistencyWrapper(cfg.Consistency)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid consistency %q", cfg.Consistency)
	}
	cluster.Consistency = consistency

	if cfg.Username != "" && cfg.Password != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: cfg.Username,
			Password: cfg.Password,
		}
	}

	session, err := cluster.CreateSession()
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to cluster")
	}

	logger.Log.Info("connected to cluster",
		zap.Strings("hosts", cfg.Hosts),
		zap.Int("port", cfg.Port),
	)

	return &Client{session: session}, nil
}

// Close tears down the session.
func (c *Client) Close() {
	c.session.Close()
}

// Run executes a single statement that returns no rows, such as generated
// DDL or an update.
func (c *Client) Run(ctx context.Context, stmt string, values ...any) error {
	return c.session.Query(stmt, values...).WithContext(ctx).Exec()
}

// Query executes a statement and returns the iterator over its rows. The
// caller owns closing the iterator.
func (c *Client) Query(ctx context.Context, stmt string, values ...any) *gocql.Iter {
	return c.session.Query(stmt, values...).WithContext(ctx).Iter()
}

// QueryRow executes a statement expected to return a single row and scans it
// into dest.
func (c *Client) QueryRow(ctx context.Context, stmt string, values []any, dest ...any) error {
	return c.session.Query(stmt, values...).WithContext(ctx).Scan(dest...)
}
