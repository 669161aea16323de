package config_test

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/casskeeper/casskeeper/pkg/config"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		cfg, err := config.LoadConfig(strings.NewReader(`
cassandra:
  hosts: [cassandra-1, cassandra-2]
  port: 19042
  keyspace: app
  username: admin
  password: secret
  consistency: LOCAL_QUORUM
  timeout: 30s
schema: db/schema.yaml
`))
		require.NoError(t, err)
		require.Equal(t, []string{"cassandra-1", "cassandra-2"}, cfg.Cassandra.Hosts)
		require.Equal(t, 19042, cfg.Cassandra.Port)
		require.Equal(t, "app", cfg.Cassandra.Keyspace)
		require.Equal(t, "admin", cfg.Cassandra.Username)
		require.Equal(t, "LOCAL_QUORUM", cfg.Cassandra.Consistency)
		require.Equal(t, 30*time.Second, cfg.Cassandra.Timeout.Std())
		require.Equal(t, "db/schema.yaml", cfg.Schema)
	})

	t.Run("defaults fill unset values", func(t *testing.T) {
		cfg, err := config.LoadConfig(strings.NewReader("schema: schema.yaml\n"))
		require.NoError(t, err)
		require.Equal(t, []string{config.DefaultHost}, cfg.Cassandra.Hosts)
		require.Equal(t, config.DefaultPort, cfg.Cassandra.Port)
		require.Equal(t, config.DefaultConsistency, cfg.Cassandra.Consistency)
		require.Equal(t, config.DefaultTimeout, cfg.Cassandra.Timeout)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := config.LoadConfig(strings.NewReader("cassandra: [not, a, map]"))
		require.Error(t, err)
	})
}

func TestLoadConfigFile(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}
