// Package config loads the project configuration for casskeeper: cluster
// connection settings and the location of the schema definition file.
package config

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Defaults applied when the configuration leaves values unset.
const (
	DefaultHost        = "127.0.0.1"
	DefaultPort        = 9042
	DefaultConsistency = "QUORUM"
	DefaultTimeout     = Duration(10 * time.Second)
)

// Duration is a time.Duration that unmarshals from YAML strings like "30s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return errors.Wrapf(err, "invalid duration %q", s)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the duration as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

type (
	// Cassandra holds the cluster connection settings.
	Cassandra struct {
		// Hosts lists the contact points. Defaults to a single local node.
		Hosts []string `yaml:"hosts,omitempty"`

		// Port is the native protocol port. Defaults to 9042.
		Port int `yaml:"port,omitempty"`

		// Keyspace, when set, becomes the session's default keyspace.
		Keyspace string `yaml:"keyspace,omitempty"`

		// Username and Password enable password authentication when both are
		// set.
		Username string `yaml:"username,omitempty"`
		Password string `yaml:"password,omitempty"`

		// Consistency names the default consistency level for statements.
		Consistency string `yaml:"consistency,omitempty"`

		// Timeout bounds individual requests.
		Timeout Duration `yaml:"timeout,omitempty"`
	}

	// Config is the project configuration for schema management.
	Config struct {
		// Cassandra contains the cluster connection settings.
		Cassandra Cassandra `yaml:"cassandra"`

		// Schema is the path to the schema definition file.
		Schema string `yaml:"schema"`
	}
)

// LoadConfig parses a configuration from the provided reader and fills in
// defaults for anything left unset.
//
// Example:
//
//	cfg, err := config.LoadConfig(strings.NewReader(`
//	cassandra:
//	  hosts: [cassandra-1, cassandra-2]
//	  keyspace: app
//	schema: schema.yaml
//	`))
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if len(cfg.Cassandra.Hosts) == 0 {
		cfg.Cassandra.Hosts = []string{DefaultHost}
	}
	if cfg.Cassandra.Port == 0 {
		cfg.Cassandra.Port = DefaultPort
	}
	if cfg.Cassandra.Consistency == "" {
		cfg.Cassandra.Consistency = DefaultConsistency
	}
	if cfg.Cassandra.Timeout == 0 {
		cfg.Cassandra.Timeout = DefaultTimeout
	}

	return &cfg, nil
}

// LoadConfigFile loads a configuration from the given file path. This is a
// convenience wrapper around LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}
