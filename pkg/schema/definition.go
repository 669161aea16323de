// Package schema loads declarative schema definition files and compiles them
// into specification values ready for generation.
//
// A definition file describes keyspaces with their user-defined types,
// tables, and indexes in YAML:
//
//	keyspaces:
//	  - name: app
//	    replication:
//	      class: SimpleStrategy
//	      replication_factor: 3
//	    tables:
//	      - name: users
//	        columns:
//	          - {name: id, type: uuid, key: partition}
//	          - {name: email, type: text}
//	        indexes:
//	          - {name: idx_email, column: email}
//
// Compile turns a definition into the ordered list of specifications that
// creates the schema: each keyspace first, then its types, tables, and
// indexes, all in declaration order.
package schema

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type (
	// Definition is the root of a schema definition file.
	Definition struct {
		Keyspaces []Keyspace `yaml:"keyspaces"`
	}

	// Keyspace describes one keyspace and the objects it contains.
	Keyspace struct {
		Name          string       `yaml:"name"`
		IfNotExists   bool         `yaml:"if_not_exists,omitempty"`
		Replication   *Replication `yaml:"replication,omitempty"`
		DurableWrites *bool        `yaml:"durable_writes,omitempty"`
		Types         []UserType   `yaml:"types,omitempty"`
		Tables        []Table      `yaml:"tables,omitempty"`
	}

	// Replication describes the keyspace replication strategy. For
	// SimpleStrategy set Factor; for NetworkTopologyStrategy list the
	// datacenters.
	Replication struct {
		Class       string       `yaml:"class"`
		Factor      int          `yaml:"replication_factor,omitempty"`
		Datacenters []Datacenter `yaml:"datacenters,omitempty"`
	}

	// Datacenter names one datacenter and its replica count.
	Datacenter struct {
		Name     string `yaml:"name"`
		Replicas int    `yaml:"replicas"`
	}

	// UserType describes a user-defined type.
	UserType struct {
		Name        string  `yaml:"name"`
		IfNotExists bool    `yaml:"if_not_exists,omitempty"`
		Fields      []Field `yaml:"fields"`
	}

	// Field is one field of a user-defined type.
	Field struct {
		Name string `yaml:"name"`
		Type string `yaml:"type"`
	}

	// Table describes a table, its columns, options, and secondary indexes.
	Table struct {
		Name        string    `yaml:"name"`
		IfNotExists bool      `yaml:"if_not_exists,omitempty"`
		Columns     []Column  `yaml:"columns"`
		Options     yaml.Node `yaml:"options,omitempty"`
		Indexes     []Index   `yaml:"indexes,omitempty"`
	}

	// Column is one table column. Key is "", "partition", or "cluster";
	// Order is "", "asc", or "desc" and only meaningful for cluster columns.
	Column struct {
		Name  string `yaml:"name"`
		Type  string `yaml:"type"`
		Key   string `yaml:"key,omitempty"`
		Order string `yaml:"order,omitempty"`
	}

	// Index describes a secondary index on one of the table's columns.
	Index struct {
		Name        string            `yaml:"name,omitempty"`
		IfNotExists bool              `yaml:"if_not_exists,omitempty"`
		Column      string            `yaml:"column"`
		Function    string            `yaml:"function,omitempty"`
		Using       string            `yaml:"using,omitempty"`
		Options     []IndexOptionPair `yaml:"options,omitempty"`
	}

	// IndexOptionPair is one entry of a custom index's options map.
	IndexOptionPair struct {
		Name  string `yaml:"name"`
		Value string `yaml:"value"`
	}
)

// Load parses a schema definition from the provided reader.
func Load(r io.Reader) (*Definition, error) {
	var def Definition
	if err := yaml.NewDecoder(r).Decode(&def); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal schema definition")
	}
	return &def, nil
}

// LoadFile loads a schema definition from the given file path.
func LoadFile(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return Load(f)
}
