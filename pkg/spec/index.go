package spec

import "github.com/casskeeper/casskeeper/pkg/cql"

type (
	// IndexOption is one entry of the flat options map an index may carry.
	// Keys and values always render single-quoted.
	IndexOption struct {
		Name  string
		Value string
	}

	// CreateIndexSpecification describes a CREATE INDEX operation. The index
	// name is optional; custom indexes name an implementation class via
	// Using.
	CreateIndexSpecification struct {
		name           *cql.Identifier
		keyspace       *cql.Identifier
		table          cql.Identifier
		column         cql.Identifier
		columnFunction string
		ifNotExists    bool
		custom         bool
		using          string
		options        []IndexOption
		err            error
	}

	// DropIndexSpecification describes a DROP INDEX operation.
	DropIndexSpecification struct {
		keyspace *cql.Identifier
		name     cql.Identifier
		ifExists bool
		err      error
	}
)

// CreateIndex starts a create-index specification on the given table and
// column. Pass an empty name for an unnamed index.
//
// Example:
//
//	idx := spec.CreateIndex("idx_email", "users", "email")
func CreateIndex(name, table, column string) *CreateIndexSpecification {
	s := &CreateIndexSpecification{}
	if name != "" {
		id, err := identifier("create index", name)
		if err != nil {
			s.err = err
		}
		s.name = &id
	}

	tableID, err := identifier("create index", table)
	if err != nil && s.err == nil {
		s.err = err
	}
	s.table = tableID

	columnID, err := identifier("create index", column)
	if err != nil && s.err == nil {
		s.err = err
	}
	s.column = columnID

	return s
}

// InKeyspace qualifies the table name with a keyspace.
func (s *CreateIndexSpecification) InKeyspace(keyspace string) *CreateIndexSpecification {
	ks, err := identifier("create index", keyspace)
	if err != nil && s.err == nil {
		s.err = err
	}
	s.keyspace = &ks
	return s
}

// IfNotExists adds the IF NOT EXISTS guard.
func (s *CreateIndexSpecification) IfNotExists() *CreateIndexSpecification {
	s.ifNotExists = true
	return s
}

// ColumnFunction wraps the indexed column in a collection function such as
// KEYS, VALUES, ENTRIES, or FULL.
func (s *CreateIndexSpecification) ColumnFunction(fn string) *CreateIndexSpecification {
	s.columnFunction = fn
	return s
}

// Using marks the index as CUSTOM with the given implementation class.
func (s *CreateIndexSpecification) Using(class string) *CreateIndexSpecification {
	s.custom = true
	s.using = class
	return s
}

// WithOption appends an index option. Options render in insertion order.
func (s *CreateIndexSpecification) WithOption(name, value string) *CreateIndexSpecification {
	s.options = append(s.options, IndexOption{Name: name, Value: value})
	return s
}

// Name returns the index name, or nil for an unnamed index.
func (s *CreateIndexSpecification) Name() *cql.Identifier { return s.name }

// Keyspace returns the qualifying keyspace, or nil for an unqualified name.
func (s *CreateIndexSpecification) Keyspace() *cql.Identifier { return s.keyspace }

// Table returns the indexed table's name.
func (s *CreateIndexSpecification) Table() cql.Identifier { return s.table }

// Column returns the indexed column's name.
func (s *CreateIndexSpecification) Column() cql.Identifier { return s.column }

// GetColumnFunction returns the collection function, or "" when the column is
// indexed directly.
func (s *CreateIndexSpecification) GetColumnFunction() string { return s.columnFunction }

// IsIfNotExists reports whether the IF NOT EXISTS guard is set.
func (s *CreateIndexSpecification) IsIfNotExists() bool { return s.ifNotExists }

// IsCustom reports whether this is a CUSTOM index.
func (s *CreateIndexSpecification) IsCustom() bool { return s.custom }

// UsingClass returns the custom index implementation class, or "".
func (s *CreateIndexSpecification) UsingClass() string { return s.using }

// Options returns the index options in insertion order.
func (s *CreateIndexSpecification) Options() []IndexOption { return s.options }

// Validate implements Specification.
func (s *CreateIndexSpecification) Validate() error { return s.err }

func (s *CreateIndexSpecification) specification() {}

// DropIndex starts a drop-index specification for the named index.
func DropIndex(name string) *DropIndexSpecification {
	s := &DropIndexSpecification{}
	s.name, s.err = identifier("drop index", name)
	return s
}

// InKeyspace qualifies the index name with a keyspace.
func (s *DropIndexSpecification) InKeyspace(keyspace string) *DropIndexSpecification {
	ks, err := identifier("drop index", keyspace)
	if err != nil && s.err == nil {
		s.err = err
	}
	s.keyspace = &ks
	return s
}

// IfExists adds the IF EXISTS guard.
func (s *DropIndexSpecification) IfExists() *DropIndexSpecification {
	s.ifExists = true
	return s
}

// Keyspace returns the qualifying keyspace, or nil for an unqualified name.
func (s *DropIndexSpecification) Keyspace() *cql.Identifier { return s.keyspace }

// Name returns the index name.
func (s *DropIndexSpecification) Name() cql.Identifier { return s.name }

// IsIfExists reports whether the IF EXISTS guard is set.
func (s *DropIndexSpecification) IsIfExists() bool { return s.ifExists }

// Validate implements Specification.
func (s *DropIndexSpecification) Validate() error { return s.err }

func (s *DropIndexSpecification) specification() {}
