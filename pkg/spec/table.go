package spec

import "github.com/casskeeper/casskeeper/pkg/cql"

type (
	// CreateTableSpecification describes a CREATE TABLE operation, including
	// the ordered column list with key roles and the table option map.
	CreateTableSpecification struct {
		keyspace    *cql.Identifier
		name        cql.Identifier
		ifNotExists bool
		columns     []ColumnSpecification
		options     *cql.OptionMap
		err         error
	}

	// AlterTableSpecification describes an ALTER TABLE operation as an
	// order-significant list of column changes plus a table option map.
	AlterTableSpecification struct {
		keyspace *cql.Identifier
		name     cql.Identifier
		changes  []ColumnChange
		options  *cql.OptionMap
		err      error
	}

	// DropTableSpecification describes a DROP TABLE operation.
	DropTableSpecification struct {
		keyspace *cql.Identifier
		name     cql.Identifier
		ifExists bool
		err      error
	}
)

// CreateTable starts a create-table specification for the named table.
//
// Example:
//
//	table := spec.CreateTable("events").
//		InKeyspace("analytics").
//		PartitionKeyColumn("tenant", "uuid").
//		ClusteredKeyColumnOrdered("at", "timestamp", spec.Descending).
//		Column("payload", "blob")
func CreateTable(name string) *CreateTableSpecification {
	s := &CreateTableSpecification{options: cql.NewOptionMap()}
	s.name, s.err = identifier("create table", name)
	return s
}

// InKeyspace qualifies the table name with a keyspace.
func (s *CreateTableSpecification) InKeyspace(keyspace string) *CreateTableSpecification {
	ks, err := identifier("create table", keyspace)
	if err != nil && s.err == nil {
		s.err = err
	}
	s.keyspace = &ks
	return s
}

// IfNotExists adds the IF NOT EXISTS guard.
func (s *CreateTableSpecification) IfNotExists() *CreateTableSpecification {
	s.ifNotExists = true
	return s
}

// Column appends a regular column.
func (s *CreateTableSpecification) Column(name, dataType string) *CreateTableSpecification {
	return s.column(name, dataType, NoKey, OrderingUnspecified)
}

// PartitionKeyColumn appends a partition key column. Multiple partition key
// columns form a composite partition key in declaration order.
func (s *CreateTableSpecification) PartitionKeyColumn(name, dataType string) *CreateTableSpecification {
	return s.column(name, dataType, PartitionKey, OrderingUnspecified)
}

// ClusteredKeyColumn appends a cluster key column with the server default
// ordering.
func (s *CreateTableSpecification) ClusteredKeyColumn(name, dataType string) *CreateTableSpecification {
	return s.column(name, dataType, ClusterKey, OrderingUnspecified)
}

// ClusteredKeyColumnOrdered appends a cluster key column with an explicit
// sort order, which places it in the CLUSTERING ORDER BY clause.
func (s *CreateTableSpecification) ClusteredKeyColumnOrdered(name, dataType string, ordering Ordering) *CreateTableSpecification {
	return s.column(name, dataType, ClusterKey, ordering)
}

func (s *CreateTableSpecification) column(name, dataType string, role KeyRole, ordering Ordering) *CreateTableSpecification {
	id, err := identifier("create table", name)
	if err != nil && s.err == nil {
		s.err = err
	}
	s.columns = append(s.columns, ColumnSpecification{name: id, dataType: dataType, keyRole: role, ordering: ordering})
	return s
}

// With adds a table option. Options render in insertion order.
func (s *CreateTableSpecification) With(opt cql.Option, value any) *CreateTableSpecification {
	s.options.Set(opt, value)
	return s
}

// WithCompactStorage adds the COMPACT STORAGE option, which is only legal at
// creation time.
func (s *CreateTableSpecification) WithCompactStorage() *CreateTableSpecification {
	return s.With(cql.CompactStorageOption, nil)
}

// Keyspace returns the qualifying keyspace, or nil for an unqualified name.
func (s *CreateTableSpecification) Keyspace() *cql.Identifier { return s.keyspace }

// Name returns the table name.
func (s *CreateTableSpecification) Name() cql.Identifier { return s.name }

// IsIfNotExists reports whether the IF NOT EXISTS guard is set.
func (s *CreateTableSpecification) IsIfNotExists() bool { return s.ifNotExists }

// Columns returns the columns in declaration order.
func (s *CreateTableSpecification) Columns() []ColumnSpecification { return s.columns }

// Options returns the table options in insertion order.
func (s *CreateTableSpecification) Options() *cql.OptionMap { return s.options }

// Validate implements Specification. Creating a table with no columns or
// without a partition key is a construction error.
func (s *CreateTableSpecification) Validate() error {
	if s.err != nil {
		return s.err
	}
	if len(s.columns) == 0 {
		return &InvalidSpecificationError{Kind: "create table", Reason: "at least one column is required"}
	}
	hasPartitionKey := false
	for _, c := range s.columns {
		if c.KeyRole() == PartitionKey {
			hasPartitionKey = true
			break
		}
	}
	if !hasPartitionKey {
		return &InvalidSpecificationError{Kind: "create table", Reason: "at least one partition key column is required"}
	}
	return nil
}

func (s *CreateTableSpecification) specification() {}

// AlterTable starts an alter-table specification for the named table.
func AlterTable(name string) *AlterTableSpecification {
	s := &AlterTableSpecification{options: cql.NewOptionMap()}
	s.name, s.err = identifier("alter table", name)
	return s
}

// InKeyspace qualifies the table name with a keyspace.
func (s *AlterTableSpecification) InKeyspace(keyspace string) *AlterTableSpecification {
	ks, err := identifier("alter table", keyspace)
	if err != nil && s.err == nil {
		s.err = err
	}
	s.keyspace = &ks
	return s
}

// Add appends an add-column change.
func (s *AlterTableSpecification) Add(name, dataType string) *AlterTableSpecification {
	id := s.changeIdentifier(name)
	s.changes = append(s.changes, AddColumn{Name: id, DataType: dataType})
	return s
}

// Drop appends a drop-column change.
func (s *AlterTableSpecification) Drop(name string) *AlterTableSpecification {
	s.changes = append(s.changes, DropColumn{Name: s.changeIdentifier(name)})
	return s
}

// Alter appends an alter-column-type change.
func (s *AlterTableSpecification) Alter(name, dataType string) *AlterTableSpecification {
	id := s.changeIdentifier(name)
	s.changes = append(s.changes, AlterColumnType{Name: id, DataType: dataType})
	return s
}

// Rename appends a rename-column change.
func (s *AlterTableSpecification) Rename(from, to string) *AlterTableSpecification {
	s.changes = append(s.changes, RenameColumn{From: s.changeIdentifier(from), To: s.changeIdentifier(to)})
	return s
}

// With adds a table option. Options render in insertion order.
func (s *AlterTableSpecification) With(opt cql.Option, value any) *AlterTableSpecification {
	s.options.Set(opt, value)
	return s
}

func (s *AlterTableSpecification) changeIdentifier(name string) cql.Identifier {
	id, err := identifier("alter table", name)
	if err != nil && s.err == nil {
		s.err = err
	}
	return id
}

// Keyspace returns the qualifying keyspace, or nil for an unqualified name.
func (s *AlterTableSpecification) Keyspace() *cql.Identifier { return s.keyspace }

// Name returns the table name.
func (s *AlterTableSpecification) Name() cql.Identifier { return s.name }

// Changes returns the column changes in declaration order.
func (s *AlterTableSpecification) Changes() []ColumnChange { return s.changes }

// Options returns the table options in insertion order.
func (s *AlterTableSpecification) Options() *cql.OptionMap { return s.options }

// Validate implements Specification.
func (s *AlterTableSpecification) Validate() error { return s.err }

func (s *AlterTableSpecification) specification() {}

// DropTable starts a drop-table specification for the named table.
func DropTable(name string) *DropTableSpecification {
	s := &DropTableSpecification{}
	s.name, s.err = identifier("drop table", name)
	return s
}

// InKeyspace qualifies the table name with a keyspace.
func (s *DropTableSpecification) InKeyspace(keyspace string) *DropTableSpecification {
	ks, err := identifier("drop table", keyspace)
	if err != nil && s.err == nil {
		s.err = err
	}
	s.keyspace = &ks
	return s
}

// IfExists adds the IF EXISTS guard.
func (s *DropTableSpecification) IfExists() *DropTableSpecification {
	s.ifExists = true
	return s
}

// Keyspace returns the qualifying keyspace, or nil for an unqualified name.
func (s *DropTableSpecification) Keyspace() *cql.Identifier { return s.keyspace }

// Name returns the table name.
func (s *DropTableSpecification) Name() cql.Identifier { return s.name }

// IsIfExists reports whether the IF EXISTS guard is set.
func (s *DropTableSpecification) IsIfExists() bool { return s.ifExists }

// Validate implements Specification.
func (s *DropTableSpecification) Validate() error { return s.err }

func (s *DropTableSpecification) specification() {}
