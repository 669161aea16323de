package spec

import "github.com/casskeeper/casskeeper/pkg/cql"

// ColumnSpecification describes one column of a table: its name, CQL data
// type, key role, and (for cluster columns) an optional explicit ordering.
type ColumnSpecification struct {
	name     cql.Identifier
	dataType string
	keyRole  KeyRole
	ordering Ordering
}

// Name returns the column name.
func (c ColumnSpecification) Name() cql.Identifier { return c.name }

// DataType returns the column's CQL data type, verbatim.
func (c ColumnSpecification) DataType() string { return c.dataType }

// KeyRole returns the column's primary key role.
func (c ColumnSpecification) KeyRole() KeyRole { return c.keyRole }

// Ordering returns the explicit sort order, or OrderingUnspecified when the
// column does not participate in the CLUSTERING ORDER BY clause.
func (c ColumnSpecification) Ordering() Ordering { return c.ordering }

// ColumnChange is one entry in an alter-table or alter-type change list. The
// four variants are AddColumn, DropColumn, AlterColumnType, and RenameColumn;
// changes apply in declaration order.
type ColumnChange interface {
	columnChange()
}

// AddColumn adds a column with the given type.
type AddColumn struct {
	Name     cql.Identifier
	DataType string
}

// DropColumn removes a column.
type DropColumn struct {
	Name cql.Identifier
}

// AlterColumnType changes a column's type in place.
type AlterColumnType struct {
	Name     cql.Identifier
	DataType string
}

// RenameColumn renames a column.
type RenameColumn struct {
	From cql.Identifier
	To   cql.Identifier
}

func (AddColumn) columnChange()       {}
func (DropColumn) columnChange()      {}
func (AlterColumnType) columnChange() {}
func (RenameColumn) columnChange()    {}
