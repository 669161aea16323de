// Package spec defines the specification value objects describing schema
// operations: create/alter/drop for keyspaces, tables, indexes, and
// user-defined types.
//
// Specifications are built through fluent builders and describe a single
// schema change as plain data. They perform no I/O and generate no CQL
// themselves; the generator package turns a finished specification into one
// statement string.
//
// Example usage:
//
//	table := spec.CreateTable("users").
//		PartitionKeyColumn("id", "uuid").
//		ClusteredKeyColumn("created_at", "timestamp").
//		Column("email", "text")
//
//	stmt, err := generator.CQL(table)
//
// Builders record the first construction problem they encounter (an invalid
// identifier, an empty column list, and so on) and surface it from Validate
// before any statement is generated. A specification is not safe for
// concurrent mutation; once fully built it can be rendered freely.
package spec
