package generator

import (
	"strings"

	"github.com/casskeeper/casskeeper/pkg/cql"
	"github.com/casskeeper/casskeeper/pkg/spec"
)

// createTable generates a CREATE TABLE statement: the column list, the
// PRIMARY KEY clause, and a WITH clause carrying the clustering order ahead
// of any table options.
func createTable(s *spec.CreateTableSpecification) string {
	var parts []string

	parts = append(parts, "CREATE TABLE")

	if s.IsIfNotExists() {
		parts = append(parts, "IF NOT EXISTS")
	}

	parts = append(parts, qualifiedName(s.Keyspace(), s.Name()))

	var defs []string
	for _, col := range s.Columns() {
		defs = append(defs, col.Name().CQL()+" "+col.DataType())
	}
	defs = append(defs, "PRIMARY KEY ("+primaryKey(s.Columns())+")")
	parts = append(parts, "("+strings.Join(defs, ", ")+")")

	if clause := optionsClause(clusteringOrder(s.Columns()), s.Options()); clause != "" {
		parts = append(parts, clause)
	}

	return strings.Join(parts, " ") + ";"
}

// primaryKey renders the PRIMARY KEY column list. A composite partition key
// gets its own inner parentheses; a single partition column does not.
func primaryKey(columns []spec.ColumnSpecification) string {
	var partition, cluster []string
	for _, col := range columns {
		switch col.KeyRole() {
		case spec.PartitionKey:
			partition = append(partition, col.Name().CQL())
		case spec.ClusterKey:
			cluster = append(cluster, col.Name().CQL())
		}
	}

	key := strings.Join(partition, ", ")
	if len(partition) > 1 {
		key = "(" + key + ")"
	}
	if len(cluster) > 0 {
		key += ", " + strings.Join(cluster, ", ")
	}
	return key
}

// clusteringOrder builds the CLUSTERING ORDER BY clause from cluster columns
// carrying an explicit ordering. Returns nil when no column does.
func clusteringOrder(columns []spec.ColumnSpecification) []string {
	var ordered []string
	for _, col := range columns {
		if col.KeyRole() == spec.ClusterKey && col.Ordering() != spec.OrderingUnspecified {
			ordered = append(ordered, col.Name().CQL()+" "+col.Ordering().CQL())
		}
	}
	if len(ordered) == 0 {
		return nil
	}
	return []string{"CLUSTERING ORDER BY (" + strings.Join(ordered, ", ") + ")"}
}

// alterTable generates an ALTER TABLE statement: the change clauses in
// declaration order followed by any table options. COMPACT STORAGE is only
// legal at creation time and is rejected here.
func alterTable(s *spec.AlterTableSpecification) (string, error) {
	if s.Options().Has(cql.CompactStorageOption) {
		return "", &IllegalOptionError{Option: cql.CompactStorageOption.Name(), Statement: "ALTER TABLE"}
	}

	parts := []string{"ALTER TABLE", qualifiedName(s.Keyspace(), s.Name())}

	for _, change := range s.Changes() {
		parts = append(parts, changeClause(change))
	}

	if clause := optionsClause(nil, s.Options()); clause != "" {
		parts = append(parts, clause)
	}

	return strings.Join(parts, " ") + ";", nil
}

// changeClause renders a single column change.
func changeClause(change spec.ColumnChange) string {
	switch c := change.(type) {
	case spec.AddColumn:
		return "ADD " + c.Name.CQL() + " " + c.DataType
	case spec.DropColumn:
		return "DROP " + c.Name.CQL()
	case spec.AlterColumnType:
		return "ALTER " + c.Name.CQL() + " TYPE " + c.DataType
	case spec.RenameColumn:
		return "RENAME " + c.From.CQL() + " TO " + c.To.CQL()
	default:
		return ""
	}
}

// dropTable generates a DROP TABLE statement.
func dropTable(s *spec.DropTableSpecification) string {
	parts := []string{"DROP TABLE"}

	if s.IsIfExists() {
		parts = append(parts, "IF EXISTS")
	}

	parts = append(parts, qualifiedName(s.Keyspace(), s.Name()))

	return strings.Join(parts, " ") + ";"
}
