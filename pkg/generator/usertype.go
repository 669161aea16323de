package generator

import (
	"strings"

	"github.com/casskeeper/casskeeper/pkg/spec"
)

// createUserType generates a CREATE TYPE statement with its parenthesized
// field list.
func createUserType(s *spec.CreateUserTypeSpecification) string {
	var parts []string

	parts = append(parts, "CREATE TYPE")

	if s.IsIfNotExists() {
		parts = append(parts, "IF NOT EXISTS")
	}

	parts = append(parts, qualifiedName(s.Keyspace(), s.Name()))

	fields := make([]string, 0, len(s.Fields()))
	for _, f := range s.Fields() {
		fields = append(fields, f.Name().CQL()+" "+f.DataType())
	}
	parts = append(parts, "("+strings.Join(fields, ", ")+")")

	return strings.Join(parts, " ") + ";"
}

// alterUserType generates an ALTER TYPE statement. The change list is folded
// left to right; a rename immediately following another rename joins the
// running RENAME clause with AND instead of starting a new one, matching the
// grammar's single-RENAME form.
func alterUserType(s *spec.AlterUserTypeSpecification) string {
	parts := []string{"ALTER TYPE", qualifiedName(s.Keyspace(), s.Name())}

	var previous spec.ColumnChange
	for _, change := range s.Changes() {
		if rename, ok := change.(spec.RenameColumn); ok {
			if _, chained := previous.(spec.RenameColumn); chained {
				parts = append(parts, "AND "+rename.From.CQL()+" TO "+rename.To.CQL())
			} else {
				parts = append(parts, "RENAME "+rename.From.CQL()+" TO "+rename.To.CQL())
			}
		} else {
			parts = append(parts, changeClause(change))
		}
		previous = change
	}

	return strings.Join(parts, " ") + ";"
}

// dropUserType generates a DROP TYPE statement.
func dropUserType(s *spec.DropUserTypeSpecification) string {
	parts := []string{"DROP TYPE"}

	if s.IsIfExists() {
		parts = append(parts, "IF EXISTS")
	}

	parts = append(parts, qualifiedName(s.Keyspace(), s.Name()))

	return strings.Join(parts, " ") + ";"
}
