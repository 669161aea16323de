package generator

import (
	"strings"

	"github.com/casskeeper/casskeeper/pkg/spec"
)

// createIndex generates a CREATE INDEX statement. Custom indexes add the
// CUSTOM keyword and a USING clause naming the implementation class; the
// optional index options render as a flat, always-quoted map.
func createIndex(s *spec.CreateIndexSpecification) string {
	var parts []string

	if s.IsCustom() {
		parts = append(parts, "CREATE CUSTOM INDEX")
	} else {
		parts = append(parts, "CREATE INDEX")
	}

	if s.IsIfNotExists() {
		parts = append(parts, "IF NOT EXISTS")
	}

	if s.Name() != nil {
		parts = append(parts, s.Name().CQL())
	}

	parts = append(parts, "ON", qualifiedName(s.Keyspace(), s.Table()))

	column := s.Column().CQL()
	if fn := s.GetColumnFunction(); fn != "" {
		column = fn + "(" + column + ")"
	}
	parts = append(parts, "("+column+")")

	if s.IsCustom() && s.UsingClass() != "" {
		parts = append(parts, "USING '"+s.UsingClass()+"'")
	}

	if len(s.Options()) > 0 {
		parts = append(parts, "WITH OPTIONS = "+renderIndexOptions(s.Options()))
	}

	return strings.Join(parts, " ") + ";"
}

// dropIndex generates a DROP INDEX statement.
func dropIndex(s *spec.DropIndexSpecification) string {
	parts := []string{"DROP INDEX"}

	if s.IsIfExists() {
		parts = append(parts, "IF EXISTS")
	}

	parts = append(parts, qualifiedName(s.Keyspace(), s.Name()))

	return strings.Join(parts, " ") + ";"
}
