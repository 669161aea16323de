package generator

import (
	"strings"

	"github.com/casskeeper/casskeeper/pkg/cql"
	"github.com/casskeeper/casskeeper/pkg/spec"
)

// createKeyspace generates a CREATE KEYSPACE statement. Missing replication
// and durable_writes options are filled in from defaults at render time; the
// specification itself is never touched, so repeated renders and concurrent
// renders of the same instance agree.
func createKeyspace(s *spec.CreateKeyspaceSpecification) string {
	var parts []string

	parts = append(parts, "CREATE KEYSPACE")

	if s.IsIfNotExists() {
		parts = append(parts, "IF NOT EXISTS")
	}

	parts = append(parts, s.Name().CQL())
	parts = append(parts, optionsClause(nil, withKeyspaceDefaults(s.Options())))

	return strings.Join(parts, " ") + ";"
}

// withKeyspaceDefaults layers the keyspace defaults over the caller's
// options: SimpleStrategy with a replication factor of 1 when no replication
// is given, durable writes on when not set. Caller-supplied entries keep
// their positions; injected defaults append in that order.
func withKeyspaceDefaults(options *cql.OptionMap) *cql.OptionMap {
	effective := cql.NewOptionMap()
	for _, e := range options.Entries() {
		effective.Set(e.Option, e.Value)
	}
	if !effective.Has(cql.ReplicationOption) {
		effective.Set(cql.ReplicationOption, cql.SimpleReplication(1))
	}
	if !effective.Has(cql.DurableWritesOption) {
		effective.Set(cql.DurableWritesOption, true)
	}
	return effective
}

// alterKeyspace generates an ALTER KEYSPACE statement. No defaults apply;
// only the caller's options render. Validation guarantees at least one.
func alterKeyspace(s *spec.AlterKeyspaceSpecification) string {
	parts := []string{"ALTER KEYSPACE", s.Name().CQL(), optionsClause(nil, s.Options())}

	return strings.Join(parts, " ") + ";"
}

// dropKeyspace generates a DROP KEYSPACE statement.
func dropKeyspace(s *spec.DropKeyspaceSpecification) string {
	parts := []string{"DROP KEYSPACE"}

	if s.IsIfExists() {
		parts = append(parts, "IF EXISTS")
	}

	parts = append(parts, s.Name().CQL())

	return strings.Join(parts, " ") + ";"
}
