package generator_test

import (
	"testing"

	"github.com/casskeeper/casskeeper/pkg/cql"
	"github.com/casskeeper/casskeeper/pkg/generator"
	"github.com/casskeeper/casskeeper/pkg/spec"
	"github.com/stretchr/testify/require"
)

func TestCreateTable(t *testing.T) {
	tests := []struct {
		name     string
		spec     *spec.CreateTableSpecification
		expected string
	}{
		{
			name: "single partition column, no inner parens",
			spec: spec.CreateTable("users").
				PartitionKeyColumn("id", "uuid").
				Column("email", "text"),
			expected: "CREATE TABLE users (id uuid, email text, PRIMARY KEY (id));",
		},
		{
			name: "composite partition key gets inner parens",
			spec: spec.CreateTable("events").
				PartitionKeyColumn("tenant", "uuid").
				PartitionKeyColumn("day", "date").
				ClusteredKeyColumn("at", "timestamp"),
			expected: "CREATE TABLE events (tenant uuid, day date, at timestamp, PRIMARY KEY ((tenant, day), at));",
		},
		{
			name: "clustering order only from explicitly ordered columns",
			spec: spec.CreateTable("events").
				PartitionKeyColumn("tenant", "uuid").
				ClusteredKeyColumnOrdered("at", "timestamp", spec.Descending).
				ClusteredKeyColumn("seq", "int"),
			expected: "CREATE TABLE events (tenant uuid, at timestamp, seq int, " +
				"PRIMARY KEY (tenant, at, seq)) WITH CLUSTERING ORDER BY (at DESC);",
		},
		{
			name: "clustering order precedes other options",
			spec: spec.CreateTable("events").
				PartitionKeyColumn("tenant", "uuid").
				ClusteredKeyColumnOrdered("at", "timestamp", spec.Ascending).
				With(cql.CommentOption, "event log"),
			expected: "CREATE TABLE events (tenant uuid, at timestamp, PRIMARY KEY (tenant, at)) " +
				"WITH CLUSTERING ORDER BY (at ASC) AND comment = 'event log';",
		},
		{
			name: "compact storage renders as bare keyword",
			spec: spec.CreateTable("legacy").
				PartitionKeyColumn("id", "uuid").
				WithCompactStorage(),
			expected: "CREATE TABLE legacy (id uuid, PRIMARY KEY (id)) WITH COMPACT STORAGE;",
		},
		{
			name: "if not exists with keyspace qualifier",
			spec: spec.CreateTable("users").
				InKeyspace("app").
				IfNotExists().
				PartitionKeyColumn("id", "uuid"),
			expected: "CREATE TABLE IF NOT EXISTS app.users (id uuid, PRIMARY KEY (id));",
		},
		{
			name: "escaped comment value",
			spec: spec.CreateTable("users").
				PartitionKeyColumn("id", "uuid").
				With(cql.CommentOption, "the user's table"),
			expected: "CREATE TABLE users (id uuid, PRIMARY KEY (id)) WITH comment = 'the user''s table';",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := generator.CQL(tt.spec)
			require.NoError(t, err)
			require.Equal(t, tt.expected, stmt)
		})
	}
}

func TestCreateTable_RequiresColumns(t *testing.T) {
	_, err := generator.CQL(spec.CreateTable("users"))
	require.Error(t, err)

	var invalid *spec.InvalidSpecificationError
	require.ErrorAs(t, err, &invalid)
}

func TestCreateTable_RequiresPartitionKey(t *testing.T) {
	tests := []struct {
		name string
		spec *spec.CreateTableSpecification
	}{
		{
			name: "cluster columns only",
			spec: spec.CreateTable("events").
				ClusteredKeyColumn("at", "timestamp").
				Column("payload", "blob"),
		},
		{
			name: "regular columns only",
			spec: spec.CreateTable("events").Column("payload", "blob"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := generator.CQL(tt.spec)
			require.Empty(t, stmt)

			var invalid *spec.InvalidSpecificationError
			require.ErrorAs(t, err, &invalid)
			require.Equal(t, "create table", invalid.Kind)
		})
	}
}

func TestAlterTable(t *testing.T) {
	tests := []struct {
		name     string
		spec     *spec.AlterTableSpecification
		expected string
	}{
		{
			name:     "add column",
			spec:     spec.AlterTable("users").Add("email", "text"),
			expected: "ALTER TABLE users ADD email text;",
		},
		{
			name:     "drop column",
			spec:     spec.AlterTable("users").Drop("email"),
			expected: "ALTER TABLE users DROP email;",
		},
		{
			name:     "alter column type",
			spec:     spec.AlterTable("users").Alter("score", "double"),
			expected: "ALTER TABLE users ALTER score TYPE double;",
		},
		{
			name:     "rename column",
			spec:     spec.AlterTable("users").Rename("email", "mail"),
			expected: "ALTER TABLE users RENAME email TO mail;",
		},
		{
			name: "changes apply in declaration order",
			spec: spec.AlterTable("users").
				InKeyspace("app").
				Add("email", "text").
				Drop("legacy_flag").
				Rename("uid", "id"),
			expected: "ALTER TABLE app.users ADD email text DROP legacy_flag RENAME uid TO id;",
		},
		{
			name: "options clause after changes",
			spec: spec.AlterTable("users").
				Add("email", "text").
				With(cql.GCGraceSecondsOption, 3600),
			expected: "ALTER TABLE users ADD email text WITH gc_grace_seconds = 3600;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := generator.CQL(tt.spec)
			require.NoError(t, err)
			require.Equal(t, tt.expected, stmt)
		})
	}
}

func TestAlterTable_RejectsCompactStorage(t *testing.T) {
	s := spec.AlterTable("users").Add("email", "text").With(cql.CompactStorageOption, nil)

	stmt, err := generator.CQL(s)
	require.Empty(t, stmt)

	var illegal *generator.IllegalOptionError
	require.ErrorAs(t, err, &illegal)
	require.Equal(t, "COMPACT STORAGE", illegal.Option)
	require.Equal(t, "ALTER TABLE", illegal.Statement)
}

func TestDropTable(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		stmt, err := generator.CQL(spec.DropTable("users"))
		require.NoError(t, err)
		require.Equal(t, "DROP TABLE users;", stmt)
	})

	t.Run("if exists", func(t *testing.T) {
		stmt, err := generator.CQL(spec.DropTable("users").IfExists())
		require.NoError(t, err)
		require.Equal(t, "DROP TABLE IF EXISTS users;", stmt)
	})

	t.Run("keyspace qualified", func(t *testing.T) {
		stmt, err := generator.CQL(spec.DropTable("users").InKeyspace("app"))
		require.NoError(t, err)
		require.Equal(t, "DROP TABLE app.users;", stmt)
	})
}
