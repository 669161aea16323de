package generator_test

import (
	"testing"

	"github.com/casskeeper/casskeeper/pkg/generator"
	"github.com/casskeeper/casskeeper/pkg/spec"
	"github.com/stretchr/testify/require"
)

func TestCreateIndex(t *testing.T) {
	tests := []struct {
		name     string
		spec     *spec.CreateIndexSpecification
		expected string
	}{
		{
			name:     "named index",
			spec:     spec.CreateIndex("idx_email", "users", "email"),
			expected: "CREATE INDEX idx_email ON users (email);",
		},
		{
			name:     "unnamed index",
			spec:     spec.CreateIndex("", "users", "email"),
			expected: "CREATE INDEX ON users (email);",
		},
		{
			name:     "if not exists with keyspace qualifier",
			spec:     spec.CreateIndex("idx_email", "users", "email").InKeyspace("app").IfNotExists(),
			expected: "CREATE INDEX IF NOT EXISTS idx_email ON app.users (email);",
		},
		{
			name:     "column function wraps the column",
			spec:     spec.CreateIndex("idx_tags", "posts", "tags").ColumnFunction("KEYS"),
			expected: "CREATE INDEX idx_tags ON posts (KEYS(tags));",
		},
		{
			name: "custom index with using clause",
			spec: spec.CreateIndex("idx_search", "posts", "body").
				Using("org.apache.cassandra.index.sasi.SASIIndex"),
			expected: "CREATE CUSTOM INDEX idx_search ON posts (body) " +
				"USING 'org.apache.cassandra.index.sasi.SASIIndex';",
		},
		{
			name: "custom index with options map",
			spec: spec.CreateIndex("idx_search", "posts", "body").
				Using("org.apache.cassandra.index.sasi.SASIIndex").
				WithOption("mode", "CONTAINS").
				WithOption("case_sensitive", "false"),
			expected: "CREATE CUSTOM INDEX idx_search ON posts (body) " +
				"USING 'org.apache.cassandra.index.sasi.SASIIndex' " +
				"WITH OPTIONS = {'mode': 'CONTAINS', 'case_sensitive': 'false'};",
		},
		{
			name: "option values escape embedded quotes",
			spec: spec.CreateIndex("idx_search", "posts", "body").
				Using("org.apache.cassandra.index.sasi.SASIIndex").
				WithOption("analyzed_filter", "it's"),
			expected: "CREATE CUSTOM INDEX idx_search ON posts (body) " +
				"USING 'org.apache.cassandra.index.sasi.SASIIndex' " +
				"WITH OPTIONS = {'analyzed_filter': 'it''s'};",
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

func TestDropIndex(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		stmt, err := generator.CQL(spec.DropIndex("idx_email"))
		require.NoError(t, err)
		require.Equal(t, "DROP INDEX idx_email;", stmt)
	})

	t.Run("if exists", func(t *testing.T) {
		stmt, err := generator.CQL(spec.DropIndex("idx_email").IfExists().InKeyspace("app"))
		require.NoError(t, err)
		require.Equal(t, "DROP INDEX IF EXISTS app.idx_email;", stmt)
	})
}

func TestCQL_NilSpecification(t *testing.T) {
	stmt, err := generator.CQL(nil)
	require.Empty(t, stmt)

	var unsupported *generator.UnsupportedSpecificationError
	require.ErrorAs(t, err, &unsupported)
}
