package cql_test

import (
	"testing"

	"github.com/casskeeper/casskeeper/pkg/cql"
	"github.com/stretchr/testify/require"
)

func TestNewIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		rendered string
		quoted   bool
		wantErr  bool
	}{
		{name: "simple lowercase", input: "users", rendered: "users"},
		{name: "mixed case", input: "UserEvents", rendered: "UserEvents"},
		{name: "leading underscore", input: "_internal", rendered: "_internal"},
		{name: "digits after first char", input: "t2", rendered: "t2"},
		{name: "leading digit needs quoting", input: "2fast", rendered: `"2fast"`, quoted: true},
		{name: "doubled quote needs quoting", input: `with""quote`, rendered: `"with""quote"`, quoted: true},
		{name: "empty name", input: "", wantErr: true},
		{name: "embedded space", input: "no spaces", wantErr: true},
		{name: "single unescaped quote", input: `bad"name`, wantErr: true},
		{name: "hyphen", input: "no-hyphens", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := cql.NewIdentifier(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var invalid *cql.InvalidIdentifierError
				require.ErrorAs(t, err, &invalid)
				require.Equal(t, tt.input, invalid.Name)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.quoted, id.Quoted())
			require.Equal(t, tt.rendered, id.CQL())
		})
	}
}

func TestQuotedIdentifier(t *testing.T) {
	t.Run("forces quoting of legal bare names", func(t *testing.T) {
		id, err := cql.QuotedIdentifier("users")
		require.NoError(t, err)
		require.True(t, id.Quoted())
		require.Equal(t, `"users"`, id.CQL())
	})

	t.Run("still rejects illegal names", func(t *testing.T) {
		_, err := cql.QuotedIdentifier("not ok")
		require.Error(t, err)
	})
}

func TestParseIdentifier_RoundTrip(t *testing.T) {
	for _, name := range []string{"users", "UserEvents", "_t1", "2fast", `odd""name`} {
		t.Run(name, func(t *testing.T) {
			original, err := cql.NewIdentifier(name)
			require.NoError(t, err)

			reparsed, err := cql.ParseIdentifier(original.CQL())
			require.NoError(t, err)
			require.True(t, original.Equal(reparsed))
			require.Equal(t, original.CQL(), reparsed.CQL())
		})
	}
}

func TestMustIdentifier(t *testing.T) {
	require.Equal(t, "users", cql.MustIdentifier("users").CQL())
	require.Panics(t, func() { cql.MustIdentifier("not ok") })
}
