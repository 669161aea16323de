package generator

import (
	"testing"

	"github.com/casskeeper/casskeeper/pkg/cql"
	"github.com/stretchr/testify/require"
)

func TestRenderOptionMap(t *testing.T) {
	t.Run("empty map renders empty string", func(t *testing.T) {
		require.Equal(t, "", renderOptionMap(cql.NewOptionMap()))
	})

	t.Run("keys are always single quoted", func(t *testing.T) {
		m := cql.NewOptionMap().Set(cql.NewOption("replication_factor", true, false, false), 2)
		require.Equal(t, "{ 'replication_factor' : 2 }", renderOptionMap(m))
	})

	t.Run("nil value keeps the key with an empty value", func(t *testing.T) {
		m := cql.NewOptionMap().
			Set(cql.NewOption("sstable_compression", true, false, false), nil).
			Set(cql.NewOption("chunk_length_kb", true, false, false), 128)
		require.Equal(t, "{ 'sstable_compression' : , 'chunk_length_kb' : 128 }", renderOptionMap(m))
	})

	t.Run("escape doubles single quotes before quoting", func(t *testing.T) {
		m := cql.NewOptionMap().Set(cql.NewOption("class", true, true, true), "it's quoted")
		require.Equal(t, "{ 'class' : 'it''s quoted' }", renderOptionMap(m))
	})

	t.Run("quote without escape", func(t *testing.T) {
		m := cql.NewOptionMap().Set(cql.NewOption("mode", true, false, true), "FAST")
		require.Equal(t, "{ 'mode' : 'FAST' }", renderOptionMap(m))
	})

	t.Run("entries render in insertion order", func(t *testing.T) {
		forward := cql.NewOptionMap().
			Set(cql.NewOption("a", true, false, false), 1).
			Set(cql.NewOption("b", true, false, false), 2)
		backward := cql.NewOptionMap().
			Set(cql.NewOption("b", true, false, false), 2).
			Set(cql.NewOption("a", true, false, false), 1)

		require.Equal(t, "{ 'a' : 1, 'b' : 2 }", renderOptionMap(forward))
		require.Equal(t, "{ 'b' : 2, 'a' : 1 }", renderOptionMap(backward))
	})

	t.Run("rendering twice is byte identical", func(t *testing.T) {
		m := cql.SimpleReplication(3)
		require.Equal(t, renderOptionMap(m), renderOptionMap(m))
	})
}

func TestOptionsClause(t *testing.T) {
	t.Run("empty input renders empty string", func(t *testing.T) {
		require.Equal(t, "", optionsClause(nil, cql.NewOptionMap()))
	})

	t.Run("leading clauses come first", func(t *testing.T) {
		m := cql.NewOptionMap().Set(cql.CommentOption, "log")
		clause := optionsClause([]string{"CLUSTERING ORDER BY (at DESC)"}, m)
		require.Equal(t, "WITH CLUSTERING ORDER BY (at DESC) AND comment = 'log'", clause)
	})

	t.Run("valueless option renders bare", func(t *testing.T) {
		m := cql.NewOptionMap().Set(cql.CompactStorageOption, nil)
		require.Equal(t, "WITH COMPACT STORAGE", optionsClause(nil, m))
	})
}
