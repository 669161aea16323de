package generator_test

import (
	"bytes"
	"testing"

	"github.com/casskeeper/casskeeper/pkg/generator"
	"github.com/casskeeper/casskeeper/pkg/spec"
	"github.com/stretchr/testify/require"
)

func TestWriteStatements(t *testing.T) {
	t.Run("statements separated by blank lines", func(t *testing.T) {
		var buf bytes.Buffer
		err := generator.WriteStatements(&buf,
			spec.DropTable("a"),
			spec.DropTable("b"),
		)
		require.NoError(t, err)
		require.Equal(t, "DROP TABLE a;\n\nDROP TABLE b;", buf.String())
	})

	t.Run("no specifications writes nothing", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, generator.WriteStatements(&buf))
		require.Empty(t, buf.String())
	})

	t.Run("failure names the offending statement", func(t *testing.T) {
		var buf bytes.Buffer
		err := generator.WriteStatements(&buf,
			spec.DropTable("a"),
			spec.CreateUserType("address"), // no fields
		)
		require.Error(t, err)
		require.Contains(t, err.Error(), "statement 2")
	})
}
