package cassandra_test

import (
	"context"
	"testing"

	"github.com/casskeeper/casskeeper/pkg/cassandra"
	"github.com/casskeeper/casskeeper/pkg/spec"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	stmts []string
	fail  string
}

func (f *fakeRunner) Run(_ context.Context, stmt string, _ ...any) error {
	if f.fail != "" && stmt == f.fail {
		return errors.New("boom")
	}
	f.stmts = append(f.stmts, stmt)
	return nil
}

func TestExecute(t *testing.T) {
	t.Run("runs the generated statement", func(t *testing.T) {
		r := &fakeRunner{}
		err := cassandra.Execute(context.Background(), r, spec.DropTable("users").IfExists())
		require.NoError(t, err)
		require.Equal(t, []string{"DROP TABLE IF EXISTS users;"}, r.stmts)
	})

	t.Run("generation failure reaches no runner", func(t *testing.T) {
		r := &fakeRunner{}
		err := cassandra.Execute(context.Background(), r, spec.CreateTable("users"))
		require.Error(t, err)
		require.Empty(t, r.stmts)
	})
}

func TestApply(t *testing.T) {
	t.Run("executes in order", func(t *testing.T) {
		r := &fakeRunner{}
		err := cassandra.Apply(context.Background(), r,
			spec.CreateKeyspace("app").IfNotExists().WithSimpleReplication(1),
			spec.CreateTable("users").InKeyspace("app").PartitionKeyColumn("id", "uuid"),
		)
		require.NoError(t, err)
		require.Len(t, r.stmts, 2)
		require.Contains(t, r.stmts[0], "CREATE KEYSPACE")
		require.Contains(t, r.stmts[1], "CREATE TABLE")
	})

	t.Run("one broken specification fails the whole batch up front", func(t *testing.T) {
		r := &fakeRunner{}
		err := cassandra.Apply(context.Background(), r,
			spec.DropTable("users"),
			spec.CreateUserType("address"), // no fields
		)
		require.Error(t, err)
		require.Empty(t, r.stmts)
	})

	t.Run("execution failure stops the batch", func(t *testing.T) {
		r := &fakeRunner{fail: "DROP TABLE b;"}
		err := cassandra.Apply(context.Background(), r,
			spec.DropTable("a"),
			spec.DropTable("b"),
			spec.DropTable("c"),
		)
		require.Error(t, err)
		require.Equal(t, []string{"DROP TABLE a;"}, r.stmts)
	})
}
