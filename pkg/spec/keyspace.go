package spec

import "github.com/casskeeper/casskeeper/pkg/cql"

type (
	// CreateKeyspaceSpecification describes a CREATE KEYSPACE operation.
	CreateKeyspaceSpecification struct {
		name        cql.Identifier
		ifNotExists bool
		options     *cql.OptionMap
		err         error
	}

	// AlterKeyspaceSpecification describes an ALTER KEYSPACE operation.
	AlterKeyspaceSpecification struct {
		name    cql.Identifier
		options *cql.OptionMap
		err     error
	}

	// DropKeyspaceSpecification describes a DROP KEYSPACE operation.
	DropKeyspaceSpecification struct {
		name     cql.Identifier
		ifExists bool
		err      error
	}
)

// CreateKeyspace starts a create-keyspace specification for the named
// keyspace.
//
// Example:
//
//	ks := spec.CreateKeyspace("analytics").
//		IfNotExists().
//		WithSimpleReplication(3)
func CreateKeyspace(name string) *CreateKeyspaceSpecification {
	s := &CreateKeyspaceSpecification{options: cql.NewOptionMap()}
	s.name, s.err = identifier("create keyspace", name)
	return s
}

// IfNotExists adds the IF NOT EXISTS guard.
func (s *CreateKeyspaceSpecification) IfNotExists() *CreateKeyspaceSpecification {
	s.ifNotExists = true
	return s
}

// With adds a keyspace option. Options render in insertion order.
func (s *CreateKeyspaceSpecification) With(opt cql.Option, value any) *CreateKeyspaceSpecification {
	s.options.Set(opt, value)
	return s
}

// WithSimpleReplication sets SimpleStrategy replication with the given
// factor.
func (s *CreateKeyspaceSpecification) WithSimpleReplication(factor int) *CreateKeyspaceSpecification {
	return s.With(cql.ReplicationOption, cql.SimpleReplication(factor))
}

// WithNetworkReplication sets NetworkTopologyStrategy replication across the
// given datacenters.
func (s *CreateKeyspaceSpecification) WithNetworkReplication(dcs ...cql.DataCenter) *CreateKeyspaceSpecification {
	return s.With(cql.ReplicationOption, cql.NetworkReplication(dcs...))
}

// WithDurableWrites sets the durable_writes option.
func (s *CreateKeyspaceSpecification) WithDurableWrites(durable bool) *CreateKeyspaceSpecification {
	return s.With(cql.DurableWritesOption, durable)
}

// Name returns the keyspace name.
func (s *CreateKeyspaceSpecification) Name() cql.Identifier { return s.name }

// IsIfNotExists reports whether the IF NOT EXISTS guard is set.
func (s *CreateKeyspaceSpecification) IsIfNotExists() bool { return s.ifNotExists }

// Options returns the keyspace options in insertion order.
func (s *CreateKeyspaceSpecification) Options() *cql.OptionMap { return s.options }

// Validate implements Specification.
func (s *CreateKeyspaceSpecification) Validate() error { return s.err }

func (s *CreateKeyspaceSpecification) specification() {}

// AlterKeyspace starts an alter-keyspace specification for the named
// keyspace.
func AlterKeyspace(name string) *AlterKeyspaceSpecification {
	s := &AlterKeyspaceSpecification{options: cql.NewOptionMap()}
	s.name, s.err = identifier("alter keyspace", name)
	return s
}

// With adds a keyspace option. Options render in insertion order.
func (s *AlterKeyspaceSpecification) With(opt cql.Option, value any) *AlterKeyspaceSpecification {
	s.options.Set(opt, value)
	return s
}

// Name returns the keyspace name.
func (s *AlterKeyspaceSpecification) Name() cql.Identifier { return s.name }

// Options returns the keyspace options in insertion order.
func (s *AlterKeyspaceSpecification) Options() *cql.OptionMap { return s.options }

// Validate implements Specification. Altering a keyspace whilst changing
// nothing is a construction error; the statement has no form without an
// options clause.
func (s *AlterKeyspaceSpecification) Validate() error {
	if s.err != nil {
		return s.err
	}
	if s.options.Len() == 0 {
		return &InvalidSpecificationError{Kind: "alter keyspace", Reason: "at least one option is required"}
	}
	return nil
}

func (s *AlterKeyspaceSpecification) specification() {}

// DropKeyspace starts a drop-keyspace specification for the named keyspace.
func DropKeyspace(name string) *DropKeyspaceSpecification {
	s := &DropKeyspaceSpecification{}
	s.name, s.err = identifier("drop keyspace", name)
	return s
}

// IfExists adds the IF EXISTS guard.
func (s *DropKeyspaceSpecification) IfExists() *DropKeyspaceSpecification {
	s.ifExists = true
	return s
}

// Name returns the keyspace name.
func (s *DropKeyspaceSpecification) Name() cql.Identifier { return s.name }

// IsIfExists reports whether the IF EXISTS guard is set.
func (s *DropKeyspaceSpecification) IsIfExists() bool { return s.ifExists }

// Validate implements Specification.
func (s *DropKeyspaceSpecification) Validate() error { return s.err }

func (s *DropKeyspaceSpecification) specification() {}
