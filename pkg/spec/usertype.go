package spec

import "github.com/casskeeper/casskeeper/pkg/cql"

type (
	// FieldSpecification is one field of a user-defined type. Fields carry no
	// key roles.
	FieldSpecification struct {
		name     cql.Identifier
		dataType string
	}

	// CreateUserTypeSpecification describes a CREATE TYPE operation.
	CreateUserTypeSpecification struct {
		keyspace    *cql.Identifier
		name        cql.Identifier
		ifNotExists bool
		fields      []FieldSpecification
		err         error
	}

	// AlterUserTypeSpecification describes an ALTER TYPE operation as an
	// order-significant list of field changes.
	AlterUserTypeSpecification struct {
		keyspace *cql.Identifier
		name     cql.Identifier
		changes  []ColumnChange
		err      error
	}

	// DropUserTypeSpecification describes a DROP TYPE operation.
	DropUserTypeSpecification struct {
		keyspace *cql.Identifier
		name     cql.Identifier
		ifExists bool
		err      error
	}
)

// Name returns the field name.
func (f FieldSpecification) Name() cql.Identifier { return f.name }

// DataType returns the field's CQL data type, verbatim.
func (f FieldSpecification) DataType() string { return f.dataType }

// CreateUserType starts a create-type specification for the named type.
//
// Example:
//
//	udt := spec.CreateUserType("address").
//		Field("street", "text").
//		Field("zip", "text")
func CreateUserType(name string) *CreateUserTypeSpecification {
	s := &CreateUserTypeSpecification{}
	s.name, s.err = identifier("create type", name)
	return s
}

// InKeyspace qualifies the type name with a keyspace.
func (s *CreateUserTypeSpecification) InKeyspace(keyspace string) *CreateUserTypeSpecification {
	ks, err := identifier("create type", keyspace)
	if err != nil && s.err == nil {
		s.err = err
	}
	s.keyspace = &ks
	return s
}

// IfNotExists adds the IF NOT EXISTS guard.
func (s *CreateUserTypeSpecification) IfNotExists() *CreateUserTypeSpecification {
	s.ifNotExists = true
	return s
}

// Field appends a field to the type.
func (s *CreateUserTypeSpecification) Field(name, dataType string) *CreateUserTypeSpecification {
	id, err := identifier("create type", name)
	if err != nil && s.err == nil {
		s.err = err
	}
	s.fields = append(s.fields, FieldSpecification{name: id, dataType: dataType})
	return s
}

// Keyspace returns the qualifying keyspace, or nil for an unqualified name.
func (s *CreateUserTypeSpecification) Keyspace() *cql.Identifier { return s.keyspace }

// Name returns the type name.
func (s *CreateUserTypeSpecification) Name() cql.Identifier { return s.name }

// IsIfNotExists reports whether the IF NOT EXISTS guard is set.
func (s *CreateUserTypeSpecification) IsIfNotExists() bool { return s.ifNotExists }

// Fields returns the fields in declaration order.
func (s *CreateUserTypeSpecification) Fields() []FieldSpecification { return s.fields }

// Validate implements Specification. Creating a type with no fields is a
// construction error.
func (s *CreateUserTypeSpecification) Validate() error {
	if s.err != nil {
		return s.err
	}
	if len(s.fields) == 0 {
		return &InvalidSpecificationError{Kind: "create type", Reason: "at least one field is required"}
	}
	return nil
}

func (s *CreateUserTypeSpecification) specification() {}

// AlterUserType starts an alter-type specification for the named type.
func AlterUserType(name string) *AlterUserTypeSpecification {
	s := &AlterUserTypeSpecification{}
	s.name, s.err = identifier("alter type", name)
	return s
}

// InKeyspace qualifies the type name with a keyspace.
func (s *AlterUserTypeSpecification) InKeyspace(keyspace string) *AlterUserTypeSpecification {
	ks, err := identifier("alter type", keyspace)
	if err != nil && s.err == nil {
		s.err = err
	}
	s.keyspace = &ks
	return s
}

// Add appends an add-field change.
func (s *AlterUserTypeSpecification) Add(name, dataType string) *AlterUserTypeSpecification {
	id := s.changeIdentifier(name)
	s.changes = append(s.changes, AddColumn{Name: id, DataType: dataType})
	return s
}

// Alter appends an alter-field-type change.
func (s *AlterUserTypeSpecification) Alter(name, dataType string) *AlterUserTypeSpecification {
	id := s.changeIdentifier(name)
	s.changes = append(s.changes, AlterColumnType{Name: id, DataType: dataType})
	return s
}

// Rename appends a rename-field change. Consecutive renames render as a
// single RENAME clause joined with AND.
func (s *AlterUserTypeSpecification) Rename(from, to string) *AlterUserTypeSpecification {
	s.changes = append(s.changes, RenameColumn{From: s.changeIdentifier(from), To: s.changeIdentifier(to)})
	return s
}

func (s *AlterUserTypeSpecification) changeIdentifier(name string) cql.Identifier {
	id, err := identifier("alter type", name)
	if err != nil && s.err == nil {
		s.err = err
	}
	return id
}

// Keyspace returns the qualifying keyspace, or nil for an unqualified name.
func (s *AlterUserTypeSpecification) Keyspace() *cql.Identifier { return s.keyspace }

// Name returns the type name.
func (s *AlterUserTypeSpecification) Name() cql.Identifier { return s.name }

// Changes returns the field changes in declaration order.
func (s *AlterUserTypeSpecification) Changes() []ColumnChange { return s.changes }

// Validate implements Specification. An empty change list is a construction
// error.
func (s *AlterUserTypeSpecification) Validate() error {
	if s.err != nil {
		return s.err
	}
	if len(s.changes) == 0 {
		return &InvalidSpecificationError{Kind: "alter type", Reason: "at least one change is required"}
	}
	return nil
}

func (s *AlterUserTypeSpecification) specification() {}

// DropUserType starts a drop-type specification for the named type.
func DropUserType(name string) *DropUserTypeSpecification {
	s := &DropUserTypeSpecification{}
	s.name, s.err = identifier("drop type", name)
	return s
}

// InKeyspace qualifies the type name with a keyspace.
func (s *DropUserTypeSpecification) InKeyspace(keyspace string) *DropUserTypeSpecification {
	ks, err := identifier("drop type", keyspace)
	if err != nil && s.err == nil {
		s.err = err
	}
	s.keyspace = &ks
	return s
}

// IfExists adds the IF EXISTS guard.
func (s *DropUserTypeSpecification) IfExists() *DropUserTypeSpecification {
	s.ifExists = true
	return s
}

// Keyspace returns the qualifying keyspace, or nil for an unqualified name.
func (s *DropUserTypeSpecification) Keyspace() *cql.Identifier { return s.keyspace }

// Name returns the type name.
func (s *DropUserTypeSpecification) Name() cql.Identifier { return s.name }

// IsIfExists reports whether the IF EXISTS guard is set.
func (s *DropUserTypeSpecification) IsIfExists() bool { return s.ifExists }

// Validate implements Specification.
func (s *DropUserTypeSpecification) Validate() error { return s.err }

func (s *DropUserTypeSpecification) specification() {}
