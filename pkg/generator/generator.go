// Package generator turns specification value objects into executable CQL
// statements.
//
// This package is the single place where statement text is produced: it owns
// keyword casing, identifier quoting, option-map syntax, and clause ordering.
// Generation is deterministic; rendering the same specification twice yields
// byte-identical output, and no generator ever mutates its input.
//
// Example usage:
//
//	stmt, err := generator.CQL(spec.CreateKeyspace("analytics").WithSimpleReplication(3))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(stmt)
//
// Output:
//
//	CREATE KEYSPACE analytics WITH replication = { 'class' : 'SimpleStrategy', 'replication_factor' : 3 } AND durable_writes = true;
package generator

import (
	"fmt"

	"github.com/casskeeper/casskeeper/pkg/spec"
)

// UnsupportedSpecificationError reports a specification variant no generator
// exists for. Hitting this is a programming error in the caller.
type UnsupportedSpecificationError struct {
	Spec string
}

func (e *UnsupportedSpecificationError) Error() string {
	return fmt.Sprintf("generator: unsupported specification %s", e.Spec)
}

// IllegalOptionError reports an option that is not legal for the statement
// being generated, such as COMPACT STORAGE on ALTER TABLE.
type IllegalOptionError struct {
	Option    string
	Statement string
}

func (e *IllegalOptionError) Error() string {
	return fmt.Sprintf("generator: option %s is not legal for %s", e.Option, e.Statement)
}

// CQL generates the statement for the given specification. The
// specification's Validate result is surfaced first, so no statement is ever
// produced for a structurally broken specification. Either one complete
// statement terminated by ";" is returned, or an error and no output.
func CQL(s spec.Specification) (string, error) {
	if s == nil {
		return "", &UnsupportedSpecificationError{Spec: "<nil>"}
	}
	if err := s.Validate(); err != nil {
		return "", err
	}

	switch s := s.(type) {
	case *spec.CreateKeyspaceSpecification:
		return createKeyspace(s), nil
	case *spec.AlterKeyspaceSpecification:
		return alterKeyspace(s), nil
	case *spec.DropKeyspaceSpecification:
		return dropKeyspace(s), nil
	case *spec.CreateTableSpecification:
		return createTable(s), nil
	case *spec.AlterTableSpecification:
		return alterTable(s)
	case *spec.DropTableSpecification:
		return dropTable(s), nil
	case *spec.CreateIndexSpecification:
		return createIndex(s), nil
	case *spec.DropIndexSpecification:
		return dropIndex(s), nil
	case *spec.CreateUserTypeSpecification:
		return createUserType(s), nil
	case *spec.AlterUserTypeSpecification:
		return alterUserType(s), nil
	case *spec.DropUserTypeSpecification:
		return dropUserType(s), nil
	default:
		return "", &UnsupportedSpecificationError{Spec: fmt.Sprintf("%T", s)}
	}
}
