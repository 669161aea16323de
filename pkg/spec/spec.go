package spec

import (
	"fmt"

	"github.com/casskeeper/casskeeper/pkg/cql"
)

// Specification is the closed set of schema operation descriptions understood
// by the generator. Exactly eleven types implement it; the unexported marker
// method keeps the set closed to this package.
type Specification interface {
	// Validate reports any construction problem recorded while building the
	// specification. A nil result means the specification is structurally
	// complete and ready for generation.
	Validate() error

	specification()
}

// InvalidSpecificationError reports a specification that cannot produce a
// legal statement, such as a create-table with no columns or a name that is
// not a valid identifier.
type InvalidSpecificationError struct {
	Kind   string
	Reason string
	Cause  error
}

func (e *InvalidSpecificationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("spec: invalid %s specification: %s: %v", e.Kind, e.Reason, e.Cause)
	}
	return fmt.Sprintf("spec: invalid %s specification: %s", e.Kind, e.Reason)
}

func (e *InvalidSpecificationError) Unwrap() error { return e.Cause }

// identifier parses name, converting failures into an
// *InvalidSpecificationError for the given specification kind.
func identifier(kind, name string) (cql.Identifier, error) {
	id, err := cql.NewIdentifier(name)
	if err != nil {
		return cql.Identifier{}, &InvalidSpecificationError{Kind: kind, Reason: fmt.Sprintf("name %q", name), Cause: err}
	}
	return id, nil
}

// KeyRole is the structural role a table column plays in the primary key.
type KeyRole int

const (
	// NoKey marks a regular column.
	NoKey KeyRole = iota
	// PartitionKey columns determine data placement.
	PartitionKey
	// ClusterKey columns determine in-partition ordering.
	ClusterKey
)

// Ordering is the explicit sort order a cluster column may carry.
type Ordering int

const (
	// OrderingUnspecified leaves the server default in place and keeps the
	// column out of the CLUSTERING ORDER BY clause.
	OrderingUnspecified Ordering = iota
	Ascending
	Descending
)

// CQL renders the ordering keyword.
func (o Ordering) CQL() string {
	switch o {
	case Ascending:
		return "ASC"
	case Descending:
		return "DESC"
	default:
		return ""
	}
}
