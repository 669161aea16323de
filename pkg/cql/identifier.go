package cql

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// unquotedPattern matches names that are legal without quoting.
	unquotedPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

	// quotedPattern matches names that are legal inside double quotes. Any
	// embedded double quote must appear doubled, as it does in the rendered
	// form.
	quotedPattern = regexp.MustCompile(`^([A-Za-z0-9_]|"")+$`)
)

// InvalidIdentifierError indicates that a name matches neither the unquoted
// nor the quoted identifier grammar and can never be rendered legally.
type InvalidIdentifierError struct {
	Name string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("cql: %q is not a valid identifier", e.Name)
}

// Identifier is a schema object name together with its quoting requirement.
//
// An Identifier is immutable once constructed and rendering it is a pure
// function: unquoted names render as-is, quoted names are wrapped in double
// quotes. The zero value is not a valid identifier; use NewIdentifier,
// QuotedIdentifier, or ParseIdentifier.
type Identifier struct {
	name   string
	quoted bool
}

// NewIdentifier creates an identifier from name, deciding whether it needs
// quoting. Names matching the unquoted grammar render bare; names that only
// match the quoted grammar render wrapped in double quotes. Names matching
// neither grammar return an *InvalidIdentifierError.
//
// Example:
//
//	id, err := cql.NewIdentifier("users")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(id.CQL()) // users
func NewIdentifier(name string) (Identifier, error) {
	switch {
	case unquotedPattern.MatchString(name):
		return Identifier{name: name}, nil
	case quotedPattern.MatchString(name):
		return Identifier{name: name, quoted: true}, nil
	default:
		return Identifier{}, &InvalidIdentifierError{Name: name}
	}
}

// QuotedIdentifier creates an identifier that renders quoted even when the
// bare form would be legal. The name must still satisfy one of the two
// identifier grammars.
func QuotedIdentifier(name string) (Identifier, error) {
	id, err := NewIdentifier(name)
	if err != nil {
		return Identifier{}, err
	}
	id.quoted = true
	return id, nil
}

// MustIdentifier is like NewIdentifier but panics on invalid names. It is
// intended for identifiers known to be legal at compile time, such as the
// predefined option names.
func MustIdentifier(name string) Identifier {
	id, err := NewIdentifier(name)
	if err != nil {
		panic(err)
	}
	return id
}

// ParseIdentifier derives an identifier from previously rendered output.
// Double-quoted input yields a quoted identifier with the surrounding quotes
// stripped; anything else goes through NewIdentifier. Rendering the result
// reproduces the input byte for byte.
func ParseIdentifier(rendered string) (Identifier, error) {
	if len(rendered) >= 2 && strings.HasPrefix(rendered, `"`) && strings.HasSuffix(rendered, `"`) {
		return QuotedIdentifier(rendered[1 : len(rendered)-1])
	}
	return NewIdentifier(rendered)
}

// Name returns the semantic name without any quoting applied.
func (i Identifier) Name() string { return i.name }

// Quoted reports whether the identifier renders wrapped in double quotes.
func (i Identifier) Quoted() bool { return i.quoted }

// CQL renders the identifier in its statement form.
func (i Identifier) CQL() string {
	if i.quoted {
		return `"` + i.name + `"`
	}
	return i.name
}

// String implements fmt.Stringer and is equivalent to CQL.
func (i Identifier) String() string { return i.CQL() }

// Equal reports whether two identifiers refer to the same semantic name.
// Quoting is a rendering concern and does not participate in equality.
func (i Identifier) Equal(other Identifier) bool {
	return i.name == other.name
}
