package generator

import (
	"fmt"
	"strings"

	"github.com/casskeeper/casskeeper/pkg/cql"
	"github.com/casskeeper/casskeeper/pkg/spec"
)

// renderOptionMap renders a nested option map in WITH-clause syntax, e.g.
// { 'class' : 'SimpleStrategy', 'replication_factor' : 1 }. Keys are always
// single-quoted; a nil value keeps the key with an empty value. The empty map
// renders to the empty string.
func renderOptionMap(m *cql.OptionMap) string {
	if m.Len() == 0 {
		return ""
	}

	entries := make([]string, 0, m.Len())
	for _, e := range m.Entries() {
		entry := "'" + e.Option.Name() + "' : "
		if e.Value != nil {
			entry += renderOptionValue(e.Option, e.Value)
		}
		entries = append(entries, entry)
	}
	return "{ " + strings.Join(entries, ", ") + " }"
}

// renderOptionValue stringifies a scalar option value, applying the option's
// escape and quote hints. Nested maps delegate to renderOptionMap.
func renderOptionValue(opt cql.Option, value any) string {
	if nested, ok := value.(*cql.OptionMap); ok {
		return renderOptionMap(nested)
	}

	s := fmt.Sprint(value)
	if opt.EscapesValue() {
		s = strings.ReplaceAll(s, "'", "''")
	}
	if opt.QuotesValue() {
		s = "'" + s + "'"
	}
	return s
}

// optionsClause renders a WITH clause from the given entries, each either
// "name = value" or a bare keyword for valueless options. Extra leading
// clauses (such as CLUSTERING ORDER BY) come first. Returns "" when there is
// nothing to render.
func optionsClause(leading []string, m *cql.OptionMap) string {
	clauses := append([]string(nil), leading...)
	for _, e := range m.Entries() {
		if !e.Option.TakesValue() || e.Value == nil {
			clauses = append(clauses, e.Option.Name())
			continue
		}
		clauses = append(clauses, e.Option.Name()+" = "+renderOptionValue(e.Option, e.Value))
	}

	if len(clauses) == 0 {
		return ""
	}
	return "WITH " + strings.Join(clauses, " AND ")
}

// renderIndexOptions renders the flat index-options map, e.g.
// {'mode': 'CONTAINS'}. Keys and values are always single-quoted, with
// embedded single quotes doubled.
func renderIndexOptions(opts []spec.IndexOption) string {
	entries := make([]string, 0, len(opts))
	for _, o := range opts {
		entries = append(entries, quoteIndexTerm(o.Name)+": "+quoteIndexTerm(o.Value))
	}
	return "{" + strings.Join(entries, ", ") + "}"
}

func quoteIndexTerm(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// qualifiedName renders an optionally keyspace-qualified name.
func qualifiedName(keyspace *cql.Identifier, name cql.Identifier) string {
	if keyspace != nil {
		return keyspace.CQL() + "." + name.CQL()
	}
	return name.CQL()
}
