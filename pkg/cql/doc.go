// Package cql provides the leaf primitives shared by every generated CQL
// statement: identifiers with their quoting rules, typed option keys with
// escaping/quoting hints, and insertion-ordered option maps.
//
// Identifiers decide at construction time whether they need double quotes
// when rendered, and options carry the rendering hints needed by the
// generator's option-map renderer. Neither performs any I/O; everything in
// this package is a pure value type.
package cql
