package generator

import (
	"io"

	"github.com/pkg/errors"

	"github.com/casskeeper/casskeeper/pkg/spec"
)

// WriteStatements generates each specification in order and writes the
// statements to w separated by blank lines. Generation stops at the first
// failing specification; nothing is written for specifications after the
// failure, but statements already written stay written.
func WriteStatements(w io.Writer, specs ...spec.Specification) error {
	for i, s := range specs {
		stmt, err := CQL(s)
		if err != nil {
			return errors.Wrapf(err, "statement %d", i+1)
		}

		if i > 0 {
			if _, err := io.WriteString(w, "\n\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, stmt); err != nil {
			return err
		}
	}
	return nil
}
