package multierr

import (
	"bytes"
	"fmt"
)

// Error accumulates the failures of independent synthesis steps so one bad
// resource declaration does not hide the others.
type Error []error

func (e Error) Error() string {
	switch len(e) {
	case 0:
		return "<nil>"

	case 1:
		return e[0].Error()

	default:
		buf := new(bytes.Buffer)
		fmt.Fprintf(buf, "%d errors occurred:", len(e))
		for _, err := range e {
			fmt.Fprintf(buf, "\n\t* %v", err)
		}
		return buf.String()
	}
}

// Append will mutate e and append the error. No-op if `err == nil`.
//
//	var e Error
//	e.Append(err)
func (e *Error) Append(err error) {
	switch {
	case e == nil:
		// nothing we can do with a nil receiver

	case err == nil:
		// nothing to record

	case *e == nil:
		*e = Error{err}

	default:
		*e = append(*e, err)
	}
}

// ErrOrNil converts this multierr into an error, avoiding the typed-nil trap:
// (Error)(nil) != nil when returned through an error interface. A single
// accumulated error is unwrapped automatically.
func (e Error) ErrOrNil() error {
	switch len(e) {
	case 0:
		return nil

	case 1:
		return e[0]

	default:
		return e
	}
}

// Unwrap implements the interface used by errors.Unwrap.
func (e Error) Unwrap() error {
	switch len(e) {
	case 0:
		return nil

	case 1:
		return e[0]

	default:
		return e[1:]
	}
}
