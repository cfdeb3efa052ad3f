package boostlib

import "fmt"

// Kind identifies the failure mode of an Error. Callers distinguish
// failures by comparing Kind, never by matching error strings.
type Kind int

const (
	InvalidConfiguration Kind = iota
	EmptyDataset
	MissingLabels
	InconsistentShape
	ParseError
	IoError
	FormatError
	UntrainedModel
)

func (k Kind) String() string {
	switch k {
	case InvalidConfiguration:
		return "invalid configuration"
	case EmptyDataset:
		return "empty dataset"
	case MissingLabels:
		return "missing labels"
	case InconsistentShape:
		return "inconsistent shape"
	case ParseError:
		return "parse error"
	case IoError:
		return "io error"
	case FormatError:
		return "format error"
	case UntrainedModel:
		return "untrained model"
	default:
		return "unknown error"
	}
}

// Error is the error type returned by every fallible operation in this
// package.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Errorf builds an *Error of the given kind with a formatted message.
func Errorf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}

// HandleError panics if err is non-nil. Used only in the debug graph
// rendering path, where the graphviz API has no recoverable failure mode
// worth plumbing through every caller.
func HandleError(err error) {
	if err != nil {
		panic(err)
	}
}
