package plist

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/joshuapare/plistkit/internal/cplist"
)

// ErrKind classifies errors reported while decoding or encoding.
type ErrKind int

const (
	ErrKindInvalidArgument ErrKind = iota + 1 // bad input parameters
	ErrKindFormat                             // tree not representable in the target format
	ErrKindParse                              // malformed input
	ErrKindNoMemory                           // engine allocation failure
	ErrKindIO                                 // filesystem failure
	ErrKindUnknown                            // anything else
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindInvalidArgument:
		return "one or more of the parameters are invalid"
	case ErrKindFormat:
		return "the plist contains nodes not compatible with the output format"
	case ErrKindParse:
		return "parsing of the input format failed"
	case ErrKindNoMemory:
		return "not enough memory to handle the operation"
	case ErrKindIO:
		return "I/O error"
	case ErrKindUnknown:
		return "unknown error"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// Error is a typed error with an optional operation name and cause.
type Error struct {
	Kind ErrKind
	Op   string // e.g. "from xml", "to json"; empty for sentinels
	Err  error  // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := "plist: " + e.Kind.String()
	if e.Op != "" {
		msg = "plist: " + e.Op + ": " + e.Kind.String()
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches sentinels by kind, so errors.Is(err, ErrParse) holds for any
// parse failure regardless of the operation.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Op != "" || t.Err != nil {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels for errors.Is.
var (
	ErrInvalidArgument = &Error{Kind: ErrKindInvalidArgument}
	ErrFormat          = &Error{Kind: ErrKindFormat}
	ErrParse           = &Error{Kind: ErrKindParse}
	ErrNoMemory        = &Error{Kind: ErrKindNoMemory}
	ErrIO              = &Error{Kind: ErrKindIO}
	ErrUnknown         = &Error{Kind: ErrKindUnknown}
)

// resultError converts a non-success engine code.
func resultError(op string, res cplist.Result) error {
	var kind ErrKind
	switch res {
	case cplist.Success:
		panic(errors.AssertionFailedf("plist: %s reported success as an error", op))
	case cplist.ErrInvalidArg:
		kind = ErrKindInvalidArgument
	case cplist.ErrFormat:
		kind = ErrKindFormat
	case cplist.ErrParse:
		kind = ErrKindParse
	case cplist.ErrNoMem:
		kind = ErrKindNoMemory
	case cplist.ErrIO:
		kind = ErrKindIO
	default:
		kind = ErrKindUnknown
	}
	return &Error{Kind: kind, Op: op}
}

func opError(kind ErrKind, op string, cause error) error {
	return &Error{Kind: kind, Op: op, Err: cause}
}
