package turtleshell

import "fmt"

// Kind identifies the family of a failed operation.
type Kind int

const (
	KindDirectoryRead Kind = iota + 1
	KindFileRead
	KindCopyArgument
	KindFileCopy
	KindMoveArgument
	KindFileMove
	KindTypeMismatch
	KindFileCreate
	KindDirectoryCreate
)

// String returns the error name of the kind.
func (k Kind) String() string {
	switch k {
	case KindDirectoryRead:
		return "DirectoryReadError"
	case KindFileRead:
		return "FileReadError"
	case KindCopyArgument:
		return "CopyArgumentError"
	case KindFileCopy:
		return "FileCopyError"
	case KindMoveArgument:
		return "MoveArgumentError"
	case KindFileMove:
		return "FileMoveError"
	case KindTypeMismatch:
		return "TypeMismatchError"
	case KindFileCreate:
		return "FileCreateError"
	case KindDirectoryCreate:
		return "DirectoryCreateError"
	default:
		return "UnknownError"
	}
}

// Sentinels for errors.Is. They match any *Error of the same Kind.
var (
	ErrDirectoryRead   = &Error{Kind: KindDirectoryRead}
	ErrFileRead        = &Error{Kind: KindFileRead}
	ErrCopyArgument    = &Error{Kind: KindCopyArgument}
	ErrFileCopy        = &Error{Kind: KindFileCopy}
	ErrMoveArgument    = &Error{Kind: KindMoveArgument}
	ErrFileMove        = &Error{Kind: KindFileMove}
	ErrTypeMismatch    = &Error{Kind: KindTypeMismatch}
	ErrFileCreate      = &Error{Kind: KindFileCreate}
	ErrDirectoryCreate = &Error{Kind: KindDirectoryCreate}
)

// Error is returned by every facade operation.
// Its message has the form "<op>: <cause>: <detail>".
type Error struct {
	Op     string // shell name of the operation: ls, cat, cp, mv, touch, mkdir
	Kind   Kind
	Cause  string
	Path   string
	Detail string // usage text for argument errors, unset otherwise
	Err    error  // underlying OS error, if any
}

func (e *Error) Error() string {
	detail := e.Detail
	if e.Err != nil {
		detail = e.Err.Error()
	}
	if detail == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Cause)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Cause, detail)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func newError(op string, kind Kind, cause, path string, err error) *Error {
	return &Error{Op: op, Kind: kind, Cause: cause, Path: path, Err: err}
}

// cancelled reports that ctx ended before the operation started.
func cancelled(op string, kind Kind, err error) *Error {
	return newError(op, kind, "operation cancelled", "", err)
}

func argumentError(op string, kind Kind) *Error {
	return &Error{
		Op:     op,
		Kind:   kind,
		Cause:  "not enough arguments",
		Detail: fmt.Sprintf("usage: %s source ... dest", op),
	}
}
