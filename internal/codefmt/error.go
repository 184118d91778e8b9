package codefmt

import (
	"fmt"
	"go/token"
)

// CodeError is a diagnostic about a directive in the user's source code. The
// position spans the offending node when it is known.
type CodeError struct {
	err  error
	pos  token.Pos
	end  token.Pos
	fset *token.FileSet
}

func (e CodeError) Unwrap() error { return e.err }

// Pos returns the start of the offending node. It may be invalid.
func (e CodeError) Pos() token.Pos { return e.pos }

// End returns the end of the offending node. It may be invalid.
func (e CodeError) End() token.Pos { return e.end }

// Message returns the error message without the position.
func (e CodeError) Message() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

// Error returns the message prefixed by "file:line:col" of the position if
// it is valid.
func (e CodeError) Error() string {
	if !e.pos.IsValid() || e.fset == nil {
		return e.Message()
	}
	return fmt.Sprintf("%s: %s", FormatPosition(e.fset.Position(e.pos)), e.Message())
}

// Errorf creates a [CodeError] at the position of poser. When poser also has
// an End method, the error spans the whole node. Errors are never wrapped.
func (f Formatter) Errorf(poser Poser, format string, args ...any) error {
	for _, arg := range args {
		if _, ok := arg.(error); ok {
			panic("CodeError cannot wrap error")
		}
	}

	var pos, end token.Pos
	if poser != nil {
		pos = poser.Pos()
		if ender, ok := poser.(Ender); ok {
			end = ender.End()
		}
	}

	args = f.wrapPrintfArgs(args)
	err := fmt.Errorf(format, args...)
	return &CodeError{err, pos, end, f.Fset}
}

// Flatten unrolls errors joined by [errors.Join] in depth-first order. It
// returns nil for a nil error.
func Flatten(err error) []error {
	if err == nil {
		return nil
	}
	u, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []error{err}
	}

	var list []error
	for _, err := range u.Unwrap() {
		list = append(list, Flatten(err)...)
	}
	return list
}
