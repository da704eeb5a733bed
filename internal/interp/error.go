package interp

import "github.com/desitas1701/chipollino/internal/ierrors"

// Error is the interpreter's line-numbered error type (internal/ierrors.Error).
type Error = ierrors.Error

func lexErrorf(line int, format string, a ...interface{}) *Error {
	return ierrors.New(ierrors.Lex, line, format, a...)
}

func parseErrorf(line int, format string, a ...interface{}) *Error {
	return ierrors.New(ierrors.Parse, line, format, a...)
}

func typeErrorf(line int, format string, a ...interface{}) *Error {
	return ierrors.New(ierrors.Type, line, format, a...)
}

func planErrorf(line int, format string, a ...interface{}) *Error {
	return ierrors.New(ierrors.Plan, line, format, a...)
}

func evalErrorf(line int, format string, a ...interface{}) *Error {
	return ierrors.New(ierrors.Eval, line, format, a...)
}

func refErrorf(line int, format string, a ...interface{}) *Error {
	return ierrors.New(ierrors.Ref, line, format, a...)
}
