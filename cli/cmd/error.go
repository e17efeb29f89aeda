package cmd

import (
	"log/slog"
	"strings"
)

// Error is the command error type. Besides the usual message and wrapped
// cause, it carries structured attributes that the logger renders through
// [Error.LogValue].
type Error struct {
	msg   string
	err   error
	attrs []slog.Attr
}

func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// Error joins the message and the wrapped cause with ": ", omitting
// whichever of the two is unset.
func (e *Error) Error() string {
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

func (e *Error) Unwrap() error { return e.err }

// LogValue renders the error as a group of attributes so that
// slog.Any("error", err) expands into structured fields instead of a flat
// string.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap returns a copy of the receiver with err recorded as its cause.
// The receiver is unmodified, so package-level sentinels stay pristine.
func (e *Error) Wrap(err error) *Error {
	dup := *e
	dup.err = err

	return &dup
}

// With returns a copy of the receiver carrying additional attributes.
func (e *Error) With(attrs ...slog.Attr) *Error {
	dup := *e
	dup.attrs = append(e.attrs[:len(e.attrs):len(e.attrs)], attrs...)

	return &dup
}

var (
	ErrNoInput           = NewError("no input sources")
	ErrKeyNotFound       = NewError("key not found")
	ErrCircularReference = NewError("circular variable reference")
	ErrFilterCompile     = NewError("compile filter expression")
	ErrFilterEvaluate    = NewError("evaluate filter expression")
	ErrJSONMarshal       = NewError("marshal JSON")
	ErrYAMLMarshal       = NewError("marshal YAML")
	ErrRenderOutput      = NewError("render output")
)
