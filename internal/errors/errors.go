package errors

import (
	"errors"
	"fmt"
)

// Kind identifies the condition that made an operation fail.
// A Kind is itself an error, so that callers can match any
// *Error with errors.Is(err, kind).
type Kind uint

// ORDER IN WHICH THE KIND CONSTANTS APPEAR MATTERS.
const (
	// Unknown indicates a generic error.
	Unknown Kind = iota

	// InvalidArgument indicates an empty option name at registration.
	InvalidArgument

	// DuplicateOption indicates an option registered twice under the same normalized name.
	DuplicateOption

	// UnknownOption indicates a name that is not a registry key.
	UnknownOption

	// OptionAlreadyUsed indicates a flag referenced twice during one parse pass.
	OptionAlreadyUsed

	// NoActiveOption indicates a positional token found before any flag.
	NoActiveOption

	// TypeConversion indicates a stored argument that cannot be converted.
	TypeConversion

	// InvalidValue indicates an argument rejected by the option validation rules.
	InvalidValue

	// Declaration indicates an invalid option declaration file.
	Declaration
)

func (k Kind) String() string {
	kinds := [...]string{
		"unknown",             // Unknown
		"invalid argument",    // InvalidArgument
		"duplicate option",    // DuplicateOption
		"unknown option",      // UnknownOption
		"option already used", // OptionAlreadyUsed
		"no active option",    // NoActiveOption
		"type conversion",     // TypeConversion
		"invalid value",       // InvalidValue
		"declaration",         // Declaration
	}
	if int(k) >= len(kinds) {
		return "unrecognized error type"
	}

	return kinds[k]
}

func (k Kind) Error() string {
	return k.String()
}

// Error is the error returned by all parser operations.
// It contains the Kind of failure, the option involved (if any),
// a human-readable message and an optional underlying cause.
type Error struct {
	// The type of error
	Type Kind

	// The option name involved, as given or normalized.
	Option string

	// The error message
	Message string

	// Err is the underlying cause, if any (strconv, validator, hcl...).
	Err error
}

// Error returns the error's message.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether the target is the Kind of this error.
func (e *Error) Is(target error) bool {
	kind, ok := target.(Kind)

	return ok && kind == e.Type
}

// New returns an error of the given kind, for the given option.
func New(kind Kind, option, format string, args ...any) *Error {
	return &Error{
		Type:    kind,
		Option:  option,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap is like New, but keeps a reference to the error that caused it.
func Wrap(kind Kind, option string, cause error, format string, args ...any) *Error {
	err := New(kind, option, format, args...)
	err.Err = cause

	return err
}

// KindOf returns the kind of err, or Unknown if err is not an *Error.
func KindOf(err error) Kind {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Type
	}

	return Unknown
}
