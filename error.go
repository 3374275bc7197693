package cliargs

import (
	argerrors "github.com/reeflective/cliargs/internal/errors"
)

// ParserError represents the type of error. Values of this type are
// themselves errors, and any error returned by a Parser can be matched
// against them with errors.Is:
//
//	if errors.Is(err, cliargs.ErrUnknownOption) { ... }
type ParserError = argerrors.Kind

// Error represents a parser error. All errors returned by a Parser are of
// this type. The error contains its Type, the option involved, a Message,
// and the underlying error (if any) from which it originates.
type Error = argerrors.Error

// ORDER IN WHICH THE ERROR CONSTANTS APPEAR MATTERS.
const (
	// ErrUnknown indicates a generic error.
	ErrUnknown = argerrors.Unknown

	// ErrInvalidArgument indicates that an option was registered with an empty name.
	ErrInvalidArgument = argerrors.InvalidArgument

	// ErrDuplicateOption indicates that an option was registered twice.
	ErrDuplicateOption = argerrors.DuplicateOption

	// ErrUnknownOption indicates that an option is not registered.
	ErrUnknownOption = argerrors.UnknownOption

	// ErrOptionAlreadyUsed indicates that an option was used twice on the command line.
	ErrOptionAlreadyUsed = argerrors.OptionAlreadyUsed

	// ErrNoActiveOption indicates that an argument was found before any option.
	ErrNoActiveOption = argerrors.NoActiveOption

	// ErrTypeConversion indicates that an option argument cannot be
	// converted to the requested type.
	ErrTypeConversion = argerrors.TypeConversion

	// ErrInvalidValue indicates that an option argument does not
	// pass the validation declared for the option.
	ErrInvalidValue = argerrors.InvalidValue

	// ErrDeclaration indicates an invalid option declaration file.
	ErrDeclaration = argerrors.Declaration
)
