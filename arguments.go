package cliargs

import (
	argerrors "github.com/reeflective/cliargs/internal/errors"
	"github.com/reeflective/cliargs/internal/registry"
	"github.com/reeflective/cliargs/internal/values"
)

// Argument is the set of types to which option arguments can be converted:
// any integer, floating-point or string type.
//
// Integers must match [+-]?[0-9]+ (only a plus sign for unsigned types) and fit in
// the target type. Floats must match [+-]?([0-9]+(.[0-9]*)?|.[0-9]+).
// Strings are returned as given on the command line.
type Argument = values.Argument

// GetOptionArguments returns the arguments given to an option, converted to T,
// along with their number. The option name must be given in its dashed form
// (eg. "--test" or "-t"), as it appears on the command line.
//
// If the option has not been used on the command line, the count is -1, and if
// it has been used without arguments, the count is 0: in both cases, no values
// are returned and the error is nil.
//
// Conversion is all-or-nothing: if any argument cannot be converted, the call
// fails with ErrTypeConversion and returns no values. If the option has been
// declared with a validation tag, each argument is validated before conversion,
// and an invalid one yields ErrInvalidValue.
//
// The returned values are owned by the caller, and calling this function
// never modifies the parser.
func GetOptionArguments[T Argument](p *Parser, name string) ([]T, int, error) {
	opt, found := p.registry.Lookup(name)
	if !found {
		return nil, registry.Unset, p.fail(unknownOption(name))
	}

	if opt.Count == registry.Unset || opt.Count == 0 {
		return []T{}, opt.Count, nil
	}

	args := opt.Arguments()

	if bad, err := p.validator.Values(name, args, opt.Validate); err != nil {
		return nil, registry.Unset, p.fail(argerrors.Wrap(argerrors.InvalidValue, name, err,
			"invalid argument %q for option %s: %s", bad, name, err.Error()))
	}

	converted, bad, err := values.ConvertAll[T](args)
	if err != nil {
		return nil, registry.Unset, p.fail(argerrors.Wrap(argerrors.TypeConversion, name, err,
			"cannot convert argument %q of option %s to %s", bad, name, values.TypeName[T]()))
	}

	return converted, len(converted), nil
}

// MustGetOptionArguments is like GetOptionArguments, but only returns the
// values, and panics on error. It is meant for options whose arguments have
// already been checked, or in tests.
func MustGetOptionArguments[T Argument](p *Parser, name string) []T {
	vals, _, err := GetOptionArguments[T](p, name)
	if err != nil {
		panic(err)
	}

	return vals
}

// GetOptionArgument returns the single argument given to an option, converted
// to T, or def if the option has not been used or has been used without arguments.
// The name is given in its dashed form, as for GetOptionArguments.
//
// Validation and conversion are the same as for GetOptionArguments. If the
// option has been given more than one argument, the call fails with
// ErrInvalidValue and def is returned.
func GetOptionArgument[T Argument](p *Parser, name string, def T) (T, error) {
	vals, count, err := GetOptionArguments[T](p, name)
	if err != nil {
		return def, err
	}

	switch count {
	case registry.Unset, 0:
		return def, nil
	case 1:
		return vals[0], nil
	default:
		return def, p.fail(argerrors.New(argerrors.InvalidValue, name,
			"option %s expects a single argument, got %d", name, count))
	}
}
