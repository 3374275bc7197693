// Package values converts the raw tokens collected for an option into typed values.
// Only a closed set of target kinds is supported: signed and unsigned integers,
// floating-point numbers and strings. Numeric formats are strict and locale-free.
package values

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Argument is the set of types option arguments can be converted to.
type Argument interface {
	constraints.Integer | constraints.Float | ~string
}

var (
	signedPattern   = regexp.MustCompile(`^[+-]?[0-9]+$`)
	unsignedPattern = regexp.MustCompile(`^\+?[0-9]+$`)
	floatPattern    = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)$`)
)

// ConvertAll converts each token to T, in order. It fails on the first
// token that cannot be converted, returning that token and no values.
func ConvertAll[T Argument](tokens []string) ([]T, string, error) {
	converted := make([]T, 0, len(tokens))

	for _, token := range tokens {
		val, err := Convert[T](token)
		if err != nil {
			return nil, token, err
		}

		converted = append(converted, val)
	}

	return converted, "", nil
}

// Convert parses a single token into a value of type T.
func Convert[T Argument](token string) (T, error) {
	var result T

	value := reflect.ValueOf(&result).Elem()

	switch value.Kind() {
	case reflect.String:
		value.SetString(token)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if !signedPattern.MatchString(token) {
			return result, syntaxError("ParseInt", token)
		}

		n, err := strconv.ParseInt(token, 10, value.Type().Bits())
		if err != nil {
			return result, err
		}

		value.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if !unsignedPattern.MatchString(token) {
			return result, syntaxError("ParseUint", token)
		}

		n, err := strconv.ParseUint(strings.TrimPrefix(token, "+"), 10, value.Type().Bits())
		if err != nil {
			return result, err
		}

		value.SetUint(n)
	case reflect.Float32, reflect.Float64:
		if !floatPattern.MatchString(token) {
			return result, syntaxError("ParseFloat", token)
		}

		f, err := strconv.ParseFloat(token, value.Type().Bits())
		if err != nil {
			return result, err
		}

		value.SetFloat(f)
	default:
		return result, fmt.Errorf("unsupported argument type %s", value.Type())
	}

	return result, nil
}

// TypeName returns the name of T, for use in error messages.
func TypeName[T Argument]() string {
	var zero T

	return reflect.TypeOf(zero).String()
}

func syntaxError(fn, token string) error {
	return &strconv.NumError{Func: fn, Num: token, Err: strconv.ErrSyntax}
}
