package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// tagPattern matches the part of a validator error containing the tag name.
var tagPattern = regexp.MustCompile(`the '.*' tag`)

// invalidVarError wraps an error raised by validator on an option argument,
// and rewrites its message into something more adapted to a command line.
type invalidVarError struct {
	option       string
	value        string
	validatorErr error
}

// Error implements the Error interface, but replacing some identifiable
// validation errors with more efficient messages, more adapted to CLI.
func (err *invalidVarError) Error() string {
	matched := tagPattern.FindString(err.validatorErr.Error())
	if matched != "" {
		var tagname string

		parts := strings.Split(matched, " ")
		if len(parts) > 1 {
			tagname = strings.Trim(parts[1], "'")
		}

		return fmt.Sprintf("`%s` is not a valid %s", err.value, tagname)
	}

	// Or simply replace the empty key with the option name.
	return strings.ReplaceAll(err.validatorErr.Error(), "''", fmt.Sprintf("'%s'", err.option))
}

// Unwrap returns the validator error.
func (err *invalidVarError) Unwrap() error {
	return err.validatorErr
}
