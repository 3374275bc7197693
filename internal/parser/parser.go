// Package parser attributes command-line tokens to the options of a registry.
//
// The parser has no knowledge of how many arguments an option expects: every
// token that is not a flag is attributed to the nearest preceding flag, and an
// option's arity is derived from the position of the next flag (or the end of
// input). For this reason an option may be referenced only once per pass.
package parser

import (
	"strings"

	"github.com/reeflective/cliargs/internal/errors"
	"github.com/reeflective/cliargs/internal/registry"
)

// flagPrefix is the prefix of all tokens referencing an option.
const flagPrefix = "-"

// IsFlag returns true if the token references an option.
func IsFlag(token string) bool {
	return strings.HasPrefix(token, flagPrefix)
}

// Parse performs a single left-to-right pass over the tokens (which must not
// include the program name), and populates the count and arguments of each
// option referenced. It stops at the first error: options already processed
// keep their state, but the pass as a whole is considered failed.
func Parse(reg *registry.Registry, tokens []string) error {
	var current *registry.Option

	for _, token := range tokens {
		if !IsFlag(token) {
			if current == nil {
				return errors.New(errors.NoActiveOption, "",
					"no option created for %s", token)
			}

			current.Args = append(current.Args, token)
			current.Count++

			continue
		}

		opt, found := reg.Lookup(token)
		if !found {
			return unknownOption(reg, token)
		}

		if opt.IsSet() {
			return errors.New(errors.OptionAlreadyUsed, token,
				"option %s was already used", token)
		}

		opt.Count = 0
		current = opt
	}

	return nil
}

func unknownOption(reg *registry.Registry, token string) error {
	if match, ok := reg.Suggest(token); ok {
		return errors.New(errors.UnknownOption, token,
			"option %s does not exist (did you mean %s?)", token, match)
	}

	return errors.New(errors.UnknownOption, token, "option %s does not exist", token)
}
