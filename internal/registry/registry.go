// Package registry holds the options declared by a program, keyed by their
// normalized (dashed) names, along with the arguments collected for each of
// them during parsing.
package registry

import (
	"slices"
	"unicode/utf8"

	"golang.org/x/exp/maps"
)

// Unset is the argument count of an option that has not
// been referenced on the command line.
const Unset = -1

// Option represents one registered flag.
type Option struct {
	// Name is the normalized name, used as registry key.
	Name string

	// Description is shown to the user in option listings.
	Description string

	// Count is Unset before the option is seen on the command line,
	// and the number of arguments collected for it afterwards.
	Count int

	// Args are the raw tokens collected after the flag, in order.
	Args []string

	// Validate is an optional validator tag checked against each argument.
	Validate string

	// Hidden options are not listed nor completed.
	Hidden bool
}

// IsSet returns true if the option has been referenced on the command line.
func (o *Option) IsSet() bool {
	return o.Count != Unset
}

// Arguments returns a copy of the arguments collected for the option.
func (o *Option) Arguments() []string {
	return slices.Clone(o.Args)
}

// Normalize returns the key under which an option name is registered:
// a single-character name gets one leading dash, longer names get two.
func Normalize(name string) string {
	if utf8.RuneCountInString(name) == 1 {
		return "-" + name
	}

	return "--" + name
}

// Registry maps normalized option names to their Option record.
type Registry struct {
	options map[string]*Option
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		options: make(map[string]*Option),
	}
}

// Add creates an unset option under the normalized form of name.
// The caller must have checked that the name is not empty.
// It returns false if an option already exists with the same key.
func (r *Registry) Add(name, description string) (*Option, bool) {
	key := Normalize(name)

	if _, exists := r.options[key]; exists {
		return nil, false
	}

	opt := &Option{
		Name:        key,
		Description: description,
		Count:       Unset,
	}

	r.options[key] = opt

	return opt, true
}

// Lookup returns the option registered under the exact key.
func (r *Registry) Lookup(key string) (*Option, bool) {
	opt, found := r.options[key]

	return opt, found
}

// Names returns all registered keys, sorted.
func (r *Registry) Names() []string {
	names := maps.Keys(r.options)
	slices.Sort(names)

	return names
}

// Options returns all registered options, sorted by key.
func (r *Registry) Options() []*Option {
	names := r.Names()
	opts := make([]*Option, 0, len(names))

	for _, name := range names {
		opts = append(opts, r.options[name])
	}

	return opts
}

// Len returns the number of registered options.
func (r *Registry) Len() int {
	return len(r.options)
}
