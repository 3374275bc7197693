// Package cliargs registers command-line options and parses a raw argument
// vector into per-option argument lists, which can later be retrieved as
// typed values.
//
// The workflow is always the same: declare options with AddOption (or load
// them from an HCL file with LoadFile), call ParseCommandLine once, then query
// the results with GetNumberOfArguments and GetOptionArguments.
//
// Every token that does not start with a dash is attributed to the nearest
// preceding option: no arity is declared, it is derived from the position of
// the next option on the command line. As a consequence, each option can only
// be used once per command line.
//
// A parser can also be bound to a *cobra.Command with Bind, which delegates
// flag parsing to it and registers shell completions for option names.
package cliargs

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"

	argerrors "github.com/reeflective/cliargs/internal/errors"
	"github.com/reeflective/cliargs/internal/parser"
	"github.com/reeflective/cliargs/internal/registry"
	"github.com/reeflective/cliargs/internal/validation"
)

// Parser holds the registered options and the arguments collected
// for them. It must be fully configured before parsing, and only
// read from after parsing: it is not safe for concurrent mutation.
type Parser struct {
	registry  *registry.Registry
	validator *validation.Validator
	logger    *slog.Logger
	output    io.Writer
	preamble  string
}

// New returns a parser with no options registered.
func New(opts ...ParserOption) *Parser {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	p := &Parser{
		registry:  registry.New(),
		validator: validation.NewDefault(),
		logger:    logger,
		output:    os.Stdout,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// === Configuration (Functional Options) ===

// ParserOption is a functional option for configuring a parser.
type ParserOption func(p *Parser)

// WithLogger sets the logger to which all diagnostics are written.
func WithLogger(logger *slog.Logger) ParserOption {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithOutput sets the writer used by PrintOptionDescriptions.
func WithOutput(w io.Writer) ParserOption {
	return func(p *Parser) {
		if w != nil {
			p.output = w
		}
	}
}

// WithPreamble sets a text printed before option descriptions in usage messages.
func WithPreamble(preamble string) ParserOption {
	return func(p *Parser) { p.preamble = preamble }
}

// WithValidator sets the go-playground/validator instance used to check
// option arguments declared with the Validate setting. This is required
// for using custom validation tags registered on the validator.
func WithValidator(v *validator.Validate) ParserOption {
	return func(p *Parser) { p.validator = validation.NewWith(v) }
}

// OptionSetting is a functional option for configuring a single option.
type OptionSetting func(opt *registry.Option)

// Validate attaches a go-playground/validator tag to the option. Each of its
// arguments is checked against it when they are retrieved with GetOptionArguments.
func Validate(tag string) OptionSetting {
	return func(opt *registry.Option) { opt.Validate = tag }
}

// Hidden excludes the option from description listings and completions.
// It can still be used on the command line.
func Hidden() OptionSetting {
	return func(opt *registry.Option) { opt.Hidden = true }
}

// === Core operations ===

// AddOption registers an option. A single-character name is registered
// with a single leading dash (t => -t), longer names with two leading
// dashes (test => --test). This dashed form is the one used on the command
// line and with GetOptionArguments.
//
// It fails with ErrInvalidArgument if name is empty, and with
// ErrDuplicateOption if an option already exists with the same dashed name.
func (p *Parser) AddOption(name, description string, settings ...OptionSetting) error {
	if err := p.validator.Name(name); err != nil {
		return p.fail(argerrors.Wrap(argerrors.InvalidArgument, name, err,
			"cannot use the empty string as an option"))
	}

	opt, added := p.registry.Add(name, description)
	if !added {
		key := registry.Normalize(name)

		return p.fail(argerrors.New(argerrors.DuplicateOption, key,
			"option %s already exists", key))
	}

	for _, setting := range settings {
		setting(opt)
	}

	p.logger.Debug("Registered option", "option", opt.Name)

	return nil
}

// ParseCommandLine parses the command-line tokens, which must not include the
// program name (eg. os.Args[1:]). Each option encountered collects all tokens
// following it, up to the next option or the end of input.
//
// Parsing stops at the first error, which is one of ErrUnknownOption (a token
// starting with a dash is not a registered option), ErrOptionAlreadyUsed (an
// option is used twice), or ErrNoActiveOption (the first token is not an option).
func (p *Parser) ParseCommandLine(args []string) error {
	if err := parser.Parse(p.registry, args); err != nil {
		return p.fail(err)
	}

	p.logger.Debug("Parsed command line", "tokens", len(args), "options", p.registry.Len())

	return nil
}

// ParseArgv is like ParseCommandLine, but accepts a complete argument
// vector whose first element is the program name, like os.Args.
func (p *Parser) ParseArgv(argv []string) error {
	if len(argv) == 0 {
		return p.ParseCommandLine(nil)
	}

	return p.ParseCommandLine(argv[1:])
}

// GetNumberOfArguments returns the number of arguments given to an option, or
// -1 if the option has not been used on the command line. Unlike GetOptionArguments,
// the name is given without dashes, as for AddOption.
func (p *Parser) GetNumberOfArguments(name string) (int, error) {
	key := registry.Normalize(name)

	opt, found := p.registry.Lookup(key)
	if !found {
		return registry.Unset, p.fail(unknownOption(key))
	}

	return opt.Count, nil
}

// OptionName returns the dashed form of an option name, as it is registered
// by AddOption and expected by GetOptionArguments (t => -t, test => --test).
func OptionName(name string) string {
	return registry.Normalize(name)
}

// fail logs an error to the parser diagnostics, and returns it.
func (p *Parser) fail(err error) error {
	attrs := []any{"kind", argerrors.KindOf(err).String()}

	var perr *Error
	if errors.As(err, &perr) {
		attrs = append(attrs, "option", perr.Option)
	}

	p.logger.Warn(err.Error(), attrs...)

	return err
}

func unknownOption(key string) *Error {
	return argerrors.New(argerrors.UnknownOption, key, "option %s does not exist", key)
}
