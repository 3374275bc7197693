package cliargs

import (
	"strings"

	"github.com/spf13/pflag"
)

// FlagSet exports the parser options to a new pflag.FlagSet, with one
// string slice flag per option, named after the option without its dashes.
// Options used on the command line are marked as changed, and hold their
// arguments; others hold an empty slice. Hidden options are hidden flags.
//
// This is useful for handing parse results to code built around pflag or
// cobra, which can then query them with the usual getters:
//
//	flags := p.FlagSet("prog")
//	if flags.Changed("test") {
//		args, _ := flags.GetStringSlice("test")
//	}
func (p *Parser) FlagSet(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)

	for _, opt := range p.registry.Options() {
		long := strings.TrimPrefix(strings.TrimPrefix(opt.Name, "-"), "-")
		if flags.Lookup(long) != nil {
			p.logger.Debug("Skipping option already exported to flag set", "option", opt.Name)
			continue
		}

		flags.StringSlice(long, nil, opt.Description)

		flag := flags.Lookup(long)
		flag.Hidden = opt.Hidden

		if !opt.IsSet() {
			continue
		}

		if slice, ok := flag.Value.(pflag.SliceValue); ok {
			if err := slice.Replace(opt.Arguments()); err != nil {
				p.logger.Warn("Failed to export option arguments", "option", opt.Name, "error", err)
			}
		}

		flag.Changed = true
	}

	return flags
}
