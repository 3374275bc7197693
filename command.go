package cliargs

import (
	"github.com/spf13/cobra"
)

// Bind delegates the command-line parsing of a cobra command to the parser.
//
// Cobra flag parsing is disabled on the command, and all its arguments are
// parsed with ParseCommandLine before its PreRun/PreRunE (if any) is called.
// The command usage function prints the parser usage, and shell completions
// for the parser options are registered on the command.
//
// The parser options should be registered before calling Bind, since the
// command arguments are parsed only once, when the command is executed.
func Bind(cmd *cobra.Command, p *Parser) {
	cmd.DisableFlagParsing = true
	cmd.CompletionOptions.DisableDefaultCmd = true

	// Option arguments must never be taken for a "help" subcommand.
	cmd.SetHelpCommand(&cobra.Command{Use: "__help", Hidden: true})

	if cmd.Args == nil {
		cmd.Args = cobra.ArbitraryArgs
	}

	preRunE := cmd.PreRunE
	preRun := cmd.PreRun

	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if err := p.ParseCommandLine(args); err != nil {
			return err
		}

		switch {
		case preRunE != nil:
			return preRunE(cmd, args)
		case preRun != nil:
			preRun(cmd, args)
		}

		return nil
	}

	cmd.SetUsageFunc(func(cmd *cobra.Command) error {
		return p.WriteUsage(cmd.OutOrStderr())
	})

	bindCompletions(cmd, p)
}
