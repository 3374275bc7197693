// Command argdemo registers a few options, parses its command line
// with them, and reports what each option received.
package main

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/reeflective/cliargs"
)

//go:embed options.hcl
var declarations []byte

func main() {
	color.Enable = term.IsTerminal(int(os.Stdout.Fd()))

	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)

	if slices.Contains(os.Args[1:], "--debug") {
		level.Set(slog.LevelDebug)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	parser, err := cliargs.Load(declarations, "options.hcl", cliargs.WithLogger(logger))
	if err != nil {
		color.Red.Printf("Failed to load options: %s\n", err)
		os.Exit(1)
	}

	cmd := newCommand(parser, os.Stdout)

	if err := cmd.Execute(); err != nil {
		color.Red.Printf("Error: %s\n", err)

		if errors.Is(err, cliargs.ErrUnknownOption) || errors.Is(err, cliargs.ErrNoActiveOption) {
			fmt.Println()
			_ = parser.WriteUsage(os.Stdout)
		}

		os.Exit(1)
	}
}

// newCommand returns the root command, bound to the parser.
func newCommand(parser *cliargs.Parser, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "argdemo",
		Short:         "Report the arguments given to each option",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(parser, out)
		},
	}

	cliargs.Bind(cmd, parser)

	return cmd
}

func run(parser *cliargs.Parser, out io.Writer) error {
	if n, _ := parser.GetNumberOfArguments("help"); n >= 0 {
		return parser.WriteUsage(out)
	}

	for _, name := range []string{"test1", "t2", "t3"} {
		if err := report(parser, out, name); err != nil {
			return err
		}
	}

	ints, count, err := cliargs.GetOptionArguments[int](parser, "-n")
	if err != nil {
		return err
	}

	if count > 0 {
		sum := 0
		for _, n := range ints {
			sum += n
		}

		fmt.Fprintf(out, "%s sum of -n: %d\n", color.Cyan.Sprint("=>"), sum)
	}

	return nil
}

// report prints the arguments of an option, as floats when they all convert.
func report(parser *cliargs.Parser, out io.Writer, name string) error {
	count, err := parser.GetNumberOfArguments(name)
	if err != nil {
		return err
	}

	key := cliargs.OptionName(name)

	switch count {
	case -1:
		fmt.Fprintf(out, "%s not set\n", color.Yellow.Sprint(key))
		return nil
	case 0:
		fmt.Fprintf(out, "%s set, no arguments\n", color.Green.Sprint(key))
		return nil
	}

	args, _, err := cliargs.GetOptionArguments[string](parser, key)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s %d argument(s): %q\n", color.Green.Sprint(key), count, args)

	if floats, _, err := cliargs.GetOptionArguments[float64](parser, key); err == nil {
		fmt.Fprintf(out, "%s as numbers: %v\n", color.Cyan.Sprint("=>"), floats)
	}

	return nil
}
