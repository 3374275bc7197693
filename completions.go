package cliargs

import (
	"github.com/rsteube/carapace"
	"github.com/spf13/cobra"

	"github.com/reeflective/cliargs/internal/parser"
)

// bindCompletions registers the completions for the parser options on the command.
// Since any word can be an option argument, only option names are completed.
func bindCompletions(cmd *cobra.Command, p *Parser) {
	comps := carapace.Gen(cmd)

	handler := func(ctx carapace.Context) carapace.Action {
		if ctx.Value != "" && !parser.IsFlag(ctx.Value) {
			return carapace.ActionValues()
		}

		return carapace.ActionValuesDescribed(p.optionCandidates(ctx.Args)...)
	}

	comps.PositionalAnyCompletion(carapace.ActionCallback(handler))
}

// optionCandidates returns pairs of option names and descriptions
// for all visible options not already used in the given words.
func (p *Parser) optionCandidates(words []string) []string {
	used := make(map[string]bool, len(words))

	for _, word := range words {
		if parser.IsFlag(word) {
			used[word] = true
		}
	}

	var candidates []string

	for _, opt := range p.registry.Options() {
		if opt.Hidden || used[opt.Name] {
			continue
		}

		candidates = append(candidates, opt.Name, opt.Description)
	}

	return candidates
}
