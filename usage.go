package cliargs

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// PrintOptionDescriptions prints one line per option to the parser output
// (stdout unless WithOutput is used), made of the dashed option name, a
// space, and the option description. Options are sorted by name, and
// hidden options are not printed.
func (p *Parser) PrintOptionDescriptions() {
	if err := p.WriteOptionDescriptions(p.output); err != nil {
		p.logger.Warn("Failed to print option descriptions", "error", err)
	}
}

// WriteOptionDescriptions writes the option descriptions to the provided writer,
// in the same format as PrintOptionDescriptions.
func (p *Parser) WriteOptionDescriptions(writer io.Writer) error {
	buf := bufio.NewWriter(writer)

	for _, opt := range p.registry.Options() {
		if opt.Hidden {
			continue
		}

		fmt.Fprintf(buf, "%s %s\n", opt.Name, opt.Description)
	}

	return buf.Flush()
}

// WriteUsage writes the parser preamble (if any), followed by the option
// descriptions, to the provided writer.
func (p *Parser) WriteUsage(writer io.Writer) error {
	if p.preamble != "" {
		preamble := p.preamble
		if !strings.HasSuffix(preamble, "\n") {
			preamble += "\n"
		}

		if _, err := io.WriteString(writer, preamble); err != nil {
			return err
		}
	}

	return p.WriteOptionDescriptions(writer)
}

// Preamble returns the text printed before option descriptions.
func (p *Parser) Preamble() string {
	return p.preamble
}
