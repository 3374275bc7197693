package cliargs

import (
	"fmt"

	"github.com/reeflective/cliargs/internal/declare"
	argerrors "github.com/reeflective/cliargs/internal/errors"
)

// LoadFile returns a new parser with the options declared in an HCL file.
// The file may set a preamble, and declares options in labeled blocks:
//
//	preamble = "Usage: prog [options]"
//
//	option "test" {
//	  description = "A test option."
//	  validate    = "numeric"   # optional, see Validate
//	  hidden      = false       # optional, see Hidden
//	}
//
// Options are registered in the order they are declared, with AddOption: an
// empty or duplicate name is an error. Parser options given as arguments
// are applied after the file preamble, and may override it.
func LoadFile(filename string, opts ...ParserOption) (*Parser, error) {
	file, err := declare.ParseFile(filename)
	if err != nil {
		return nil, argerrors.Wrap(argerrors.Declaration, "", err, "%s", err.Error())
	}

	return fromDeclarations(file, opts)
}

// Load is like LoadFile, but reads declarations from src.
// The filename is only used in error messages.
func Load(src []byte, filename string, opts ...ParserOption) (*Parser, error) {
	file, err := declare.Parse(src, filename)
	if err != nil {
		return nil, argerrors.Wrap(argerrors.Declaration, "", err, "%s", err.Error())
	}

	return fromDeclarations(file, opts)
}

func fromDeclarations(file *declare.File, opts []ParserOption) (*Parser, error) {
	p := New(append([]ParserOption{WithPreamble(file.Preamble)}, opts...)...)

	for _, decl := range file.Options {
		var settings []OptionSetting

		if decl.Validate != "" {
			settings = append(settings, Validate(decl.Validate))
		}

		if decl.Hidden {
			settings = append(settings, Hidden())
		}

		if err := p.AddOption(decl.Name, decl.Description, settings...); err != nil {
			return nil, fmt.Errorf("failed to declare option %q: %w", decl.Name, err)
		}
	}

	return p, nil
}
