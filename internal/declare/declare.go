// Package declare decodes option declarations written in HCL:
//
//	preamble = "Usage: prog [options]"
//
//	option "test1" {
//	  description = "Just a test option 1."
//	}
//
//	option "port" {
//	  description = "Port to listen on."
//	  validate    = "numeric"
//	}
//
//	option "debug-dump" {
//	  hidden = true
//	}
package declare

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// File is the top-level structure of a declaration file.
type File struct {
	Preamble string    `hcl:"preamble,optional"`
	Options  []*Option `hcl:"option,block"`
}

// Option is a single option block. The block label is the raw
// (undashed) option name, as passed to the parser's AddOption.
type Option struct {
	Name        string `hcl:"name,label"`
	Description string `hcl:"description,optional"`
	Validate    string `hcl:"validate,optional"`
	Hidden      bool   `hcl:"hidden,optional"`
}

// ParseFile reads and decodes a declaration file from disk.
func ParseFile(filename string) (*File, error) {
	parser := hclparse.NewParser()

	hclFile, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	return decode(hclFile.Body, filename)
}

// Parse decodes declarations from source bytes. The filename is
// only used in diagnostics.
func Parse(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()

	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	return decode(hclFile.Body, filename)
}

func decode(body hcl.Body, filename string) (*File, error) {
	var file File

	diags := gohcl.DecodeBody(body, nil, &file)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	return &file, nil
}
