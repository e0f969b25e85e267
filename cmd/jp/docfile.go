package main

import (
	"fmt"
	"io"

	"github.com/json-toolkit/go-jsontk/debug"
	"github.com/json-toolkit/go-jsontk/ir"
	"github.com/json-toolkit/go-jsontk/parse"

	"github.com/scott-cotton/cli"
)

// readDoc parses the document at path, "-" meaning cc.In. Stdin
// defaults to JSON; files sniff the format from their extension unless
// an explicit format option overrides it.
func readDoc(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	if debug.CLI() {
		debug.Logf("jp: reading %q\n", path)
	}
	if path != "-" {
		return parse.ParseFile(path, opts...)
	}
	d, err := io.ReadAll(cc.In)
	if err != nil {
		return nil, fmt.Errorf("error reading stdin: %w", err)
	}
	return parse.Parse(d, opts...)
}

// docArgs returns args, or a single "-" when args is empty.
func docArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func writeDocSep(w io.Writer) error {
	_, err := w.Write([]byte("---\n"))
	return err
}
