package main

import (
	"fmt"
	"strings"

	"github.com/json-toolkit/go-jsontk/encode"
	"github.com/json-toolkit/go-jsontk/ir"

	"github.com/scott-cotton/cli"
	"github.com/theory/jsonpath"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires one argument, a JSONPath expression", cli.ErrUsage)
	}
	q := args[0]
	if q == "" {
		return fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	if !strings.HasPrefix(q, "$") {
		q = "$" + q
	}
	path, err := jsonpath.Parse(q)
	if err != nil {
		return fmt.Errorf("%w: invalid query %q: %w", cli.ErrUsage, q, err)
	}
	files := docArgs(args[1:])
	for i, file := range files {
		doc, err := readDoc(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if i > 0 {
			if err := writeDocSep(cc.Out); err != nil {
				return err
			}
		}
		for _, v := range path.Select(doc.ToAny()) {
			node, err := ir.FromAny(v)
			if err != nil {
				return fmt.Errorf("error converting result: %w", err)
			}
			if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
				return fmt.Errorf("error encoding result: %w", err)
			}
			if cfg.WireOut {
				if _, err := fmt.Fprintln(cc.Out); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
