package main

import (
	"fmt"

	"github.com/json-toolkit/go-jsontk"
	"github.com/json-toolkit/go-jsontk/debug"
	"github.com/json-toolkit/go-jsontk/encode"
	"github.com/json-toolkit/go-jsontk/ir"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires two arguments, a JSON pointer and a value", cli.ErrUsage)
	}
	p, err := jsontk.New(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	val, err := setValue(cfg, args[1])
	if err != nil {
		return err
	}
	files := docArgs(args[2:])
	for i, file := range files {
		doc, err := readDoc(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		prev, err := doc.InsertAt(p, val.Clone())
		if err != nil {
			return fmt.Errorf("error setting %s in %s: %w", p, file, err)
		}
		if debug.CLI() {
			debug.Logf("jp: set %s in %s, had %v\n", p, file, prev)
		}
		out := doc
		if cfg.Prev {
			out = prev
		}
		if i > 0 {
			if err := writeDocSep(cc.Out); err != nil {
				return err
			}
		}
		if err := encode.Encode(out, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}

func setValue(cfg *SetConfig, arg string) (*ir.Node, error) {
	if cfg.String {
		return ir.FromString(arg), nil
	}
	val, err := ir.FromJSON([]byte(arg))
	if err != nil {
		return nil, fmt.Errorf("%w: value %q is not JSON (use -s for strings): %w", cli.ErrUsage, arg, err)
	}
	return val, nil
}
