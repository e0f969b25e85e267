package main

import (
	"fmt"

	"github.com/json-toolkit/go-jsontk"
	"github.com/json-toolkit/go-jsontk/ir"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"
)

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		cfg.Find.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: find requires one argument, an expression", cli.ErrUsage)
	}
	src := args[0]
	prg, err := expr.Compile(src)
	if err != nil {
		return fmt.Errorf("%w: bad expression %q: %w", cli.ErrUsage, src, err)
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
		err = doc.Walk(func(p jsontk.Pointer, n *ir.Node) (bool, error) {
			res, err := expr.Run(prg, findEnv(p, n))
			if err != nil {
				return false, fmt.Errorf("error evaluating %q at %q: %w", src, p.String(), err)
			}
			hit, ok := res.(bool)
			if !ok {
				return false, fmt.Errorf("expression %q returned %T, not bool", src, res)
			}
			if !hit {
				return true, nil
			}
			line := p.String()
			if cfg.Long {
				line += "\t" + summarize(n)
			}
			_, err = fmt.Fprintln(cc.Out, line)
			return true, err
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func findEnv(p jsontk.Pointer, n *ir.Node) map[string]any {
	key, _ := p.Key()
	return map[string]any{
		"pointer": p.String(),
		"key":     key,
		"depth":   p.Depth(),
		"value":   n.ToAny(),
		"type":    n.Type.String(),
	}
}
