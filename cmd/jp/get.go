package main

import (
	"fmt"

	"github.com/json-toolkit/go-jsontk"
	"github.com/json-toolkit/go-jsontk/encode"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a JSON pointer", cli.ErrUsage)
	}
	p, err := jsontk.New(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	files := docArgs(args[1:])
	for i, file := range files {
		doc, err := readDoc(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		res, ok := doc.Resolve(p)
		if !ok {
			return cli.ExitCodeErr(1)
		}
		if i > 0 {
			if err := writeDocSep(cc.Out); err != nil {
				return err
			}
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}
