package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/json-toolkit/go-jsontk"
	"github.com/json-toolkit/go-jsontk/encode"
	"github.com/json-toolkit/go-jsontk/ir"

	"github.com/scott-cotton/cli"
)

func ls(cfg *LsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Ls.Parse(cc, args)
	if err != nil {
		cfg.Ls.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	p := jsontk.Root()
	if len(args) > 0 {
		p, err = jsontk.New(args[0])
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		args = args[1:]
	}
	files := docArgs(args)
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
		if err := lsNode(cfg, cc.Out, p, res); err != nil {
			return err
		}
	}
	return nil
}

// lsNode prints one line per immediate child of n. Leaves have no
// children and print nothing.
func lsNode(cfg *LsConfig, w io.Writer, p jsontk.Pointer, n *ir.Node) error {
	for i := 0; i < n.Len(); i++ {
		var tok string
		if n.Type == ir.ObjectType {
			tok = n.KeyAt(i)
		} else {
			tok = strconv.Itoa(i)
		}
		line := p.Append(tok).String()
		if cfg.Long {
			line += "\t" + summarize(n.At(i))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func summarize(n *ir.Node) string {
	s := encode.MustString(n, encode.EncodeWire(true))
	if len(s) > 60 {
		s = strings.ToValidUTF8(s[:57], "") + "..."
	}
	return s
}
