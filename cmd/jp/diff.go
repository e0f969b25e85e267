package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/json-toolkit/go-jsontk/diff"
	"github.com/json-toolkit/go-jsontk/encode"
	"github.com/json-toolkit/go-jsontk/ir"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func jpDiff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if cfg.Text && cfg.Check {
		return fmt.Errorf("%w: -text and -check are mutually exclusive", cli.ErrUsage)
	}
	from, err := readDoc(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	to, err := readDoc(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if cfg.Text {
		return textDiff(cfg, cc, from, to)
	}
	patch := diff.Make(from, to)
	if patch == nil {
		return nil
	}
	if cfg.Check {
		if err := checkPatch(from, to, patch); err != nil {
			return fmt.Errorf("patch does not transform %s into %s: %w", args[0], args[1], err)
		}
	}
	if err := encode.Encode(patch, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

// checkPatch applies patch to from with an independent merge-patch
// implementation and verifies it reproduces to.
func checkPatch(from, to, patch *ir.Node) error {
	fromJSON, err := json.Marshal(from)
	if err != nil {
		return err
	}
	toJSON, err := json.Marshal(to)
	if err != nil {
		return err
	}
	patchJSON, err := json.Marshal(patch)
	if err != nil {
		return err
	}
	patched, err := jsonpatch.MergePatch(fromJSON, patchJSON)
	if err != nil {
		return fmt.Errorf("error applying patch: %w", err)
	}
	if !jsonpatch.Equal(patched, toJSON) {
		return fmt.Errorf("patched document is %s", patched)
	}
	return nil
}

// textDiff prints a line diff of the two documents' encoded forms.
func textDiff(cfg *DiffConfig, cc *cli.Context, from, to *ir.Node) error {
	fromText, err := encode.String(from, cfg.textOpts()...)
	if err != nil {
		return err
	}
	toText, err := encode.String(to, cfg.textOpts()...)
	if err != nil {
		return err
	}
	diffCfg := diffpatch.New()
	fromCh, toCh, lines := diffCfg.DiffLinesToChars(fromText, toText)
	diffs := diffCfg.DiffCharsToLines(diffCfg.DiffMain(fromCh, toCh, false), lines)
	differs := false
	useColor := cfg.useColor(cc.Out)
	for _, d := range diffs {
		var prefix string
		paint := fmt.Sprintf
		switch d.Type {
		case diffpatch.DiffDelete:
			differs = true
			prefix = "-"
			if useColor {
				paint = color.RedString
			}
		case diffpatch.DiffInsert:
			differs = true
			prefix = "+"
			if useColor {
				paint = color.GreenString
			}
		case diffpatch.DiffEqual:
			prefix = " "
		}
		if err := writeDiffLines(cc.Out, prefix, d.Text, paint); err != nil {
			return err
		}
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// textOpts is the output format without wire mode or colors: the line
// diff needs stable multi-line plain text to compare.
func (cfg *DiffConfig) textOpts() []encode.EncodeOption {
	res := []encode.EncodeOption{encode.EncodeFormat(cfg.outputFormat())}
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	return res
}

func writeDiffLines(w io.Writer, prefix, text string, paint func(string, ...any) string) error {
	text = strings.TrimSuffix(text, "\n")
	for _, line := range strings.Split(text, "\n") {
		if _, err := fmt.Fprintln(w, paint("%s %s", prefix, line)); err != nil {
			return err
		}
	}
	return nil
}
