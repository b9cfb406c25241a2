package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/sx-format/go-sx/convert"
	"github.com/sx-format/go-sx/debug"
	"github.com/sx-format/go-sx/encode"
	"github.com/sx-format/go-sx/ir"
	"github.com/sx-format/go-sx/parse"
)

func sxfmtMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Write && cfg.OutFormat != nil {
		return fmt.Errorf("%w: -w cannot be combined with -O", cli.ErrUsage)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	diffCount := 0
	for _, path := range args {
		if err := formatFile(cfg, cc, path, &diffCount); err != nil {
			return err
		}
	}
	if diffCount > 0 && (cfg.List || cfg.Diff) {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func formatFile(cfg *MainConfig, cc *cli.Context, path string, diffCount *int) error {
	src, err := readInput(cc, path)
	if err != nil {
		return err
	}
	in := src
	if cfg.Strip {
		in = parse.StripHashLines(in)
	}
	node, err := parse.Parse(in, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", path, err)
	}
	if debug.Parse() {
		debug.Logf("parsed %s:\n%s", path, debug.Sexp{Node: node})
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, cfg.encOpts()...); err != nil {
		return fmt.Errorf("error formatting %s: %w", path, err)
	}
	formatted := buf.Bytes()
	differs := !bytes.Equal(src, formatted)
	if differs {
		*diffCount++
	}

	report := false
	if cfg.List && differs {
		fmt.Fprintln(cc.Out, path)
		report = true
	}
	if cfg.Diff && differs {
		if err := writeDiff(cc.Out, path, src, formatted); err != nil {
			return err
		}
		report = true
	}
	if cfg.Write {
		if path == "-" {
			return fmt.Errorf("%w: -w requires named files", cli.ErrUsage)
		}
		if differs {
			if err := os.WriteFile(path, formatted, 0644); err != nil {
				return fmt.Errorf("error writing %s: %w", path, err)
			}
		}
		report = true
	}
	if report {
		return nil
	}

	if cfg.OutFormat != nil {
		return writeConverted(cfg, cc.Out, node)
	}
	if err := encode.Encode(node, cc.Out, cfg.viewOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding %s: %w", path, err)
	}
	return nil
}

func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func writeDiff(w io.Writer, path string, src, formatted []byte) error {
	if _, err := fmt.Fprintf(w, "diff %s sxfmt/%s\n", path, path); err != nil {
		return err
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(string(src), string(formatted), true)
	var out string
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		out = dmp.DiffPrettyText(diffs)
	} else {
		out = dmp.PatchToText(dmp.PatchMake(string(src), diffs))
	}
	_, err := io.WriteString(w, out)
	return err
}

func writeConverted(cfg *MainConfig, w io.Writer, node *ir.Node) error {
	var (
		d   []byte
		err error
	)
	switch *cfg.OutFormat {
	case convert.YAMLFormat:
		d, err = convert.ToYAML(node)
	case convert.JSONFormat:
		d, err = convert.ToJSON(node)
	default:
		return encode.Encode(node, w, cfg.encOpts()...)
	}
	if err != nil {
		return err
	}
	if d[len(d)-1] != '\n' {
		d = append(d, '\n')
	}
	_, err = w.Write(d)
	return err
}
