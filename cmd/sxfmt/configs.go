package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/sx-format/go-sx/convert"
	"github.com/sx-format/go-sx/encode"
	"github.com/sx-format/go-sx/parse"
)

type MainConfig struct {
	List  bool `cli:"name=l desc='list files whose formatting differs'"`
	Write bool `cli:"name=w desc='write result back to source file instead of stdout'"`
	Diff  bool `cli:"name=d desc='display diffs instead of rewriting files'"`
	View  bool `cli:"name=view desc='render output with color'"`
	Strip bool `cli:"name=s desc='drop #-comment lines before parsing'"`

	Indent   string `cli:"name=indent desc='indent string (default tab)'"`
	MaxDepth int    `cli:"name=depth desc='maximum nesting depth'"`

	Roots     []string
	OutFormat *convert.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	var res []parse.ParseOption
	if cfg.MaxDepth > 0 {
		res = append(res, parse.MaxDepth(cfg.MaxDepth))
	}
	return res
}

func (cfg *MainConfig) encOpts() []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Indent != "" {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if len(cfg.Roots) > 0 {
		res = append(res, encode.DocumentRoots(cfg.Roots...))
	}
	return res
}

// viewOpts adds colors on top of encOpts when -view is set and the sink
// is a terminal, so redirected view output stays free of escapes.
func (cfg *MainConfig) viewOpts(w io.Writer) []encode.EncodeOption {
	res := cfg.encOpts()
	if !cfg.View {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}
