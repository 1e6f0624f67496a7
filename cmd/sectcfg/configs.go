package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/signadot/sectcfg/config"
	"github.com/signadot/sectcfg/encode"
	"github.com/signadot/sectcfg/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Simple bool   `cli:"name=s aliases=simple desc='read bare lines instead of entries'"`
	Empty  bool   `cli:"name=e aliases=empty desc='allow sections without content'"`
	Sep    string `cli:"name=sep desc='default separator written on save'"`
	Quiet  bool   `cli:"name=q desc='do not log parse problems'"`
	Color  bool   `cli:"name=color desc='encode with color'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) logger() *slog.Logger {
	if cfg.Quiet {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return theLog
}

func (cfg *MainConfig) configOpts() []config.Option {
	return []config.Option{
		config.Simple(cfg.Simple),
		config.AllowEmptySections(cfg.Empty),
		config.DefaultSeparator(cfg.Sep),
		config.WithLogger(cfg.logger()),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
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

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type FlatConfig struct {
	*MainConfig

	Format *format.Format
	Join   string `cli:"name=join desc='path segment separator (default .)'"`

	Flat *cli.Command
}

func (cfg *FlatConfig) fmtFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		var f format.Format
		if err := f.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.Format = &f
		return f, nil
	})
}

// outFormat is the -f format, else the one matching the -o file suffix,
// else text.
func (cfg *FlatConfig) outFormat() format.Format {
	if cfg.Format != nil {
		return *cfg.Format
	}
	if f, ok := format.FromPath(cfg.Out); ok {
		return f
	}
	return format.TextFormat
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type UpdateConfig struct {
	*MainConfig

	Write bool `cli:"name=w desc='write the result back to the older file'"`
	Diff  bool `cli:"name=d desc='show a line diff of the update'"`

	Update *cli.Command
}

type CompareConfig struct {
	*MainConfig

	Exclude []string

	Compare *cli.Command
}

func (cfg *CompareConfig) excludeFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		cfg.Exclude = append(cfg.Exclude, v)
		return 0, nil
	})
}
