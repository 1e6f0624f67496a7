package main

import (
	"fmt"
	"io"

	"github.com/signadot/sectcfg/config"

	"github.com/scott-cotton/cli"
)

// load parses file, or standard input for "-".
func (cfg *MainConfig) load(cc *cli.Context, file string) (*config.Config, error) {
	if file == "-" {
		return cfg.loadReader(cc.In, "<stdin>")
	}
	c, err := config.Open(file, cfg.configOpts()...)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", file, err)
	}
	return c, nil
}

func (cfg *MainConfig) loadReader(r io.Reader, name string) (*config.Config, error) {
	c, err := config.New(r, name, cfg.configOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error processing %s: %w", name, err)
	}
	return c, nil
}

// loadArgs loads every file in args, standard input when there are none.
func (cfg *MainConfig) loadArgs(cc *cli.Context, args []string) ([]*config.Config, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	res := make([]*config.Config, 0, len(args))
	for _, a := range args {
		c, err := cfg.load(cc, a)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, nil
}

