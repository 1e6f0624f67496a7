package main

import (
	"fmt"
	"maps"

	"github.com/signadot/sectcfg/format"

	"github.com/scott-cotton/cli"
)

func flat(cfg *FlatConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Flat.Parse(cc, args)
	if err != nil {
		return err
	}
	fmat := cfg.outFormat()
	confs, err := cfg.loadArgs(cc, args)
	if err != nil {
		return err
	}
	m := map[string]string{}
	for _, c := range confs {
		maps.Copy(m, c.ToMap(cfg.Join))
	}
	if err := format.WriteMap(cc.Out, m, fmat); err != nil {
		return fmt.Errorf("error writing %s: %w", fmat, err)
	}
	return nil
}
