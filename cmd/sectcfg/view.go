package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	confs, err := cfg.loadArgs(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	for i, c := range confs {
		if i > 0 {
			if _, err := fmt.Fprintln(cc.Out); err != nil {
				return err
			}
		}
		if err := c.Save(cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", c.FileName(), err)
		}
	}
	return nil
}
