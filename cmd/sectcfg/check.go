package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	confs, err := cfg.loadArgs(cc, args)
	if err != nil {
		return err
	}
	failed := false
	for _, c := range confs {
		for _, d := range c.Diagnostics() {
			fmt.Fprintf(cc.Out, "%s\n", d)
		}
		n := c.Errors() + c.EmptySections()
		if n == 0 {
			continue
		}
		failed = true
		fmt.Fprintf(cc.Out, "%d errors in %s\n", n, c.FileName())
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}
