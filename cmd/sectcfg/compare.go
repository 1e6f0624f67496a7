package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func compare(cfg *CompareConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Compare.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: compare requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := cfg.load(cc, args[0])
	if err != nil {
		return err
	}
	b, err := cfg.load(cc, args[1])
	if err != nil {
		return err
	}
	if a.CompareValues(b, cfg.Exclude...) {
		fmt.Fprintf(cc.Out, "%s and %s differ\n", a.FileName(), b.FileName())
		return cli.ExitCodeErr(1)
	}
	return nil
}
