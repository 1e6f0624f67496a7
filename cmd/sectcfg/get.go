package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	confs, err := cfg.loadArgs(cc, args[1:])
	if err != nil {
		return err
	}
	missing := 0
	for _, c := range confs {
		v, ok := c.GetByPath(path)
		if !ok {
			theLog.Error("no entry", "file", c.FileName(), "path", path)
			missing++
			continue
		}
		if len(confs) > 1 {
			fmt.Fprintf(cc.Out, "%s: %s\n", c.FileName(), v)
			continue
		}
		fmt.Fprintln(cc.Out, v)
	}
	if missing != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
