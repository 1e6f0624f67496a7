package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/sectcfg/merge"

	"github.com/scott-cotton/cli"
)

func update(cfg *UpdateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Update.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: update requires 2 args, got %v", cli.ErrUsage, args)
	}
	older, err := cfg.load(cc, args[0])
	if err != nil {
		return err
	}
	newer, err := cfg.load(cc, args[1])
	if err != nil {
		return err
	}
	before := bytes.NewBuffer(nil)
	if err := older.Save(before); err != nil {
		return err
	}
	changed, err := older.UpdateKeys(newer)
	if err != nil {
		return err
	}
	after := bytes.NewBuffer(nil)
	if err := older.Save(after); err != nil {
		return err
	}
	if !changed {
		theLog.Info("up to date", "file", older.FileName())
	}
	switch {
	case cfg.Diff:
		if _, err := io.WriteString(cc.Out, merge.Diff(before.String(), after.String())); err != nil {
			return err
		}
	case !cfg.Write:
		if _, err := cc.Out.Write(after.Bytes()); err != nil {
			return err
		}
	}
	if cfg.Write && changed {
		if err := older.SaveFile(""); err != nil {
			return err
		}
		theLog.Info("updated", "file", older.Path())
	}
	return nil
}
