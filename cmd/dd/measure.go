package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func measure(cfg *MeasureConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Measure.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: measure requires a file and at least one key", cli.ErrUsage)
	}
	n, err := loadTree(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	opts := cfg.notationOpts()
	for _, key := range args[1:] {
		s, err := n.Measure(key, opts...)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(cc.Out, s); err != nil {
			return err
		}
	}
	return nil
}
