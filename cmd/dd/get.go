package main

import (
	"fmt"

	"github.com/SmnThms/Data-Analysis-Tools/tree"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: get requires a keypath and at least one file", cli.ErrUsage)
	}
	kp := args[0]
	if err := checkKeypaths(cfg.sep(), kp); err != nil {
		return err
	}
	return eachFile(cfg.MainConfig, cc.Out, args[1:], func(n *tree.Node) error {
		e, ok := n.Lookup(kp, cfg.pathOpts()...)
		if !ok {
			return fmt.Errorf("%w: %q", tree.ErrKeyNotFound, kp)
		}
		return writeEntry(cfg.MainConfig, cc.Out, e)
	})
}

func search(cfg *SearchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Search.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: search requires a key and at least one file", cli.ErrUsage)
	}
	key := args[0]
	opts := []tree.SearchOption{tree.Partial(cfg.Partial), tree.SearchSeparator(cfg.sep())}
	return eachFile(cfg.MainConfig, cc.Out, args[1:], func(n *tree.Node) error {
		for _, kp := range n.Search(key, opts...) {
			if _, err := fmt.Fprintln(cc.Out, kp); err != nil {
				return err
			}
		}
		return nil
	})
}

func selectKeys(cfg *SelectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Select.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: select requires a file and at least one keypath", cli.ErrUsage)
	}
	if err := checkKeypaths(cfg.sep(), args[1:]...); err != nil {
		return err
	}
	n, err := loadTree(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	return writeTree(cfg.MainConfig, cc.Out, n.Select(args[1:], cfg.pathOpts()...))
}

func pop(cfg *PopConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Pop.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: pop requires a file and at least one keypath", cli.ErrUsage)
	}
	if err := checkKeypaths(cfg.sep(), args[1:]...); err != nil {
		return err
	}
	n, err := loadTree(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	if err := popKeys(n, args[1:], cfg.pathOpts()...); err != nil {
		return err
	}
	return writeTree(cfg.MainConfig, cc.Out, n)
}

func popKeys(n *tree.Node, kps []string, opts ...tree.PathOption) error {
	for _, kp := range kps {
		if _, err := n.Pop(kp, opts...); err != nil {
			return err
		}
	}
	return nil
}
