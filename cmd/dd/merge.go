package main

import (
	"fmt"

	"github.com/SmnThms/Data-Analysis-Tools/debug"
	"github.com/SmnThms/Data-Analysis-Tools/encode"
	"github.com/SmnThms/Data-Analysis-Tools/kpath"
	"github.com/SmnThms/Data-Analysis-Tools/tree"

	"github.com/scott-cotton/cli"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: merge requires an output file and at least one input file", cli.ErrUsage)
	}
	out, files := args[0], args[1:]
	trees, err := loadTrees(cfg.MainConfig, files)
	if err != nil {
		return err
	}
	res, err := tree.Merge(trees, tree.Overwrite(cfg.Overwrite), tree.MergeSeparator(cfg.sep()))
	if err != nil {
		return fmt.Errorf("error merging %v: %w", files, err)
	}
	if debug.Merge() {
		debug.Logf("merged %d files into %s\n", len(files), out)
	}
	return save(cfg.MainConfig, res, out)
}

func rename(cfg *RenameConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rename.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 3 || len(args)%2 == 0 {
		return fmt.Errorf("%w: rename requires a file and pairs of old and new keys", cli.ErrUsage)
	}
	for i := 2; i < len(args); i += 2 {
		if err := kpath.CheckKey(args[i], cfg.sep()); err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	n, err := loadTree(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	if err := n.Rename(args[1:]...); err != nil {
		return err
	}
	return writeTree(cfg.MainConfig, cc.Out, n)
}

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: convert requires an input and an output file", cli.ErrUsage)
	}
	n, err := loadTree(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	return save(cfg.MainConfig, n, args[1])
}

func save(cfg *MainConfig, n *tree.Node, path string) error {
	if err := encode.Save(n, path, cfg.saveOpts()...); err != nil {
		return fmt.Errorf("error saving %s: %w", path, err)
	}
	return nil
}
