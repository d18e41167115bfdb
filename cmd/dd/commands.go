package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "dd").
		WithSynopsis("dd [opts] command [opts]").
		WithDescription("dd is a tool for working with hierarchical data files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ddMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			KeysCommand(cfg),
			TypesCommand(cfg),
			GetCommand(cfg),
			SearchCommand(cfg),
			SelectCommand(cfg),
			MergeCommand(cfg),
			RenameCommand(cfg),
			PopCommand(cfg),
			ConvertCommand(cfg),
			DiffCommand(cfg),
			MeasureCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view data files as an indented tree").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func KeysCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &KeysConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Keys, "keys").
		WithAliases("k").
		WithSynopsis("keys [files]").
		WithDescription("show the key hierarchy of data files").
		WithRun(func(cc *cli.Context, args []string) error {
			return keys(cfg, cc, args)
		})
}

func TypesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TypesConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Types, "types").
		WithAliases("t").
		WithSynopsis("types [-table] [files]").
		WithDescription("show the type of every value in data files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return types(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <keypath> [files]").
		WithDescription("get the entry at a keypath from data files").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func SearchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SearchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Search, "search").
		WithAliases("s").
		WithSynopsis("search [-p] <key> [files]").
		WithDescription("list the keypaths of a key in data files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return search(cfg, cc, args)
		})
}

func SelectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SelectConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Select, "select").
		WithSynopsis("select <file> <keypath>...").
		WithDescription("output the sub-tree made of the given keypaths").
		WithRun(func(cc *cli.Context, args []string) error {
			return selectKeys(cfg, cc, args)
		})
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Merge, "merge").
		WithAliases("m").
		WithSynopsis("merge [-w] <out.json> <file>...").
		WithDescription("merge data files in order and save the result").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return merge(cfg, cc, args)
		})
}

func RenameCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RenameConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Rename, "rename").
		WithSynopsis("rename <file> <old> <new> [<old> <new>]...").
		WithDescription("rename top level keys and output the result").
		WithRun(func(cc *cli.Context, args []string) error {
			return rename(cfg, cc, args)
		})
}

func PopCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PopConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Pop, "pop").
		WithSynopsis("pop <file> <keypath>...").
		WithDescription("remove keypaths and output the result").
		WithRun(func(cc *cli.Context, args []string) error {
			return pop(cfg, cc, args)
		})
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Convert, "convert").
		WithAliases("c").
		WithSynopsis("convert <in> <out.json>").
		WithDescription("load a data file and save it as json").
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithOpts(opts...).
		WithSynopsis("diff [-patch] a b").
		WithDescription("diff data files").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func MeasureCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MeasureConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Measure, "measure").
		WithSynopsis("measure <file> <key>...").
		WithDescription("show measured values with their uncertainty in short notation").
		WithRun(func(cc *cli.Context, args []string) error {
			return measure(cfg, cc, args)
		})
}
