package main

import (
	"fmt"
	"io"

	"github.com/SmnThms/Data-Analysis-Tools/tree"
	"github.com/SmnThms/Data-Analysis-Tools/value"

	"github.com/olekukonko/tablewriter"
	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: view requires at least one file", cli.ErrUsage)
	}
	opts := cfg.displayOpts(cc.Out)
	return eachFile(cfg.MainConfig, cc.Out, args, func(n *tree.Node) error {
		_, err := io.WriteString(cc.Out, n.Render(value.Value.String, opts...))
		return err
	})
}

func keys(cfg *KeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Keys.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: keys requires at least one file", cli.ErrUsage)
	}
	opts := cfg.displayOpts(cc.Out)
	return eachFile(cfg.MainConfig, cc.Out, args, func(n *tree.Node) error {
		return n.PrintKeys(cc.Out, opts...)
	})
}

func types(cfg *TypesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Types.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: types requires at least one file", cli.ErrUsage)
	}
	opts := cfg.displayOpts(cc.Out)
	return eachFile(cfg.MainConfig, cc.Out, args, func(n *tree.Node) error {
		if cfg.Table {
			typesTable(n, cc.Out, cfg.pathOpts()...)
			return nil
		}
		return n.PrintTypes(cc.Out, opts...)
	})
}

// typesTable lists the keypath, kind and type of every leaf of n.
func typesTable(n *tree.Node, w io.Writer, opts ...tree.PathOption) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"keypath", "kind", "type"})
	table.SetAutoWrapText(false)
	n.Walk(func(kp, _ string, e tree.Entry) bool {
		if e.IsLeaf() {
			v := e.Value()
			table.Append([]string{kp, v.Kind.String(), v.TypeString()})
		}
		return true
	}, opts...)
	table.Render()
}
