package main

import (
	"fmt"
	"io"

	"github.com/SmnThms/Data-Analysis-Tools/encode"
	"github.com/SmnThms/Data-Analysis-Tools/kpath"
	"github.com/SmnThms/Data-Analysis-Tools/load"
	"github.com/SmnThms/Data-Analysis-Tools/tree"

	"github.com/scott-cotton/cli"
)

func loadTree(cfg *MainConfig, path string) (*tree.Node, error) {
	opts, err := cfg.loadOpts()
	if err != nil {
		return nil, err
	}
	n, err := load.Load(path, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", path, err)
	}
	return n, nil
}

func loadTrees(cfg *MainConfig, paths []string) ([]*tree.Node, error) {
	res := make([]*tree.Node, 0, len(paths))
	for _, path := range paths {
		n, err := loadTree(cfg, path)
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, nil
}

// eachFile loads every file and calls fn on its tree, writing a document
// separator between files.
func eachFile(cfg *MainConfig, w io.Writer, files []string, fn func(n *tree.Node) error) error {
	for i, file := range files {
		if i > 0 {
			if _, err := io.WriteString(w, "---\n"); err != nil {
				return err
			}
		}
		n, err := loadTree(cfg, file)
		if err != nil {
			return err
		}
		if err := fn(n); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

func writeTree(cfg *MainConfig, w io.Writer, n *tree.Node) error {
	if err := encode.Encode(n, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

func writeEntry(cfg *MainConfig, w io.Writer, e tree.Entry) error {
	if e.IsNode() {
		return writeTree(cfg, w, e.Node())
	}
	_, err := fmt.Fprintln(w, e.Value().String())
	return err
}

func checkKeypaths(sep string, kps ...string) error {
	for _, kp := range kps {
		if _, err := kpath.Parse(kp, sep); err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	return nil
}
