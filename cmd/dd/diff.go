package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/SmnThms/Data-Analysis-Tools/encode"
	"github.com/SmnThms/Data-Analysis-Tools/tree"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := loadTree(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	b, err := loadTree(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	var differs bool
	if cfg.Patch {
		differs, err = mergePatch(a, b, cc.Out, cfg.sep())
	} else {
		differs, err = diffLines(a, b, cc.Out, cfg.colors(cc.Out) != nil)
	}
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// diffLines writes a line diff of the renderings of a and b, reporting
// whether they differ.
func diffLines(a, b *tree.Node, w io.Writer, colored bool) (bool, error) {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a.String(), b.String())
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	del, ins := color.New(color.FgRed), color.New(color.FgGreen)
	if colored {
		del.EnableColor()
		ins.EnableColor()
	} else {
		del.DisableColor()
		ins.DisableColor()
	}
	buf := &bytes.Buffer{}
	differs := false
	for _, d := range diffs {
		prefix, c := "  ", (*color.Color)(nil)
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix, c = "- ", del
		case diffpatch.DiffInsert:
			prefix, c = "+ ", ins
		}
		if c != nil {
			differs = true
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			line = prefix + strings.TrimSuffix(line, "\n")
			if c != nil {
				line = c.Sprint(line)
			}
			buf.WriteString(line)
			buf.WriteByte('\n')
		}
	}
	if !differs {
		return false, nil
	}
	_, err := w.Write(buf.Bytes())
	return true, err
}

// mergePatch writes the JSON merge patch taking a to b, reporting whether
// it is not empty.
func mergePatch(a, b *tree.Node, w io.Writer, sep string) (bool, error) {
	opts := []encode.EncodeOption{encode.Indent(0), encode.EncodeSeparator(sep)}
	da, db := &bytes.Buffer{}, &bytes.Buffer{}
	if err := encode.Encode(a, da, opts...); err != nil {
		return false, err
	}
	if err := encode.Encode(b, db, opts...); err != nil {
		return false, err
	}
	p, err := jsonpatch.CreateMergePatch(da.Bytes(), db.Bytes())
	if err != nil {
		return false, fmt.Errorf("error creating merge patch: %w", err)
	}
	if string(p) == "{}" {
		return false, nil
	}
	_, err = fmt.Fprintf(w, "%s\n", p)
	return true, err
}
