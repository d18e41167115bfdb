package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/SmnThms/Data-Analysis-Tools/debug"
	"github.com/SmnThms/Data-Analysis-Tools/encode"
	"github.com/SmnThms/Data-Analysis-Tools/kpath"
	"github.com/SmnThms/Data-Analysis-Tools/load"
	"github.com/SmnThms/Data-Analysis-Tools/notation"
	"github.com/SmnThms/Data-Analysis-Tools/tree"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Sep     string `cli:"name=sep desc='keypath separator (default .)'"`
	Color   bool   `cli:"name=color desc='output with color'"`
	WireOut bool   `cli:"name=wire desc='output compact json'"`
	Delim   string `cli:"name=d desc='csv field delimiter (default ;)'"`
	Debug   string `cli:"name=debug desc='comma separated debug flags: load,merge,save,encode'"`
	Config  string `cli:"name=config desc='config file (default $DD_CONFIG or <config dir>/dd/config.yaml)'"`

	File *FileConfig

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) sep() string {
	if cfg.Sep != "" {
		return cfg.Sep
	}
	if cfg.File != nil && cfg.File.Sep != "" {
		return cfg.File.Sep
	}
	return kpath.DefaultSeparator
}

func (cfg *MainConfig) pathOpts() []tree.PathOption {
	return []tree.PathOption{tree.Separator(cfg.sep())}
}

func (cfg *MainConfig) loadOpts() ([]load.LoadOption, error) {
	res := []load.LoadOption{}
	delim := cfg.Delim
	if delim == "" && cfg.File != nil {
		delim = cfg.File.Delimiter
	}
	if delim != "" {
		r, n := utf8.DecodeRuneInString(delim)
		if n != len(delim) {
			return nil, fmt.Errorf("%w: delimiter %q is not a single character", cli.ErrUsage, delim)
		}
		res = append(res, load.Delimiter(r))
	}
	if cfg.File != nil && cfg.File.CommentMarker != "" {
		res = append(res, load.CommentMarker(cfg.File.CommentMarker))
	}
	return res, nil
}

func (cfg *MainConfig) notationOpts() []notation.Option {
	if cfg.File == nil {
		return nil
	}
	n := cfg.File.Notation
	var res []notation.Option
	if n.Digits > 0 {
		res = append(res, notation.UncertaintyDigits(n.Digits))
	}
	if n.Exponent != "" {
		res = append(res, notation.ExponentSeparator(n.Exponent))
	}
	if n.Decimal != "" {
		res = append(res, notation.DecimalSeparator(n.Decimal))
	}
	return res
}

func (cfg *MainConfig) setDebug() error {
	var names []string
	if cfg.File != nil {
		names = append(names, cfg.File.Debug...)
	}
	if cfg.Debug != "" {
		names = append(names, strings.Split(cfg.Debug, ",")...)
	}
	for _, name := range names {
		if err := debug.Set(strings.TrimSpace(name), true); err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	return nil
}

func (cfg *MainConfig) colors(w io.Writer) *tree.Colors {
	if cfg.Color {
		color.NoColor = false
		return tree.NewColors()
	}
	colorsSet := false
	for _, opt := range cfg.opts() {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return nil
	}
	if cfg.File != nil && cfg.File.Color != nil {
		if !*cfg.File.Color {
			return nil
		}
		color.NoColor = false
		return tree.NewColors()
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return tree.NewColors()
	}
	return nil
}

func (cfg *MainConfig) opts() []*cli.Opt {
	if cfg.Main == nil {
		return nil
	}
	return cfg.Main.Opts
}

func (cfg *MainConfig) displayOpts(w io.Writer) []tree.DisplayOption {
	c := cfg.colors(w)
	if c == nil {
		return nil
	}
	return []tree.DisplayOption{tree.WithColors(c)}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{encode.EncodeSeparator(cfg.sep())}
	switch {
	case cfg.WireOut:
		res = append(res, encode.Indent(0))
	case cfg.File != nil && cfg.File.Indent != nil:
		res = append(res, encode.Indent(*cfg.File.Indent))
	}
	if c := cfg.colors(w); c != nil {
		res = append(res, encode.EncodeColors(c))
	}
	return res
}

// saveOpts are encOpts for files, which are never colored.
func (cfg *MainConfig) saveOpts() []encode.EncodeOption {
	return cfg.encOpts(io.Discard)
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type KeysConfig struct {
	*MainConfig

	Keys *cli.Command
}

type TypesConfig struct {
	*MainConfig
	Table bool `cli:"name=table desc='list leaf types as a table'"`

	Types *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SearchConfig struct {
	*MainConfig
	Partial bool `cli:"name=p desc='match keys containing the search key'"`

	Search *cli.Command
}

type SelectConfig struct {
	*MainConfig

	Select *cli.Command
}

type MergeConfig struct {
	*MainConfig
	Overwrite bool `cli:"name=w desc='later files overwrite conflicting leaves'"`

	Merge *cli.Command
}

type RenameConfig struct {
	*MainConfig

	Rename *cli.Command
}

type PopConfig struct {
	*MainConfig

	Pop *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Patch bool `cli:"name=patch desc='output a json merge patch'"`

	Diff *cli.Command
}

type MeasureConfig struct {
	*MainConfig

	Measure *cli.Command
}
