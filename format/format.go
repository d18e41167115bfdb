package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	JSONFormat Format = iota
	// ContainerFormat covers grouped containers with attributes, such as
	// HDF5 files and Zarr stores.
	ContainerFormat
	// TableFormat is whitespace or tab delimited numeric text with a one
	// line header.
	TableFormat
	CSVFormat
)

var (
	ErrBadFormat         = errors.New("bad format")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

var extensions = map[string]Format{
	".json": JSONFormat,
	".h5":   ContainerFormat,
	".hdf5": ContainerFormat,
	".zarr": ContainerFormat,
	".dat":  TableFormat,
	".txt":  TableFormat,
	".csv":  CSVFormat,
}

// FromPath returns the format of path according to its extension.
func FromPath(path string) (Format, error) {
	ext := Ext(path)
	f, ok := extensions[ext]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
	return f, nil
}

// Ext returns the lower cased extension of path, ignoring a trailing
// separator so that directory stores such as "x.zarr/" are recognized.
func Ext(path string) string {
	path = strings.TrimRight(path, `/\`)
	return strings.ToLower(filepath.Ext(path))
}

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"j":         JSONFormat,
		"json":      JSONFormat,
		"container": ContainerFormat,
		"h5":        ContainerFormat,
		"zarr":      ContainerFormat,
		"table":     TableFormat,
		"dat":       TableFormat,
		"csv":       CSVFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case JSONFormat:
		return []byte("json"), nil
	case ContainerFormat:
		return []byte("container"), nil
	case TableFormat:
		return []byte("table"), nil
	case CSVFormat:
		return []byte("csv"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// CanSave reports whether trees can be written in format f.
func (f Format) CanSave() bool { return f == JSONFormat }
