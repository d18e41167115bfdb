package parse

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/SmnThms/Data-Analysis-Tools/tree"
	"github.com/SmnThms/Data-Analysis-Tools/value"
)

// Table parses numeric columns under a header line. The first line names
// the columns: its comment marker is stripped and it is split on tabs, or
// on whitespace when it holds no tab. Every further non blank line not
// starting with the comment marker is a row of numbers. Each non empty
// column name becomes a float64 array leaf, in header order.
func Table(r io.Reader, opts ...ParseOption) (*tree.Node, error) {
	o := newOpts(opts)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, ErrEmptyTable
	}
	names := header(sc.Text(), o.commentMarker)
	cols := make([][]float64, len(names))
	line := 1
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || (o.commentMarker != "" && strings.HasPrefix(text, o.commentMarker)) {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != len(names) {
			return nil, &Error{Line: line, Err: fmt.Errorf("%w: %d fields, header has %d", ErrParse, len(fields), len(names))}
		}
		for i, f := range fields {
			x, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, &Error{Line: line, Err: fmt.Errorf("%w: %w", ErrParse, err)}
			}
			cols[i] = append(cols[i], x)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	res := tree.New()
	for i, name := range names {
		if name == "" {
			continue
		}
		res.Put(name, value.Vector(cols[i]))
	}
	return res, nil
}

func header(line, marker string) []string {
	line = strings.TrimRight(line, "\r\n")
	line = strings.TrimPrefix(line, marker)
	if strings.Contains(line, "\t") {
		names := strings.Split(line, "\t")
		for i := range names {
			names[i] = strings.TrimSpace(names[i])
		}
		// trailing tabs name no column
		for len(names) > 0 && names[len(names)-1] == "" {
			names = names[:len(names)-1]
		}
		return names
	}
	return strings.Fields(line)
}
