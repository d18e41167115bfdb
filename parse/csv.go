package parse

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/SmnThms/Data-Analysis-Tools/tree"
	"github.com/SmnThms/Data-Analysis-Tools/value"
)

// CSVKey is the key under which CSV returns its fields.
const CSVKey = "data"

// CSV parses delimited text into a tree holding the 2-D list of string
// fields under CSVKey. Rows may have different lengths.
func CSV(r io.Reader, opts ...ParseOption) (*tree.Node, error) {
	o := newOpts(opts)
	cr := csv.NewReader(r)
	cr.Comma = o.delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	rows := []value.Value{}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &Error{Line: pe.Line, Err: fmt.Errorf("%w: %w", ErrParse, pe.Err)}
			}
			return nil, err
		}
		fields := make([]value.Value, len(rec))
		for i, f := range rec {
			fields[i] = value.FromString(f)
		}
		rows = append(rows, value.FromList(fields...))
	}
	res := tree.New()
	res.Put(CSVKey, value.FromList(rows...))
	return res, nil
}
