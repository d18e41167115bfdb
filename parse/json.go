package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/SmnThms/Data-Analysis-Tools/tree"
	"github.com/SmnThms/Data-Analysis-Tools/value"
)

// JSON parses a JSON object into a tree, keeping key order.
func JSON(d []byte) (*tree.Node, error) {
	return JSONReader(bytes.NewReader(d))
}

func JSONReader(r io.Reader) (*tree.Node, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, wrapJSON(dec, err)
	}
	if tok != json.Delim('{') {
		return nil, fmt.Errorf("%w: JSON document is %s", tree.ErrNotMapping, describeToken(tok))
	}
	obj, err := parseObject(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &Error{Offset: dec.InputOffset(), Err: fmt.Errorf("%w: data after top level object", ErrParse)}
	}
	return tree.From(obj)
}

// object is an ordered JSON object. Items are *object or value.Value.
type object struct {
	keys  []string
	items map[string]any
}

func (o *object) Keys() []string      { return o.keys }
func (o *object) Item(key string) any { return o.items[key] }

func parseObject(dec *json.Decoder) (*object, error) {
	obj := &object{items: map[string]any{}}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, wrapJSON(dec, err)
		}
		key := tok.(string)
		v, err := parseValue(dec, true)
		if err != nil {
			return nil, err
		}
		if _, dup := obj.items[key]; !dup {
			obj.keys = append(obj.keys, key)
		}
		obj.items[key] = v
	}
	if _, err := dec.Token(); err != nil {
		return nil, wrapJSON(dec, err)
	}
	return obj, nil
}

func parseValue(dec *json.Decoder, objOK bool) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, wrapJSON(dec, err)
	}
	switch x := tok.(type) {
	case json.Delim:
		switch x {
		case '{':
			if !objOK {
				return nil, &Error{Offset: dec.InputOffset(), Err: ErrObjectInArray}
			}
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		}
		return nil, &Error{Offset: dec.InputOffset(), Err: fmt.Errorf("%w: unexpected %q", ErrParse, x)}
	case nil:
		return value.Null(), nil
	case bool:
		return value.FromBool(x), nil
	case string:
		return value.FromString(x), nil
	case json.Number:
		return number(x)
	}
	return nil, &Error{Offset: dec.InputOffset(), Err: fmt.Errorf("%w: unexpected token %v", ErrParse, tok)}
}

func parseArray(dec *json.Decoder) (value.Value, error) {
	elems := []value.Value{}
	for dec.More() {
		v, err := parseValue(dec, false)
		if err != nil {
			return value.Value{}, err
		}
		elems = append(elems, v.(value.Value))
	}
	if _, err := dec.Token(); err != nil {
		return value.Value{}, wrapJSON(dec, err)
	}
	return value.FromList(elems...), nil
}

// number maps integer literals to ints, arbitrary size integers to
// decimals and everything else to floats.
func number(n json.Number) (value.Value, error) {
	s := string(n)
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return value.FromInt(i), nil
		}
		if b, ok := new(big.Int).SetString(s, 10); ok {
			return value.FromBigInt(b), nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: number %s: %w", ErrParse, s, err)
	}
	return value.FromFloat(f), nil
}

func wrapJSON(dec *json.Decoder, err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return &Error{Offset: dec.InputOffset(), Err: fmt.Errorf("%w: %w", ErrParse, err)}
}

func describeToken(tok json.Token) string {
	switch x := tok.(type) {
	case json.Delim:
		if x == '[' {
			return "an array"
		}
	case nil:
		return "null"
	case string:
		return "a string"
	case json.Number:
		return "a number"
	case bool:
		return "a boolean"
	}
	return fmt.Sprintf("%v", tok)
}
