package value

import (
	"errors"
	"fmt"
)

var ErrEncoding = errors.New("encoding error")

// EncodingError reports a value outside the portable set. Key is the
// keypath of the offending leaf when known.
type EncodingError struct {
	Key  string
	Type string
}

func (e *EncodingError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s: type %s not encodable", ErrEncoding, e.Type)
	}
	return fmt.Sprintf("%s: %q of type %s not encodable", ErrEncoding, e.Key, e.Type)
}

func (e *EncodingError) Unwrap() error {
	return ErrEncoding
}
