package kpath

import (
	"errors"
	"fmt"
	"strings"
)

const DefaultSeparator = "."

var (
	ErrSeparatorInKey = errors.New("separator in key")
	ErrEmptySegment   = errors.New("empty keypath segment")
)

// Split splits kp on the first occurrence of sep. ok is false when kp has
// a single segment, in which case head is kp.
func Split(kp, sep string) (head, rest string, ok bool) {
	if sep == "" {
		return kp, "", false
	}
	return strings.Cut(kp, sep)
}

// SplitAll returns every segment of kp.
func SplitAll(kp, sep string) []string {
	if sep == "" {
		return []string{kp}
	}
	return strings.Split(kp, sep)
}

// Parse returns the segments of kp, rejecting empty segments such as
// those produced by "a..b" or a trailing separator.
func Parse(kp, sep string) ([]string, error) {
	segs := SplitAll(kp, sep)
	for i, s := range segs {
		if s == "" {
			return nil, fmt.Errorf("%w: empty segment %d in %q", ErrEmptySegment, i, kp)
		}
	}
	return segs, nil
}

// Join joins keys with sep. Empty leading keys are skipped so that
// Join(sep, "", k) == k, which lets callers grow a path from the root.
func Join(sep string, keys ...string) string {
	for len(keys) > 0 && keys[0] == "" {
		keys = keys[1:]
	}
	return strings.Join(keys, sep)
}

// CheckKey reports an error if key cannot be a segment of a keypath.
func CheckKey(key, sep string) error {
	if sep != "" && strings.Contains(key, sep) {
		return fmt.Errorf("%w: %q contains %q", ErrSeparatorInKey, key, sep)
	}
	return nil
}
