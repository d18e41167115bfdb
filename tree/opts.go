package tree

import "github.com/SmnThms/Data-Analysis-Tools/kpath"

type pathState struct {
	sep string
}

// PathOption configures keypath interpretation.
type PathOption func(*pathState)

// Separator sets the keypath separator (default ".").
func Separator(sep string) PathOption {
	return func(ps *pathState) { ps.sep = sep }
}

func pathOpts(opts []PathOption) *pathState {
	ps := &pathState{sep: kpath.DefaultSeparator}
	for _, opt := range opts {
		opt(ps)
	}
	return ps
}

type mergeState struct {
	overwrite bool
	sep       string
}

type MergeOption func(*mergeState)

// Overwrite controls collisions between non-node entries. When false (the
// default) a collision is a *MergeConflictError; when true the right hand
// value replaces the left one if they differ.
func Overwrite(v bool) MergeOption {
	return func(ms *mergeState) { ms.overwrite = v }
}

// MergeSeparator sets the separator used to report conflicting keypaths.
func MergeSeparator(sep string) MergeOption {
	return func(ms *mergeState) { ms.sep = sep }
}

func mergeOpts(opts []MergeOption) *mergeState {
	ms := &mergeState{sep: kpath.DefaultSeparator}
	for _, opt := range opts {
		opt(ms)
	}
	return ms
}

type searchState struct {
	partial bool
	sep     string
}

type SearchOption func(*searchState)

// Partial makes Search match keys containing the searched key.
func Partial(v bool) SearchOption {
	return func(ss *searchState) { ss.partial = v }
}

// SearchSeparator sets the separator of the returned keypaths.
func SearchSeparator(sep string) SearchOption {
	return func(ss *searchState) { ss.sep = sep }
}

func searchOpts(opts []SearchOption) *searchState {
	ss := &searchState{sep: kpath.DefaultSeparator}
	for _, opt := range opts {
		opt(ss)
	}
	return ss
}
