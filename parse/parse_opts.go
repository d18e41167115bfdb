package parse

type parseOpts struct {
	delimiter     rune
	commentMarker string
}

type ParseOption func(*parseOpts)

// Delimiter sets the CSV field delimiter (default ';').
func Delimiter(r rune) ParseOption {
	return func(o *parseOpts) { o.delimiter = r }
}

// CommentMarker sets the prefix of the table header line and of comment
// lines (default "#").
func CommentMarker(s string) ParseOption {
	return func(o *parseOpts) { o.commentMarker = s }
}

func newOpts(opts []ParseOption) *parseOpts {
	o := &parseOpts{delimiter: ';', commentMarker: "#"}
	for _, f := range opts {
		f(o)
	}
	return o
}
