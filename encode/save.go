package encode

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SmnThms/Data-Analysis-Tools/debug"
	"github.com/SmnThms/Data-Analysis-Tools/format"
	"github.com/SmnThms/Data-Analysis-Tools/tree"
)

// Save writes n to path in the format of its extension; only JSON can be
// saved. The document is encoded in full before the file is touched and
// then written to a temporary file renamed over path, so that a failure
// leaves no partial output.
func Save(n *tree.Node, path string, opts ...EncodeOption) error {
	f, err := format.FromPath(path)
	if err != nil {
		return err
	}
	if !f.CanSave() {
		return fmt.Errorf("%w: cannot save as %s", format.ErrUnsupportedFormat, f)
	}
	buf := &bytes.Buffer{}
	if err := Encode(n, buf, opts...); err != nil {
		return err
	}
	if debug.Save() {
		debug.Logf("save %s: %d bytes\n", path, buf.Len())
	}
	return writeAtomic(path, buf.Bytes())
}

func writeAtomic(path string, d []byte) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()
	if _, err = tmp.Write(d); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
