package container

import (
	"fmt"
	"sync"

	"github.com/SmnThms/Data-Analysis-Tools/format"
)

// Opener opens the container at path.
type Opener func(path string) (File, error)

var (
	mu      sync.RWMutex
	openers = map[string]Opener{}
)

// Register makes a backend available for a file extension such as
// ".zarr". Backends register themselves from an init function, so that a
// blank import enables them.
func Register(ext string, open Opener) {
	mu.Lock()
	defer mu.Unlock()
	openers[ext] = open
}

// Open opens path with the backend registered for its extension. An
// extension without backend yields format.ErrUnsupportedFormat.
func Open(path string) (File, error) {
	ext := format.Ext(path)
	mu.RLock()
	open := openers[ext]
	mu.RUnlock()
	if open == nil {
		return nil, fmt.Errorf("%w: no container backend for %q", format.ErrUnsupportedFormat, ext)
	}
	return open(path)
}
