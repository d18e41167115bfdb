//go:build !(cgo && hdf5)

package hdf5

import (
	"fmt"

	"github.com/SmnThms/Data-Analysis-Tools/container"
)

func init() {
	for _, ext := range exts {
		container.Register(ext, func(p string) (container.File, error) {
			return nil, fmt.Errorf("%s: %w", p, ErrNotBuilt)
		})
	}
}
