package zarr

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/SmnThms/Data-Analysis-Tools/container"
	"github.com/SmnThms/Data-Analysis-Tools/debug"
	"github.com/SmnThms/Data-Analysis-Tools/parse"
	"github.com/SmnThms/Data-Analysis-Tools/tree"
	"github.com/SmnThms/Data-Analysis-Tools/value"
)

func init() {
	container.Register(".zarr", func(p string) (container.File, error) {
		s, err := Open(p)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}

// Store is an open Zarr directory store. Its root must be a group.
type Store struct {
	group
}

// Open opens the store rooted at dir. Reads are confined to dir.
func Open(dir string) (*Store, error) {
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, err
	}
	s := &Store{group{node{root: root, prefix: "."}}}
	if !s.exists(groupFile) {
		root.Close()
		return nil, fmt.Errorf("%w: %s is not a zarr group", container.ErrContainer, dir)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.root.Close()
}

type node struct {
	root   *os.Root
	prefix string
}

func (n node) path(name string) string {
	return path.Join(n.prefix, name)
}

func (n node) exists(name string) bool {
	_, err := n.root.Stat(n.path(name))
	return err == nil
}

func (n node) Attrs() (*tree.Node, error) {
	d, err := n.root.ReadFile(n.path(attrsFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return parse.JSON(d)
}

type group struct {
	node
}

// Members returns the sub-groups and arrays of g sorted by name, so that
// loading a store does not depend on directory order.
func (g group) Members() ([]string, error) {
	f, err := g.root.Open(g.prefix)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ents, err := f.ReadDir(-1)
	if err != nil {
		return nil, err
	}
	var res []string
	for _, e := range ents {
		if !e.IsDir() {
			continue
		}
		sub := node{root: g.root, prefix: g.path(e.Name())}
		if sub.exists(groupFile) || sub.exists(arrayFile) {
			res = append(res, e.Name())
		}
	}
	slices.Sort(res)
	return res, nil
}

func (g group) Member(name string) (container.Object, error) {
	sub := node{root: g.root, prefix: g.path(name)}
	if sub.exists(groupFile) {
		return group{sub}, nil
	}
	d, err := sub.root.ReadFile(sub.path(arrayFile))
	if err != nil {
		return nil, err
	}
	a := &array{node: sub}
	if err := json.Unmarshal(d, &a.meta); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", container.ErrContainer, sub.path(arrayFile), err)
	}
	if err := a.meta.validate(); err != nil {
		return nil, err
	}
	if a.dt, err = parseDType(a.meta.DType); err != nil {
		return nil, err
	}
	return a, nil
}

type array struct {
	node
	meta arrayMeta
	dt   dtype
}

func (a *array) Shape() []int       { return a.meta.Shape }
func (a *array) DType() value.DType { return a.dt.dt }

// Read assembles every chunk of the array. Missing chunks hold the fill
// value.
func (a *array) Read() (*value.Array, error) {
	shape, chunks := a.meta.Shape, a.meta.Chunks
	size := a.dt.size
	total := 1
	for _, d := range shape {
		total *= d
	}
	fill, err := a.meta.fill(a.dt)
	if err != nil {
		return nil, err
	}
	out := make([]byte, total*size)
	for i := range total {
		copy(out[i*size:], fill)
	}
	grid := make([]int, len(shape))
	for i := range shape {
		grid[i] = (shape[i] + chunks[i] - 1) / chunks[i]
	}
	chunkLen := size
	for _, c := range chunks {
		chunkLen *= c
	}
	nread := 0
	for idx := range gridIndices(grid) {
		key := a.chunkKey(idx)
		raw, err := a.root.ReadFile(a.path(key))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		d, err := decompress(a.meta.Compressor, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: chunk %s: %w", container.ErrContainer, a.path(key), err)
		}
		if len(d) != chunkLen {
			return nil, fmt.Errorf("%w: chunk %s holds %d bytes, want %d", container.ErrContainer, a.path(key), len(d), chunkLen)
		}
		copyChunk(out, d, shape, chunks, idx, size)
		nread++
	}
	if debug.Load() {
		debug.Logf("zarr %s: %d chunks read\n", a.prefix, nread)
	}
	return toArray(shape, a.dt, out)
}

func (a *array) chunkKey(idx []int) string {
	if len(idx) == 0 {
		return "0"
	}
	parts := make([]string, len(idx))
	for i, x := range idx {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, a.meta.separator())
}

// gridIndices yields every index of grid in row-major order, once with an
// empty index for a 0-d grid. The yielded slice is reused.
func gridIndices(grid []int) func(func([]int) bool) {
	return func(yield func([]int) bool) {
		idx := make([]int, len(grid))
		for _, g := range grid {
			if g == 0 {
				return
			}
		}
		for {
			if !yield(idx) {
				return
			}
			i := len(idx) - 1
			for ; i >= 0; i-- {
				idx[i]++
				if idx[i] < grid[i] {
					break
				}
				idx[i] = 0
			}
			if i < 0 {
				return
			}
		}
	}
}

// copyChunk copies the part of chunk idx lying inside the array into
// out, one run along the last dimension at a time.
func copyChunk(out, chunk []byte, shape, chunks, idx []int, size int) {
	nd := len(shape)
	if nd == 0 {
		copy(out, chunk[:size])
		return
	}
	origin := make([]int, nd)
	extent := make([]int, nd)
	for i := range nd {
		origin[i] = idx[i] * chunks[i]
		extent[i] = min(chunks[i], shape[i]-origin[i])
	}
	outer := extent[:nd-1]
	run := extent[nd-1] * size
	for local := range gridIndices(outer) {
		src, dst := 0, 0
		for i := range nd - 1 {
			src = src*chunks[i] + local[i]
			dst = dst*shape[i] + origin[i] + local[i]
		}
		src = src*chunks[nd-1]*size
		dst = (dst*shape[nd-1] + origin[nd-1]) * size
		copy(out[dst:dst+run], chunk[src:src+run])
	}
}
