// Package forest implements a disjoint-set forest (union-find) over a
// universe of elements fixed at construction, using union by rank and
// path compression.
//
// Elements are mapped to dense indexes when the forest is built; parent
// and rank live in flat slices indexed by those positions. A Forest is
// not safe for concurrent use, see Locked.
package forest

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownElement is returned when an operation names an element
	// outside the forest's universe.
	ErrUnknownElement = errors.New("unknown element")

	// ErrDuplicateElement is returned by New when the universe repeats an element.
	ErrDuplicateElement = errors.New("duplicate element")
)

// Forest partitions a fixed universe of elements into disjoint sets
type Forest[T comparable] struct {
	elems  []T
	index  map[T]int
	parent []int
	rank   []int
	sets   int
}

// New creates a forest where every element of universe is its own singleton set
func New[T comparable](universe []T) (*Forest[T], error) {
	f := &Forest[T]{
		elems:  make([]T, len(universe)),
		index:  make(map[T]int, len(universe)),
		parent: make([]int, len(universe)),
		rank:   make([]int, len(universe)),
		sets:   len(universe),
	}
	for i, x := range universe {
		if _, ok := f.index[x]; ok {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateElement, x)
		}
		f.index[x] = i
		f.elems[i] = x
		f.parent[i] = i
	}
	return f, nil
}

func (f *Forest[T]) lookup(x T) (int, error) {
	i, ok := f.index[x]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownElement, x)
	}
	return i, nil
}

// root walks to the root of i, then walks the same path again pointing
// every node on it directly at the root.
func (f *Forest[T]) root(i int) int {
	r := i
	for f.parent[r] != r {
		r = f.parent[r]
	}
	for i != r {
		next := f.parent[i]
		f.parent[i] = r
		i = next
	}
	return r
}

func (f *Forest[T]) rootRecursive(i int) int {
	if f.parent[i] != i {
		f.parent[i] = f.rootRecursive(f.parent[i])
	}
	return f.parent[i]
}

// FindSet returns the representative of the set containing x, with path compression
func (f *Forest[T]) FindSet(x T) (T, error) {
	i, err := f.lookup(x)
	if err != nil {
		var zero T
		return zero, err
	}
	return f.elems[f.root(i)], nil
}

// FindSetRecursive is FindSet compressing the path as the recursion unwinds.
// It leaves the same tree shape as FindSet; deep unbalanced paths cost stack.
func (f *Forest[T]) FindSetRecursive(x T) (T, error) {
	i, err := f.lookup(x)
	if err != nil {
		var zero T
		return zero, err
	}
	return f.elems[f.rootRecursive(i)], nil
}

// Link merges the sets containing x and y. On equal ranks the root of x is
// attached under the root of y, so y's representative survives. Returns
// true if the two sets were separate.
func (f *Forest[T]) Link(x, y T) (bool, error) {
	i, err := f.lookup(x)
	if err != nil {
		return false, err
	}
	j, err := f.lookup(y)
	if err != nil {
		return false, err
	}

	rx := f.root(i)
	ry := f.root(j)
	if rx == ry {
		return false, nil
	}

	if f.rank[rx] > f.rank[ry] {
		f.parent[ry] = rx
	} else {
		f.parent[rx] = ry
		if f.rank[rx] == f.rank[ry] {
			f.rank[ry]++
		}
	}
	f.sets--
	return true, nil
}

// Union is Link under its conventional name
func (f *Forest[T]) Union(x, y T) (bool, error) {
	return f.Link(x, y)
}

// Connected reports whether x and y are in the same set
func (f *Forest[T]) Connected(x, y T) (bool, error) {
	i, err := f.lookup(x)
	if err != nil {
		return false, err
	}
	j, err := f.lookup(y)
	if err != nil {
		return false, err
	}
	return f.root(i) == f.root(j), nil
}

// Rank returns the rank slot of x. It bounds subtree height only while x is a root.
func (f *Forest[T]) Rank(x T) (int, error) {
	i, err := f.lookup(x)
	if err != nil {
		return 0, err
	}
	return f.rank[i], nil
}

// Representatives returns the representative of every element, in universe order.
// Every path is compressed as a side effect.
func (f *Forest[T]) Representatives() []T {
	reps := make([]T, len(f.elems))
	for i := range f.elems {
		reps[i] = f.elems[f.root(i)]
	}
	return reps
}

// Components groups the universe by set. Groups are ordered by the
// position of their first member; members keep universe order.
func (f *Forest[T]) Components() [][]T {
	slot := make(map[int]int, f.sets)
	groups := make([][]T, 0, f.sets)
	for i, x := range f.elems {
		r := f.root(i)
		g, ok := slot[r]
		if !ok {
			g = len(groups)
			slot[r] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], x)
	}
	return groups
}

// Count returns the number of disjoint sets
func (f *Forest[T]) Count() int { return f.sets }

// Len returns the size of the universe
func (f *Forest[T]) Len() int { return len(f.elems) }

// Contains reports whether x belongs to the universe
func (f *Forest[T]) Contains(x T) bool {
	_, ok := f.index[x]
	return ok
}

// Universe returns a copy of the elements in construction order
func (f *Forest[T]) Universe() []T {
	out := make([]T, len(f.elems))
	copy(out, f.elems)
	return out
}

// String renders the parent links in universe order, e.g. {1:1 2:1 3:3}.
// It does not compress paths.
func (f *Forest[T]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, x := range f.elems {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v:%v", x, f.elems[f.parent[i]])
	}
	b.WriteByte('}')
	return b.String()
}
