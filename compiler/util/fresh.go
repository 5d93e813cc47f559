package util

import (
	"fmt"

	"github.com/glossopoeia/interlang/compiler/ident"
)

// Manages the generation of fresh names, for use when a pass needs to bind
// something the source never named (readback of anonymous net wires, for
// instance). Note that multiple instances of Fresh used in the same program
// will generate overlapping (i.e. non-fresh) names.
//
// However, sometimes maintaining this invariant is unnecessary, so the functionality
// is not restricted to be a singleton.
type Fresh[T comparable] interface {
	// Return the next fresh variable. Will not overlap with previously generated variables.
	Next() T
	// Return the next N fresh variables. Will not overlap with previously generated variables.
	NextN(n int) []T
}

type IndexFresh struct {
	state ident.Val
}

type NameFresh struct {
	index    IndexFresh
	prefixes map[string]ident.Val
}

func (f *IndexFresh) Next() ident.Val {
	name := f.state
	f.state += 1
	return name
}

func (f *IndexFresh) NextN(n int) []ident.Val {
	res := make([]ident.Val, n)
	for i := 0; i < n; i++ {
		res[i] = f.Next()
	}
	return res
}

func NewNameFresh() NameFresh {
	return NameFresh{prefixes: map[string]ident.Val{}}
}

// Return the next fresh variable as a base-26 display name: a, b, ..., z, ba, bb, ...
func (f *NameFresh) Next() ident.Name {
	return ident.VarIdToName(f.index.Next())
}

func (f *NameFresh) NextN(n int) []ident.Name {
	res := make([]ident.Name, n)
	for i := 0; i < n; i++ {
		res[i] = f.Next()
	}
	return res
}

// Return the next fresh variable with the given prefix. Streams of prefixed
// fresh variables are maintained separately, so generating a fresh var for
// prefix "x" will not change the next value of the fresh var for prefix "y",
// nor the unprefixed stream returned by Next.
func (f *NameFresh) NextPrefix(prefix string) ident.Name {
	ind := f.prefixes[prefix]
	f.prefixes[prefix] = ind + 1
	return ident.Name(fmt.Sprintf("%s%d", prefix, ind))
}
