package util

import (
	"github.com/rjNemo/underscore"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// The keys of the map in ascending order. Map iteration order is random, and
// everything that renders or checks a program needs to be deterministic.
func SortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

func MapFilterValue[T comparable, V any](m map[T]V, filter func(v V) bool) map[T]V {
	res := make(map[T]V)
	for k, v := range m {
		if filter(v) {
			res[k] = v
		}
	}
	return res
}

func UniqueBy[T any, V comparable](ls []T, selector func(v T) V) []T {
	res := []T{}
	seen := []V{}
	for _, e := range ls {
		s := selector(e)
		if !underscore.Contains(seen, s) {
			seen = append(seen, s)
			res = append(res, e)
		}
	}
	return res
}
