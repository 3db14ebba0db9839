package sip

import (
	"io"
	"slices"
	"strings"
)

// comparableValue is the minimal contract an element of a ValueCollection
// must satisfy: a faithful string form and a value-level equality check
// against another element of the same concrete type.
type comparableValue[T any] interface {
	Equal(other T) bool
	String() string
}

// ValueCollection is the generic multi-value header container described by
// spec §9: an ordered sequence with set-style equality (element-multiset
// compare, permutation invariant) and a configurable display separator.
// Allow, Accept*, Supported, Require, Unsupported and Content-Language all
// use this container with sep=", "; Server/User-Agent use sep=" ".
type ValueCollection[T comparableValue[T]] struct {
	items []T
	sep   string
}

// NewValueCollection builds a collection with the given display separator.
func NewValueCollection[T comparableValue[T]](sep string, items ...T) ValueCollection[T] {
	return ValueCollection[T]{items: items, sep: sep}
}

func (c ValueCollection[T]) Items() []T { return c.items }

func (c ValueCollection[T]) Len() int { return len(c.items) }

func (c *ValueCollection[T]) Add(v T) { c.items = append(c.items, v) }

// Equal is permutation-invariant: it is true iff both collections have the
// same length and every element of one has an equal counterpart in the
// other (a true multiset compare, not just "each found somewhere").
func (c ValueCollection[T]) Equal(other ValueCollection[T]) bool {
	if len(c.items) != len(other.items) {
		return false
	}
	used := make([]bool, len(other.items))
	for _, a := range c.items {
		found := false
		for j, b := range other.items {
			if used[j] {
				continue
			}
			if a.Equal(b) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (c ValueCollection[T]) String() string {
	var b strings.Builder
	c.StringWrite(&b)
	return b.String()
}

func (c ValueCollection[T]) StringWrite(w io.StringWriter) {
	for i, v := range c.items {
		if i > 0 {
			w.WriteString(c.sep)
		}
		w.WriteString(v.String())
	}
}

// sortKeys sorts a clone of the elements' string forms, lowercased, so that
// Hash can satisfy "equal implies equal hash" regardless of insertion order.
func (c ValueCollection[T]) sortKeys() []string {
	keys := make([]string, len(c.items))
	for i, v := range c.items {
		keys[i] = strings.ToLower(v.String())
	}
	slices.Sort(keys)
	return keys
}

// Hash returns a value stable under permutation, so that Equal(a,b) implies
// Hash(a) == Hash(b) (spec testable property 3).
func (c ValueCollection[T]) Hash() uint64 {
	var h uint64 = offset64
	for _, k := range c.sortKeys() {
		h = fnv1a(h, k)
	}
	return h
}

// fnv1a and offset64 back every Hash() method in this package: a small,
// dependency-free 64-bit hash is all equality-consistent hashing needs here.
const (
	offset64 uint64 = 14695981039346656037
	prime64  uint64 = 1099511628211
)

func fnv1a(h uint64, s string) uint64 {
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime64
	}
	return h
}
