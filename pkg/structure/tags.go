package structure

import (
	"sort"
	"strings"
)

// Tags is an ordered set of single-word labels attached to a node or pair.
// A tag string like "vert string one" is the word set {vert, string, one}.
// Part builders match on word subsets, so "vert string" selects every
// vertical cable regardless of its ordinal word.
type Tags []string

// ParseTags splits a space-separated tag string into a Tags value,
// dropping empty words and duplicates while preserving first-seen order.
func ParseTags(s string) Tags {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(words))
	tags := make(Tags, 0, len(words))
	for _, w := range words {
		if seen[w] {
			continue
		}
		seen[w] = true
		tags = append(tags, w)
	}
	return tags
}

// Contains reports whether the word w is present.
func (t Tags) Contains(w string) bool {
	for _, tag := range t {
		if tag == w {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every word of o is present in t.
// Every tag set contains the empty set.
func (t Tags) ContainsAll(o Tags) bool {
	for _, w := range o {
		if !t.Contains(w) {
			return false
		}
	}
	return true
}

// Equal reports whether t and o hold the same words, ignoring order.
func (t Tags) Equal(o Tags) bool {
	if len(t) != len(o) {
		return false
	}
	return t.ContainsAll(o)
}

// String joins the words back into the canonical space-separated form.
func (t Tags) String() string {
	return strings.Join(t, " ")
}

// Sorted returns a lexically sorted copy. Handy for stable error messages.
func (t Tags) Sorted() Tags {
	out := make(Tags, len(t))
	copy(out, t)
	sort.Strings(out)
	return out
}

// The part vocabulary recognized by the structure compiler. Tag strings
// emitted by model generators are built from these words; the compiler
// rejects anything outside the set (see builder.Spec).
const (
	TagSphere     = "sphere"
	TagVertRod    = "vert rod"
	TagStaticRod  = "static rod"
	TagPrismRod   = "prism rod"
	TagInnerRod   = "inner rod"
	TagPrismatic  = "prismatic"
	TagPrismatic2 = "prismatic2"
	TagHinge      = "hinge"
	TagHinge2     = "hinge2"
	TagHinge3     = "hinge3"
	TagVertString = "vert string"
	TagSaddle     = "saddle string"
	TagBox        = "box"
	TagSpring     = "compression spring"
	TagCorde      = "corde string"
)
