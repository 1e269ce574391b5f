package kb

import "github.com/google/uuid"

// UID is the stable string identifier every concept, relation type and
// fact instance is addressed by.
type UID string

// NewUID returns a fresh random identifier. Used when instantiating
// classes or realizing algorithms; never used for concepts/relation
// types created at layer-initialization time, which carry caller-chosen
// stable UIDs instead.
func NewUID() UID {
	return UID(uuid.New().String())
}

func (u UID) String() string {
	return string(u)
}

// UIDSet is an unordered set of identifiers. Every traversal/query
// operation in this package returns a UIDSet rather than a slice so
// that NotFound (spec §7) is naturally represented by emptiness.
type UIDSet map[UID]struct{}

// NewUIDSet builds a set from a slice, deduplicating.
func NewUIDSet(uids ...UID) UIDSet {
	s := make(UIDSet, len(uids))
	for _, u := range uids {
		s[u] = struct{}{}
	}
	return s
}

func (s UIDSet) Has(u UID) bool {
	_, ok := s[u]
	return ok
}

func (s UIDSet) Add(u UID) {
	s[u] = struct{}{}
}

func (s UIDSet) Slice() []UID {
	out := make([]UID, 0, len(s))
	for u := range s {
		out = append(out, u)
	}
	return out
}

// Union returns a new set containing every element of s and other.
func (s UIDSet) Union(other UIDSet) UIDSet {
	out := make(UIDSet, len(s)+len(other))
	for u := range s {
		out[u] = struct{}{}
	}
	for u := range other {
		out[u] = struct{}{}
	}
	return out
}

// Intersect returns a new set containing only elements present in both.
func (s UIDSet) Intersect(other UIDSet) UIDSet {
	out := make(UIDSet)
	small, large := s, other
	if len(other) < len(s) {
		small, large = other, s
	}
	for u := range small {
		if large.Has(u) {
			out[u] = struct{}{}
		}
	}
	return out
}

// Subtract returns a new set with every element of other removed from s.
func (s UIDSet) Subtract(other UIDSet) UIDSet {
	out := make(UIDSet)
	for u := range s {
		if !other.Has(u) {
			out[u] = struct{}{}
		}
	}
	return out
}

func (s UIDSet) Empty() bool {
	return len(s) == 0
}
