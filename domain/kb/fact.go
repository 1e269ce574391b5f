package kb

// Fact is a concrete directed hyperedge of some relation type between
// two non-empty sets of entities (spec §3).
type Fact struct {
	UID      UID
	Relation UID
	Source   UIDSet
	Target   UIDSet
}

// FactSet is the result type for every fact query. Emptiness is how
// NotFound is observed (spec §7).
type FactSet map[UID]*Fact

func newFactSet() FactSet {
	return make(FactSet)
}

func (fs FactSet) add(f *Fact) {
	fs[f.UID] = f
}

// Slice returns the facts in indeterminate map order; callers that need
// a stable order should sort by UID themselves.
func (fs FactSet) Slice() []*Fact {
	out := make([]*Fact, 0, len(fs))
	for _, f := range fs {
		out = append(out, f)
	}
	return out
}

// Sources returns the union of every fact's source set.
func (fs FactSet) Sources() UIDSet {
	out := make(UIDSet)
	for _, f := range fs {
		for u := range f.Source {
			out[u] = struct{}{}
		}
	}
	return out
}

// Targets returns the union of every fact's target set.
func (fs FactSet) Targets() UIDSet {
	out := make(UIDSet)
	for _, f := range fs {
		for u := range f.Target {
			out[u] = struct{}{}
		}
	}
	return out
}

func (fs FactSet) Empty() bool {
	return len(fs) == 0
}
