package kb

import "sort"

// Graph is the single knowledge-base value every layer operates on,
// replacing the deep Network <= ComponentNetwork <= ConceptGraph
// inheritance of the original source with one flat value carrying a
// set of layered vocabularies (spec §9). It is not safe for concurrent
// use — the core is single-threaded and synchronous (spec §5).
//
// Grounded on the teacher's aggregates.Graph (private maps, defensive
// copy accessors, monotonically increasing version counter) generalised
// from a fixed node/edge schema to arbitrary typed relation facts.
type Graph struct {
	entities   map[UID]*entity
	isA        map[UID]UIDSet // concept -> direct super-concepts
	instanceOf map[UID]UIDSet // instance -> direct classes

	relationTypes map[UID]*RelationType
	relSupers     map[UID]UIDSet // relation type -> direct super relation types
	relSubs       map[UID]UIDSet // relation type -> direct subrelations (reverse index)

	facts           map[UID]*Fact
	factsByRelation map[UID][]UID // relation type -> direct fact UIDs (no closure)

	generation int
}

// NewGraph returns an empty knowledge base.
func NewGraph() *Graph {
	return &Graph{
		entities:        make(map[UID]*entity),
		isA:             make(map[UID]UIDSet),
		instanceOf:      make(map[UID]UIDSet),
		relationTypes:   make(map[UID]*RelationType),
		relSupers:       make(map[UID]UIDSet),
		relSubs:         make(map[UID]UIDSet),
		facts:           make(map[UID]*Fact),
		factsByRelation: make(map[UID][]UID),
	}
}

// Generation returns a monotonically increasing counter bumped on every
// mutation, for cheap "did anything change" checks in tests.
func (g *Graph) Generation() int {
	return g.generation
}

// --- concept/relation substrate (spec §4.1) ---

// CreateConcept registers (idempotently) a concept with the given label
// and direct superconcepts, establishing is-a subsumption. Supers need
// not already exist; the lattice is purely identifier-indexed.
func (g *Graph) CreateConcept(uid UID, label string, supers ...UID) UIDSet {
	if _, exists := g.entities[uid]; !exists {
		g.entities[uid] = &entity{Label: label}
		g.generation++
	}
	if _, ok := g.isA[uid]; !ok {
		g.isA[uid] = make(UIDSet)
	}
	for _, s := range supers {
		if !g.isA[uid].Has(s) {
			g.isA[uid].Add(s)
			g.generation++
		}
	}
	return NewUIDSet(uid)
}

// CreateRelationType registers (idempotently) a relation type with the
// given domain/codomain concept sets and direct super relation types.
func (g *Graph) CreateRelationType(uid UID, label string, domain, codomain UIDSet, supers ...UID) UIDSet {
	if _, exists := g.relationTypes[uid]; !exists {
		g.relationTypes[uid] = &RelationType{UID: uid, Label: label, Domain: domain, Codomain: codomain}
		g.entities[uid] = &entity{Label: label}
		g.relSupers[uid] = make(UIDSet)
		g.generation++
	}
	for _, s := range supers {
		g.AssertSubrelationOf(uid, s)
	}
	return NewUIDSet(uid)
}

// AssertSubrelationOf establishes that sub is a subrelation of super:
// every fact of sub is thereafter also a fact of super (and of every
// ancestor of super).
func (g *Graph) AssertSubrelationOf(sub, super UID) {
	if _, ok := g.relSupers[sub]; !ok {
		g.relSupers[sub] = make(UIDSet)
	}
	if !g.relSupers[sub].Has(super) {
		g.relSupers[sub].Add(super)
		if _, ok := g.relSubs[super]; !ok {
			g.relSubs[super] = make(UIDSet)
		}
		g.relSubs[super].Add(sub)
		g.generation++
	}
}

// AssertSubclassOf establishes uid is-a super (concept lattice edge).
func (g *Graph) AssertSubclassOf(uid, super UID) {
	if _, ok := g.isA[uid]; !ok {
		g.isA[uid] = make(UIDSet)
	}
	if !g.isA[uid].Has(super) {
		g.isA[uid].Add(super)
		g.generation++
	}
}

// Label returns the label of any registered concept, relation type or
// instance; empty string if uid is unknown (NotFound, spec §7).
func (g *Graph) Label(uid UID) string {
	if e, ok := g.entities[uid]; ok {
		return e.Label
	}
	return ""
}

// Exists reports whether uid names any known entity.
func (g *Graph) Exists(uid UID) bool {
	_, ok := g.entities[uid]
	return ok
}

// Instantiate creates a fresh instance of the given classes with the
// given label, asserting instance-of facts against each class. This is
// the substrate primitive that component.InstantiateComponent builds
// its deep-clone behaviour on top of.
func (g *Graph) Instantiate(label string, classes ...UID) UID {
	uid := NewUID()
	g.entities[uid] = &entity{Label: label}
	g.instanceOf[uid] = NewUIDSet(classes...)
	g.generation++
	return uid
}

// IsA returns the transitive is-a closure of uids. FORWARD walks toward
// superconcepts, INVERSE toward subconcepts, BOTH is their union. The
// input uids themselves are never included, even where a cycle leads
// back to them.
func (g *Graph) IsA(uids UIDSet, dir Direction) UIDSet {
	return g.closure(uids, g.isA, dir)
}

// SubclassesOf returns uids union their transitive subclasses (the
// downward is-a closure), optionally filtered by label equality. This
// mirrors the original's `subclassesOf` helper used throughout to scope
// class-level queries (e.g. consumerClasses = subclassesOf({Consumer})).
func (g *Graph) SubclassesOf(uids UIDSet, label string) UIDSet {
	all := uids.Union(g.IsA(uids, INVERSE))
	return g.filterByLabel(all, label)
}

// SuperclassesOf returns uids union their transitive superclasses.
func (g *Graph) SuperclassesOf(uids UIDSet, label string) UIDSet {
	all := uids.Union(g.IsA(uids, FORWARD))
	return g.filterByLabel(all, label)
}

// InstancesOf returns every entity whose direct instance-of set
// intersects classUIDs, optionally filtered by label. Callers typically
// pass SubclassesOf(root) as classUIDs so instances of any subclass are
// found too (mirrors `instancesOf(subclassesOf(X))` in the original).
func (g *Graph) InstancesOf(classUIDs UIDSet, label string) UIDSet {
	out := make(UIDSet)
	for uid, classes := range g.instanceOf {
		if !classes.Intersect(classUIDs).Empty() {
			out.Add(uid)
		}
	}
	return g.filterByLabel(out, label)
}

// ClassesOf returns the direct classes an instance belongs to.
func (g *Graph) ClassesOf(uid UID) UIDSet {
	if c, ok := g.instanceOf[uid]; ok {
		return c.Union(nil)
	}
	return make(UIDSet)
}

func (g *Graph) filterByLabel(uids UIDSet, label string) UIDSet {
	if label == "" {
		return uids
	}
	out := make(UIDSet)
	for u := range uids {
		if g.Label(u) == label {
			out.Add(u)
		}
	}
	return out
}

// closure performs a BFS over the given adjacency map in the requested
// direction, returning every uid reachable from uids (not including the
// seeds themselves).
func (g *Graph) closure(uids UIDSet, forward map[UID]UIDSet, dir Direction) UIDSet {
	out := make(UIDSet)
	visit := func(adj map[UID]UIDSet) {
		queue := uids.Slice()
		seen := make(UIDSet, len(uids))
		for _, u := range queue {
			seen.Add(u)
		}
		for i := 0; i < len(queue); i++ {
			cur := queue[i]
			for next := range adj[cur] {
				if !seen.Has(next) {
					seen.Add(next)
					out.Add(next)
					queue = append(queue, next)
				}
			}
		}
	}
	if dir == FORWARD || dir == BOTH {
		visit(forward)
	}
	if dir == INVERSE || dir == BOTH {
		visit(g.reverse(forward))
	}
	return out
}

// reverse builds the inverse adjacency of adj on demand. The concept
// lattice is small and rebuilt rarely enough (layer init, occasional
// subclass assertions) that a cached reverse index isn't worth the
// bookkeeping here; relation subsumption keeps its own incremental
// reverse index (relSubs) instead, via SubrelationsOf.
func (g *Graph) reverse(adj map[UID]UIDSet) map[UID]UIDSet {
	out := make(map[UID]UIDSet)
	for u, supers := range adj {
		for s := range supers {
			if _, ok := out[s]; !ok {
				out[s] = make(UIDSet)
			}
			out[s].Add(u)
		}
	}
	return out
}

// --- relation-type subsumption closure (spec §4.1) ---

// SubrelationsOf returns relUIDs union every transitive subrelation —
// the set that FactsOf uses so a query for facts of R also returns
// facts of every R' <= R.
func (g *Graph) SubrelationsOf(relUIDs UIDSet) UIDSet {
	out := make(UIDSet, len(relUIDs))
	for u := range relUIDs {
		out.Add(u)
	}
	queue := relUIDs.Slice()
	for i := 0; i < len(queue); i++ {
		for sub := range g.relSubs[queue[i]] {
			if !out.Has(sub) {
				out.Add(sub)
				queue = append(queue, sub)
			}
		}
	}
	return out
}

// --- facts (spec §4.1, §7 TypeMismatch) ---

// AssertFact asserts a fact of relationUID between sources and targets.
// If either endpoint set fails the relation type's declared domain or
// codomain (an entity must be a subclass of, or an instance of a
// subclass of, the domain/codomain concept set), the assertion is
// silently rejected and an empty FactSet is returned (spec §7 policy 1).
func (g *Graph) AssertFact(relationUID UID, sources, targets UIDSet) FactSet {
	rt, ok := g.relationTypes[relationUID]
	if !ok || sources.Empty() || targets.Empty() {
		return newFactSet()
	}
	if !g.allUnder(sources, rt.Domain) || !g.allUnder(targets, rt.Codomain) {
		return newFactSet()
	}
	f := &Fact{UID: NewUID(), Relation: relationUID, Source: sources, Target: targets}
	g.facts[f.UID] = f
	g.factsByRelation[relationUID] = append(g.factsByRelation[relationUID], f.UID)
	g.generation++
	result := newFactSet()
	result.add(f)
	return result
}

// allUnder reports whether every uid in uids is a subclass of, or an
// instance of a subclass of, some concept in concepts. An empty
// concepts set (no domain/codomain declared) admits anything.
func (g *Graph) allUnder(uids, concepts UIDSet) bool {
	if concepts.Empty() {
		return true
	}
	closure := g.SubclassesOf(concepts, "")
	for u := range uids {
		if closure.Has(u) {
			continue
		}
		if !g.ClassesOf(u).Intersect(closure).Empty() {
			continue
		}
		return false
	}
	return true
}

// FactsOf returns every fact of relationUID or any of its subrelations,
// optionally filtered to facts whose source set intersects sources and
// whose target set intersects targets (empty filter sets mean "no
// filter" on that side).
func (g *Graph) FactsOf(relationUID UID, sources, targets UIDSet) FactSet {
	return g.FactsOfAny(NewUIDSet(relationUID), sources, targets)
}

// FactsOfAny is FactsOf generalised over a set of relation types.
func (g *Graph) FactsOfAny(relationUIDs UIDSet, sources, targets UIDSet) FactSet {
	out := newFactSet()
	all := g.SubrelationsOf(relationUIDs)
	for rel := range all {
		for _, fid := range g.factsByRelation[rel] {
			f := g.facts[fid]
			if !sources.Empty() && f.Source.Intersect(sources).Empty() {
				continue
			}
			if !targets.Empty() && f.Target.Intersect(targets).Empty() {
				continue
			}
			out.add(f)
		}
	}
	return out
}

// RelatedTo follows relationUID (and its subrelations) from uids in the
// given direction, returning the opposite endpoint's entities, filtered
// by label if non-empty. This is the traversal primitive every *Of
// accessor in higher layers (interfacesOf, valuesOf, demandsOf, ...) is
// built from.
func (g *Graph) RelatedTo(uids UIDSet, relationUID UID, label string, dir Direction) UIDSet {
	out := make(UIDSet)
	if dir == FORWARD || dir == BOTH {
		facts := g.FactsOf(relationUID, uids, nil)
		out = out.Union(facts.Targets())
	}
	if dir == INVERSE || dir == BOTH {
		facts := g.FactsOf(relationUID, nil, uids)
		out = out.Union(facts.Sources())
	}
	return g.filterByLabel(out, label)
}

// Clone returns a deep copy of g: mutating the clone never affects the
// original and vice versa. Candidate implementation networks (spec
// §4.3.1) are built by cloning a shared graph once per enumerated
// combination, and the determinism property (spec §8) runs map() twice
// on independent clones of the same input.
func (g *Graph) Clone() *Graph {
	out := &Graph{
		entities:        make(map[UID]*entity, len(g.entities)),
		isA:             make(map[UID]UIDSet, len(g.isA)),
		instanceOf:      make(map[UID]UIDSet, len(g.instanceOf)),
		relationTypes:   make(map[UID]*RelationType, len(g.relationTypes)),
		relSupers:       make(map[UID]UIDSet, len(g.relSupers)),
		relSubs:         make(map[UID]UIDSet, len(g.relSubs)),
		facts:           make(map[UID]*Fact, len(g.facts)),
		factsByRelation: make(map[UID][]UID, len(g.factsByRelation)),
		generation:      g.generation,
	}
	for u, e := range g.entities {
		copy := *e
		out.entities[u] = &copy
	}
	for u, s := range g.isA {
		out.isA[u] = s.Union(nil)
	}
	for u, s := range g.instanceOf {
		out.instanceOf[u] = s.Union(nil)
	}
	for u, rt := range g.relationTypes {
		copy := *rt
		copy.Domain = rt.Domain.Union(nil)
		copy.Codomain = rt.Codomain.Union(nil)
		out.relationTypes[u] = &copy
	}
	for u, s := range g.relSupers {
		out.relSupers[u] = s.Union(nil)
	}
	for u, s := range g.relSubs {
		out.relSubs[u] = s.Union(nil)
	}
	for u, f := range g.facts {
		copy := *f
		copy.Source = f.Source.Union(nil)
		copy.Target = f.Target.Union(nil)
		out.facts[u] = &copy
	}
	for u, fids := range g.factsByRelation {
		ids := make([]UID, len(fids))
		copy(ids, fids)
		out.factsByRelation[u] = ids
	}
	return out
}

// AllUIDs returns every identifier known to the graph, for diagnostics
// and deterministic-order test fixtures.
func (g *Graph) AllUIDs() []UID {
	out := make([]UID, 0, len(g.entities))
	for u := range g.entities {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
