// Package component implements the component network layer (spec §4.2):
// components, interfaces, sub-interfaces, interface aliases, interface
// connections and compositional part-of, plus deep-clone instantiation.
//
// Grounded on original_source/src/ComponentNetwork.cpp for exact clone
// and traversal semantics, and on the teacher's domain/core/aggregates
// graph.go for the encapsulated-value style (a thin struct wrapping a
// *kb.Graph rather than a second inheritance layer, per spec §9).
package component

import "hyperkb/domain/kb"

// Vocabulary holds the root concept/relation UIDs this layer installs.
type Vocabulary struct {
	Component            kb.UID
	Interface             kb.UID
	Value                 kb.UID
	HasInterface          kb.UID
	HasSubInterface       kb.UID
	HasValue              kb.UID
	ConnectedToInterface  kb.UID
	AliasOf               kb.UID
	PartOfComponent       kb.UID
}

// DefaultVocabulary is the stable UID set used unless a caller supplies
// its own (mirroring the original's static UniqueId constants, but as
// explicit, non-global values per spec §9's "global mutable state ...
// becomes explicit initialisation").
var DefaultVocabulary = Vocabulary{
	Component:            "component.Component",
	Interface:            "component.Interface",
	Value:                "component.Value",
	HasInterface:         "component.HasInterface",
	HasSubInterface:      "component.HasSubInterface",
	HasValue:             "component.HasValue",
	ConnectedToInterface: "component.ConnectedToInterface",
	AliasOf:              "component.AliasOf",
	PartOfComponent:      "component.PartOfComponent",
}

// Network is a thin, stateless façade over a *kb.Graph scoped to the
// component vocabulary. It carries no state of its own: every operation
// reads and writes the shared graph, so a single graph can host
// multiple layered vocabularies simultaneously (spec §9).
type Network struct {
	G     *kb.Graph
	Vocab Vocabulary
}

// New binds a Network to g, ensuring the component vocabulary exists.
func New(g *kb.Graph) *Network {
	n := &Network{G: g, Vocab: DefaultVocabulary}
	n.Ensure()
	return n
}

// Ensure idempotently installs the component layer's root concepts and
// relation types into the graph (spec §9's per-layer init routine).
func (n *Network) Ensure() {
	v := n.Vocab
	g := n.G
	g.CreateConcept(v.Component, "COMPONENT")
	g.CreateConcept(v.Interface, "INTERFACE")
	g.CreateConcept(v.Value, "VALUE")

	g.CreateRelationType(v.HasInterface, "HAS-A-INTERFACE",
		kb.NewUIDSet(v.Component), kb.NewUIDSet(v.Interface))
	g.CreateRelationType(v.HasSubInterface, "HAS-A-SUB-INTERFACE",
		kb.NewUIDSet(v.Interface), kb.NewUIDSet(v.Interface))
	g.CreateRelationType(v.HasValue, "HAS-A-VALUE",
		kb.NewUIDSet(v.Interface), kb.NewUIDSet(v.Value))
	g.CreateRelationType(v.ConnectedToInterface, "CONNECTED-TO-INTERFACE",
		kb.NewUIDSet(v.Interface), kb.NewUIDSet(v.Interface))
	g.CreateRelationType(v.AliasOf, "ALIAS-OF",
		kb.NewUIDSet(v.Interface), kb.NewUIDSet(v.Interface))
	g.CreateRelationType(v.PartOfComponent, "PART-OF-COMPONENT",
		kb.NewUIDSet(v.Component), kb.NewUIDSet(v.Component))
}

// --- typed factories (spec §4.2) ---

// CreateComponent registers uid as a component class. supers, if given,
// must already be subclasses of Component; otherwise the call is
// rejected (empty result), exactly as the original's createComponent
// checked isA against componentClasses(). With no supers, uid becomes a
// direct subclass of Component.
func (n *Network) CreateComponent(uid kb.UID, label string, supers ...kb.UID) kb.UIDSet {
	return n.createTyped(uid, label, n.Vocab.Component, supers...)
}

// CreateInterface registers uid as an interface class.
func (n *Network) CreateInterface(uid kb.UID, label string, supers ...kb.UID) kb.UIDSet {
	return n.createTyped(uid, label, n.Vocab.Interface, supers...)
}

// CreateValue registers uid as a value class.
func (n *Network) CreateValue(uid kb.UID, label string, supers ...kb.UID) kb.UIDSet {
	return n.createTyped(uid, label, n.Vocab.Value, supers...)
}

func (n *Network) createTyped(uid kb.UID, label string, root kb.UID, supers ...kb.UID) kb.UIDSet {
	if len(supers) == 0 {
		supers = []kb.UID{root}
	} else {
		rootClasses := n.G.SubclassesOf(kb.NewUIDSet(root), "")
		for _, s := range supers {
			if !rootClasses.Has(s) {
				return kb.UIDSet{}
			}
		}
	}
	return n.G.CreateConcept(uid, label, supers...)
}

// --- class-level queries ---

func (n *Network) ComponentClasses(label string) kb.UIDSet {
	return n.G.SubclassesOf(kb.NewUIDSet(n.Vocab.Component), label)
}

func (n *Network) InterfaceClasses(label string) kb.UIDSet {
	return n.G.SubclassesOf(kb.NewUIDSet(n.Vocab.Interface), label)
}

func (n *Network) ValueClasses(label string) kb.UIDSet {
	return n.G.SubclassesOf(kb.NewUIDSet(n.Vocab.Value), label)
}

// Components returns all component instances, optionally filtered by
// label.
func (n *Network) Components(label string) kb.UIDSet {
	return n.G.InstancesOf(n.ComponentClasses(""), label)
}

func (n *Network) Interfaces(label string) kb.UIDSet {
	return n.G.InstancesOf(n.InterfaceClasses(""), label)
}

func (n *Network) Values(label string) kb.UIDSet {
	return n.G.InstancesOf(n.ValueClasses(""), label)
}

// --- facts ---

func (n *Network) HasInterface(componentUIDs, interfaceUIDs kb.UIDSet) kb.FactSet {
	return n.G.AssertFact(n.Vocab.HasInterface, componentUIDs, interfaceUIDs)
}

func (n *Network) HasSubInterface(outerUIDs, innerUIDs kb.UIDSet) kb.FactSet {
	return n.G.AssertFact(n.Vocab.HasSubInterface, outerUIDs, innerUIDs)
}

func (n *Network) HasValue(interfaceUIDs, valueUIDs kb.UIDSet) kb.FactSet {
	return n.G.AssertFact(n.Vocab.HasValue, interfaceUIDs, valueUIDs)
}

func (n *Network) ConnectInterface(aUIDs, bUIDs kb.UIDSet) kb.FactSet {
	return n.G.AssertFact(n.Vocab.ConnectedToInterface, aUIDs, bUIDs)
}

func (n *Network) PartOfComponent(partUIDs, wholeUIDs kb.UIDSet) kb.FactSet {
	return n.G.AssertFact(n.Vocab.PartOfComponent, partUIDs, wholeUIDs)
}

func (n *Network) AliasOf(outerUIDs, innerUIDs kb.UIDSet) kb.FactSet {
	return n.G.AssertFact(n.Vocab.AliasOf, outerUIDs, innerUIDs)
}

// --- traversal family (spec §4.2) ---

func (n *Network) InterfacesOf(uids kb.UIDSet, label string, dir kb.Direction) kb.UIDSet {
	return n.G.RelatedTo(uids, n.Vocab.HasInterface, label, dir)
}

func (n *Network) SubinterfacesOf(uids kb.UIDSet, label string, dir kb.Direction) kb.UIDSet {
	return n.G.RelatedTo(uids, n.Vocab.HasSubInterface, label, dir)
}

func (n *Network) ValuesOf(uids kb.UIDSet, label string, dir kb.Direction) kb.UIDSet {
	return n.G.RelatedTo(uids, n.Vocab.HasValue, label, dir)
}

func (n *Network) SubcomponentsOf(uids kb.UIDSet, label string, dir kb.Direction) kb.UIDSet {
	return n.G.RelatedTo(uids, n.Vocab.PartOfComponent, label, dir)
}

// OriginalInterfacesOf follows alias-of to the (possibly chained)
// interface each of uids ultimately re-exports, resolving the Open
// Question on alias closure (spec §9, DESIGN.md): the walk follows
// alias-of edges in the given direction until no new interface is
// reached, and returns uids together with every interface visited on
// the way, so the innermost target of a chain is included alongside
// the intermediate hops. An interface with no alias-of fact maps to
// itself.
func (n *Network) OriginalInterfacesOf(uids kb.UIDSet, label string, dir kb.Direction) kb.UIDSet {
	frontier := uids
	result := make(kb.UIDSet)
	for u := range uids {
		result.Add(u)
	}
	for {
		next := n.G.RelatedTo(frontier, n.Vocab.AliasOf, "", dir)
		next = next.Subtract(result)
		if next.Empty() {
			break
		}
		result = result.Union(next)
		frontier = next
	}
	if label == "" {
		return result
	}
	out := make(kb.UIDSet)
	for u := range result {
		if n.G.Label(u) == label {
			out.Add(u)
		}
	}
	return out
}

// EndpointsOf resolves alias-of chains before returning the
// connected-to-interface endpoints of uids, so that connecting to an
// outer alias is observed as reaching the aliased inner interface
// (spec §8 scenario 6). dir selects the endpoint direction (typically
// BOTH, since connected-to-interface is symmetric in meaning).
func (n *Network) EndpointsOf(uids kb.UIDSet, dir kb.Direction) kb.UIDSet {
	resolved := n.resolveAliasClosure(uids)
	direct := n.G.RelatedTo(resolved, n.Vocab.ConnectedToInterface, "", dir)
	return direct.Union(n.resolveAliasClosure(direct))
}

// resolveAliasClosure returns uids union every interface reachable by
// following alias-of edges in either direction (an outer interface
// resolves to its innermost target and vice versa), per the alias
// closure rule recorded in DESIGN.md.
func (n *Network) resolveAliasClosure(uids kb.UIDSet) kb.UIDSet {
	result := make(kb.UIDSet)
	for u := range uids {
		result.Add(u)
	}
	frontier := uids
	for {
		next := n.G.RelatedTo(frontier, n.Vocab.AliasOf, "", kb.BOTH)
		next = next.Subtract(result)
		if next.Empty() {
			return result
		}
		result = result.Union(next)
		frontier = next
	}
}

// --- instantiation (spec §4.2, §9 clone preservation) ---

// InstantiateComponent deep-clones the has-a-rooted substructure of
// every ancestor class of classUIDs: for each ancestor, every
// descendant under has-a-subrelations is cloned, the has-a fact between
// ancestor and descendant is replayed between the new root instance and
// the clone, and has-a facts among descendants are replayed between
// their respective clones. Relations outside the has-a lattice are not
// cloned. Grounded verbatim on
// original_source/src/ComponentNetwork.cpp's instantiateComponent.
func (n *Network) InstantiateComponent(classUIDs kb.UIDSet, name string) kb.UID {
	g := n.G
	superClassUIDs := g.SuperclassesOf(classUIDs, "").Union(classUIDs)
	instanceUID := g.Instantiate(name, classUIDs.Slice()...)

	hasASubrelations := kb.NewUIDSet(n.Vocab.HasInterface, n.Vocab.HasSubInterface, n.Vocab.HasValue)

	for superUID := range superClassUIDs {
		descendants := n.descendantsOf(superUID, hasASubrelations)
		clones := make(map[kb.UID]kb.UID, len(descendants))

		for desc := range descendants {
			cloneUID := g.Instantiate(g.Label(desc), desc)
			clones[desc] = cloneUID
			n.replayHasAFacts(hasASubrelations, kb.NewUIDSet(superUID), kb.NewUIDSet(desc), instanceUID, cloneUID)
		}
		for src := range descendants {
			for dst := range descendants {
				if src == dst {
					continue
				}
				n.replayHasAFacts(hasASubrelations, kb.NewUIDSet(src), kb.NewUIDSet(dst), clones[src], clones[dst])
			}
		}
	}
	return instanceUID
}

// descendantsOf returns every entity reachable from root by following
// any of relUIDs (and their subrelations) forward, transitively.
func (n *Network) descendantsOf(root kb.UID, relUIDs kb.UIDSet) kb.UIDSet {
	out := make(kb.UIDSet)
	frontier := kb.NewUIDSet(root)
	for {
		next := make(kb.UIDSet)
		for rel := range relUIDs {
			next = next.Union(n.G.RelatedTo(frontier, rel, "", kb.FORWARD))
		}
		next = next.Subtract(out).Subtract(kb.NewUIDSet(root))
		if next.Empty() {
			return out
		}
		out = out.Union(next)
		frontier = next
	}
}

// replayHasAFacts asserts, between newFrom and newTo, every fact that
// held between fromUID and toUID under relUIDs or any of its
// subrelations — each replayed under its own specific relation, so a
// Needs or Provides fact clones as itself rather than collapsing to
// the generic has-a-interface relation it is subsumed by.
func (n *Network) replayHasAFacts(relUIDs, fromUID, toUID kb.UIDSet, newFrom, newTo kb.UID) {
	closure := n.G.SubrelationsOf(relUIDs)
	facts := n.G.FactsOfAny(closure, fromUID, toUID)
	for _, f := range facts.Slice() {
		n.G.AssertFact(f.Relation, kb.NewUIDSet(newFrom), kb.NewUIDSet(newTo))
	}
}
