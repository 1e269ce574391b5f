// Package software implements the software network layer (spec §4.3):
// Algorithm, Interface, Input, Output; needs/provides, depends-on; the
// abstract-vs-concrete duality via implements, encodes, realizes.
//
// Grounded on original_source/include/SoftwareNetwork.hpp for relation
// names and the implements/encodes/realizes distinction, layered over
// component.Network by composition rather than inheritance (spec §9).
package software

import (
	"hyperkb/domain/component"
	"hyperkb/domain/kb"
)

// Vocabulary holds the root concept/relation UIDs this layer installs.
type Vocabulary struct {
	Algorithm      kb.UID
	Interface      kb.UID // abstract interface root
	Input          kb.UID
	Output         kb.UID
	Implementation kb.UID

	Needs      kb.UID
	Provides   kb.UID
	DependsOn  kb.UID
	Implements kb.UID
	Encodes    kb.UID
	Realizes   kb.UID
}

var DefaultVocabulary = Vocabulary{
	Algorithm:      "software.Algorithm",
	Interface:      "software.Interface",
	Input:          "software.Input",
	Output:         "software.Output",
	Implementation: "software.Implementation",

	Needs:      "software.Needs",
	Provides:   "software.Provides",
	DependsOn:  "software.DependsOn",
	Implements: "software.Implements",
	Encodes:    "software.Encodes",
	Realizes:   "software.Realizes",
}

// Network binds the software vocabulary to a component.Network sharing
// the same underlying graph.
type Network struct {
	*component.Network
	Vocab Vocabulary
}

func New(g *kb.Graph) *Network {
	n := &Network{Network: component.New(g), Vocab: DefaultVocabulary}
	n.Ensure()
	return n
}

func (n *Network) Ensure() {
	v := n.Vocab
	g := n.G
	cv := n.Network.Vocab

	g.CreateConcept(v.Algorithm, "ALGORITHM", cv.Component)
	g.CreateConcept(v.Interface, "SW-INTERFACE", cv.Interface)
	g.CreateConcept(v.Input, "INPUT", v.Interface)
	g.CreateConcept(v.Output, "OUTPUT", v.Interface)
	g.CreateConcept(v.Implementation, "IMPLEMENTATION", v.Algorithm)

	// needs/provides are subsumed by has-a-interface (spec §3 invariant).
	g.CreateRelationType(v.Needs, "NEEDS", kb.NewUIDSet(v.Algorithm), kb.NewUIDSet(v.Input), cv.HasInterface)
	g.CreateRelationType(v.Provides, "PROVIDES", kb.NewUIDSet(v.Algorithm), kb.NewUIDSet(v.Output), cv.HasInterface)
	// depends-on is subsumed by connected-to-interface (spec §3 invariant).
	g.CreateRelationType(v.DependsOn, "DEPENDS-ON", kb.NewUIDSet(v.Input), kb.NewUIDSet(v.Output), cv.ConnectedToInterface)

	g.CreateRelationType(v.Implements, "IMPLEMENTS", kb.NewUIDSet(v.Implementation), kb.NewUIDSet(v.Algorithm))
	g.CreateRelationType(v.Encodes, "ENCODES", kb.NewUIDSet(v.Interface), kb.NewUIDSet(v.Interface))
	g.CreateRelationType(v.Realizes, "REALIZES", kb.NewUIDSet(v.Implementation), kb.NewUIDSet(v.Algorithm))
}

// --- typed factories ---

func (n *Network) CreateAlgorithm(uid kb.UID, label string, supers ...kb.UID) kb.UIDSet {
	if len(supers) == 0 {
		supers = []kb.UID{n.Vocab.Algorithm}
	}
	return n.CreateComponent(uid, label, supers...)
}

func (n *Network) CreateSWInterface(uid kb.UID, label string, supers ...kb.UID) kb.UIDSet {
	if len(supers) == 0 {
		supers = []kb.UID{n.Vocab.Interface}
	}
	return n.CreateInterface(uid, label, supers...)
}

func (n *Network) CreateInput(uid kb.UID, label string, supers ...kb.UID) kb.UIDSet {
	if len(supers) == 0 {
		supers = []kb.UID{n.Vocab.Input}
	}
	return n.CreateInterface(uid, label, supers...)
}

func (n *Network) CreateOutput(uid kb.UID, label string, supers ...kb.UID) kb.UIDSet {
	if len(supers) == 0 {
		supers = []kb.UID{n.Vocab.Output}
	}
	return n.CreateInterface(uid, label, supers...)
}

func (n *Network) CreateImplementation(uid kb.UID, label string, supers ...kb.UID) kb.UIDSet {
	if len(supers) == 0 {
		supers = []kb.UID{n.Vocab.Implementation}
	}
	return n.CreateComponent(uid, label, supers...)
}

// --- instance queries ---

func (n *Network) Algorithms(label string) kb.UIDSet {
	return n.G.InstancesOf(n.G.SubclassesOf(kb.NewUIDSet(n.Vocab.Algorithm), ""), label)
}

func (n *Network) Implementations(label string) kb.UIDSet {
	return n.G.InstancesOf(n.G.SubclassesOf(kb.NewUIDSet(n.Vocab.Implementation), ""), label)
}

func (n *Network) Inputs(label string) kb.UIDSet {
	return n.G.InstancesOf(n.G.SubclassesOf(kb.NewUIDSet(n.Vocab.Input), ""), label)
}

func (n *Network) Outputs(label string) kb.UIDSet {
	return n.G.InstancesOf(n.G.SubclassesOf(kb.NewUIDSet(n.Vocab.Output), ""), label)
}

// --- facts ---

func (n *Network) Needs(algorithmUIDs, inputUIDs kb.UIDSet) kb.FactSet {
	return n.G.AssertFact(n.Vocab.Needs, algorithmUIDs, inputUIDs)
}

func (n *Network) Provides(algorithmUIDs, outputUIDs kb.UIDSet) kb.FactSet {
	return n.G.AssertFact(n.Vocab.Provides, algorithmUIDs, outputUIDs)
}

func (n *Network) DependsOn(inputUIDs, outputUIDs kb.UIDSet) kb.FactSet {
	return n.G.AssertFact(n.Vocab.DependsOn, inputUIDs, outputUIDs)
}

func (n *Network) Implements(implementationClassUIDs, algorithmClassUIDs kb.UIDSet) kb.FactSet {
	return n.G.AssertFact(n.Vocab.Implements, implementationClassUIDs, algorithmClassUIDs)
}

func (n *Network) Encodes(concreteInterfaceUIDs, abstractInterfaceUIDs kb.UIDSet) kb.FactSet {
	return n.G.AssertFact(n.Vocab.Encodes, concreteInterfaceUIDs, abstractInterfaceUIDs)
}

func (n *Network) Realizes(implementationInstanceUIDs, algorithmInstanceUIDs kb.UIDSet) kb.FactSet {
	return n.G.AssertFact(n.Vocab.Realizes, implementationInstanceUIDs, algorithmInstanceUIDs)
}

// --- traversal ---

func (n *Network) InputsOf(uids kb.UIDSet, label string, dir kb.Direction) kb.UIDSet {
	return n.G.RelatedTo(uids, n.Vocab.Needs, label, dir)
}

func (n *Network) OutputsOf(uids kb.UIDSet, label string, dir kb.Direction) kb.UIDSet {
	return n.G.RelatedTo(uids, n.Vocab.Provides, label, dir)
}

func (n *Network) ImplementationClassesOf(algorithmClassUIDs kb.UIDSet) kb.UIDSet {
	return n.G.RelatedTo(algorithmClassUIDs, n.Vocab.Implements, "", kb.INVERSE)
}

func (n *Network) RealizersOf(algorithmInstanceUIDs kb.UIDSet) kb.UIDSet {
	return n.G.RelatedTo(algorithmInstanceUIDs, n.Vocab.Realizes, "", kb.INVERSE)
}

func (n *Network) ClassOf(instanceUID kb.UID) kb.UIDSet {
	return n.G.ClassesOf(instanceUID)
}
