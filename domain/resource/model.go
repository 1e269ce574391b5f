// Package resource implements the resource/cost model (spec §4.5):
// Consumer, Provider, Resource; needs/consumes(<=needs)/provides;
// mapped-to; and the typed-quantity satisfiability predicate the
// generic bipartite matcher scores candidate pairs with.
//
// Grounded verbatim on original_source/src/ResourceCostModel.cpp.
package resource

import (
	"hyperkb/domain/component"
	"hyperkb/domain/kb"
	pkgerrors "hyperkb/pkg/errors"
	"math"
	"strconv"
)

// Vocabulary holds the root concept/relation UIDs this layer installs.
type Vocabulary struct {
	Consumer kb.UID
	Provider kb.UID
	Resource kb.UID

	Needs    kb.UID
	Provides kb.UID
	Consumes kb.UID
	MappedTo kb.UID
}

var DefaultVocabulary = Vocabulary{
	Consumer: "resource.Consumer",
	Provider: "resource.Provider",
	Resource: "resource.Resource",

	Needs:    "resource.Needs",
	Provides: "resource.Provides",
	Consumes: "resource.Consumes",
	MappedTo: "resource.MappedTo",
}

// Network binds the resource vocabulary to a component.Network sharing
// the same underlying graph. Consumer/Provider are plain concepts (not
// component subclasses): an entity becomes one by is-a assertion
// against Consumer/Provider directly, independent of the component
// layer's class lattice.
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
	g.CreateConcept(v.Consumer, "CONSUMER")
	g.CreateConcept(v.Provider, "PROVIDER")
	g.CreateConcept(v.Resource, "RESOURCE")

	g.CreateRelationType(v.Needs, "NEEDS", kb.NewUIDSet(v.Consumer), kb.NewUIDSet(v.Resource))
	// consumes implies needs but not vice versa: consumes <= needs.
	g.CreateRelationType(v.Consumes, "CONSUMES", kb.NewUIDSet(v.Consumer), kb.NewUIDSet(v.Resource), v.Needs)
	g.CreateRelationType(v.Provides, "PROVIDES", kb.NewUIDSet(v.Provider), kb.NewUIDSet(v.Resource), n.Network.Vocab.HasValue)
	g.CreateRelationType(v.MappedTo, "MAPPED-TO", kb.NewUIDSet(v.Consumer), kb.NewUIDSet(v.Provider), n.Network.Vocab.PartOfComponent)
}

// DefineResource registers uid as a resource class under superResourceUids
// (defaulting to the Resource root). Rejected (empty result) if any
// given super is not already a resource class.
func (n *Network) DefineResource(uid kb.UID, name string, superResourceUids ...kb.UID) kb.UIDSet {
	if len(superResourceUids) == 0 {
		superResourceUids = []kb.UID{n.Vocab.Resource}
	}
	all := n.G.SubclassesOf(kb.NewUIDSet(n.Vocab.Resource), "")
	for _, s := range superResourceUids {
		if !all.Has(s) {
			return kb.UIDSet{}
		}
	}
	return n.G.CreateConcept(uid, name, superResourceUids...)
}

// InstantiateResource creates an instance of each resourceClassUid
// (filtered to actual resource classes) carrying amount as its label,
// the representation satisfies() later parses back with strconv.
func (n *Network) InstantiateResource(resourceClassUIDs kb.UIDSet, amount float64) kb.UIDSet {
	valid := resourceClassUIDs.Intersect(n.G.SubclassesOf(kb.NewUIDSet(n.Vocab.Resource), ""))
	out := make(kb.UIDSet)
	label := strconv.FormatFloat(amount, 'f', -1, 64)
	for class := range valid {
		out.Add(n.G.Instantiate(label, class))
	}
	return out
}

// --- consumer / provider roles ---

func (n *Network) IsConsumer(uids kb.UIDSet) {
	for u := range uids {
		n.G.AssertSubclassOf(u, n.Vocab.Consumer)
	}
}

func (n *Network) IsProvider(uids kb.UIDSet) {
	for u := range uids {
		n.G.AssertSubclassOf(u, n.Vocab.Provider)
	}
}

func (n *Network) ConsumerClasses(label string) kb.UIDSet {
	return n.G.SubclassesOf(kb.NewUIDSet(n.Vocab.Consumer), label)
}

func (n *Network) ProviderClasses(label string) kb.UIDSet {
	return n.G.SubclassesOf(kb.NewUIDSet(n.Vocab.Provider), label)
}

func (n *Network) Consumers(label string) kb.UIDSet {
	return n.G.InstancesOf(n.ConsumerClasses(""), label)
}

func (n *Network) Providers(label string) kb.UIDSet {
	return n.G.InstancesOf(n.ProviderClasses(""), label)
}

// --- facts ---

func (n *Network) Needs(consumerUIDs, resourceUIDs kb.UIDSet) kb.FactSet {
	return n.G.AssertFact(n.Vocab.Needs, consumerUIDs, resourceUIDs)
}

func (n *Network) Provides(providerUIDs, resourceUIDs kb.UIDSet) kb.FactSet {
	return n.G.AssertFact(n.Vocab.Provides, providerUIDs, resourceUIDs)
}

// Consumes should only be asserted for resources that are actually
// depletable; the model does not itself police this.
func (n *Network) Consumes(consumerUIDs, resourceUIDs kb.UIDSet) kb.FactSet {
	return n.G.AssertFact(n.Vocab.Consumes, consumerUIDs, resourceUIDs)
}

// --- traversal ---

// DemandsOf returns the resource instances consumerUIDs need, optionally
// restricted to resourceClassUIDs (defaulting to every resource).
func (n *Network) DemandsOf(consumerUIDs kb.UIDSet, resourceClassUIDs kb.UIDSet) kb.UIDSet {
	if resourceClassUIDs.Empty() {
		resourceClassUIDs = kb.NewUIDSet(n.Vocab.Resource)
	}
	valid := n.G.InstancesOf(n.G.SubclassesOf(resourceClassUIDs, ""), "")
	candidates := n.G.RelatedTo(consumerUIDs, n.Vocab.Needs, "", kb.FORWARD)
	return candidates.Intersect(valid)
}

// ResourcesOf returns the resource instances providerUIDs provide,
// optionally restricted to resourceClassUIDs.
func (n *Network) ResourcesOf(providerUIDs kb.UIDSet, resourceClassUIDs kb.UIDSet) kb.UIDSet {
	if resourceClassUIDs.Empty() {
		resourceClassUIDs = kb.NewUIDSet(n.Vocab.Resource)
	}
	valid := n.G.InstancesOf(n.G.SubclassesOf(resourceClassUIDs, ""), "")
	candidates := n.G.RelatedTo(providerUIDs, n.Vocab.Provides, "", kb.FORWARD)
	return candidates.Intersect(valid)
}

func (n *Network) ConsumersOf(providerUIDs kb.UIDSet) kb.UIDSet {
	return n.G.RelatedTo(providerUIDs, n.Vocab.MappedTo, "", kb.INVERSE)
}

func (n *Network) ProvidersOf(consumerUIDs kb.UIDSet) kb.UIDSet {
	return n.G.RelatedTo(consumerUIDs, n.Vocab.MappedTo, "", kb.FORWARD)
}

// Quantity parses a resource instance's label as its quantity,
// returning an invariant-violation error if it is not well-formed
// (spec §4.6 "fatal invariant violation"). Exported so the SW->HW
// mapper's global-cost computation can reuse the same parsing rule.
func (n *Network) Quantity(resourceUID kb.UID) (float64, error) {
	label := n.G.Label(resourceUID)
	q, err := strconv.ParseFloat(label, 64)
	if err != nil {
		return 0, pkgerrors.WrapInvariantViolation(err, "resource instance label is not a valid quantity: "+resourceUID.String())
	}
	return q, nil
}

// Satisfies computes the tightest slack ratio across every resource
// type matched between providerUIDs' supply and consumerUIDs' demand
// (spec §4.5). Returns math.Inf(-1) if infeasible (either some
// matched pair's residual would go negative, or some needed resource
// class has no typed supply at all), otherwise a value in [0,1] where
// higher means more slack. An invariant violation aborts the call
// entirely rather than being folded into the score.
func (n *Network) Satisfies(providerUIDs, consumerUIDs kb.UIDSet) (float64, error) {
	minimum := 1.0

	for providerUID := range providerUIDs {
		providerSet := kb.NewUIDSet(providerUID)
		mappedConsumerUIDs := n.ConsumersOf(providerSet)
		availableResourceUIDs := n.ResourcesOf(providerSet, nil)

		var consumedResourceUIDs kb.UIDSet
		if !mappedConsumerUIDs.Empty() {
			consumedResourceUIDs = n.G.FactsOf(n.Vocab.Consumes, mappedConsumerUIDs, nil).Targets()
		}

		for consumerUID := range consumerUIDs.Subtract(mappedConsumerUIDs) {
			neededResourceUIDs := n.DemandsOf(kb.NewUIDSet(consumerUID), nil)
			matchingResources := 0

			for availableResourceUID := range availableResourceUIDs {
				available, err := n.Quantity(availableResourceUID)
				if err != nil {
					return 0, err
				}
				availableClasses := n.G.ClassesOf(availableResourceUID)

				used := 0.0
				for consumedResourceUID := range consumedResourceUIDs {
					if n.G.ClassesOf(consumedResourceUID).Intersect(availableClasses).Empty() {
						continue
					}
					consumed, err := n.Quantity(consumedResourceUID)
					if err != nil {
						return 0, err
					}
					used += consumed
				}

				for neededResourceUID := range neededResourceUIDs {
					if n.G.ClassesOf(neededResourceUID).Intersect(availableClasses).Empty() {
						continue
					}
					needed, err := n.Quantity(neededResourceUID)
					if err != nil {
						return 0, err
					}
					matchingResources++
					cost := (available - used - needed) / available
					if cost < 0 {
						return math.Inf(-1), nil
					}
					if cost < minimum {
						minimum = cost
					}
				}
			}

			if matchingResources < len(neededResourceUIDs) {
				return math.Inf(-1), nil
			}
		}
	}
	return minimum, nil
}
