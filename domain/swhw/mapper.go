// Package swhw specialises the generic resource/cost matcher to place
// software implementation instances onto hardware processor instances
// (spec §4.6): left partition is implementations, right is processors,
// the match predicate fuses resource satisfiability with a reachability
// test, and the mutation step asserts executed-on (a subrelation of
// mapped-to).
//
// Grounded verbatim on original_source/src/Mapper.cpp.
package swhw

import (
	"math"
	"sort"

	"hyperkb/domain/hardware"
	"hyperkb/domain/kb"
	"hyperkb/domain/resource"
	"hyperkb/domain/software"
	pkgerrors "hyperkb/pkg/errors"
)

// Vocabulary holds the relation UIDs this layer installs, both
// subrelations of resource.MappedTo.
type Vocabulary struct {
	ExecutedOn   kb.UID
	ReachableVia kb.UID
}

var DefaultVocabulary = Vocabulary{
	ExecutedOn:   "swhw.ExecutedOn",
	ReachableVia: "swhw.ReachableVia",
}

// Mapper binds a resource.Network to the software and hardware layers
// sharing the same graph, and performs the sw-to-hw placement.
type Mapper struct {
	*resource.Network
	SW    *software.Network
	HW    *hardware.Network
	Vocab Vocabulary
}

func New(g *kb.Graph) *Mapper {
	m := &Mapper{
		Network: resource.New(g),
		SW:      software.New(g),
		HW:      hardware.New(g),
		Vocab:   DefaultVocabulary,
	}
	m.Ensure()
	return m
}

func (m *Mapper) Ensure() {
	v := m.Vocab
	g := m.G
	g.CreateRelationType(v.ExecutedOn, "EXECUTED-ON",
		kb.NewUIDSet(m.SW.Vocab.Implementation), kb.NewUIDSet(m.HW.Vocab.Processor), m.Network.Vocab.MappedTo)
	g.CreateRelationType(v.ReachableVia, "REACHABLE-VIA",
		kb.NewUIDSet(m.SW.Vocab.Interface), kb.NewUIDSet(m.HW.Vocab.Interface), m.Network.Vocab.MappedTo)

	// Every implementation is a resource consumer and every processor a
	// resource provider: declared once here, at the class root, so a
	// caller building a graph only has to assert needs/provides facts
	// and never has to separately classify each instance.
	m.Network.IsConsumer(kb.NewUIDSet(m.SW.Vocab.Implementation))
	m.Network.IsProvider(kb.NewUIDSet(m.HW.Vocab.Processor))
}

func sortedSlice(uids kb.UIDSet) []kb.UID {
	out := uids.Slice()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// partitionLeft returns every software implementation instance. Takes
// g to satisfy resource.PartitionFunc; the mapper's own bound graph is
// always the one in play.
func (m *Mapper) partitionLeft(g *kb.Graph) []kb.UID {
	return sortedSlice(m.SW.Implementations(""))
}

// partitionRight returns every hardware processor instance.
func (m *Mapper) partitionRight(g *kb.Graph) []kb.UID {
	return sortedSlice(m.HW.Processors(""))
}

// neighboursOf returns the implementations (or processors, depending
// on which network owns uid's interfaces) adjacent to uid via
// connected-to-interface: uid's own interfaces, their BOTH-direction
// connected-to-interface endpoints (alias-resolved), and the owners of
// those endpoints.
func neighboursOf(cn interface {
	InterfacesOf(kb.UIDSet, string, kb.Direction) kb.UIDSet
	EndpointsOf(kb.UIDSet, kb.Direction) kb.UIDSet
}, uid kb.UID) kb.UIDSet {
	ifaces := cn.InterfacesOf(kb.NewUIDSet(uid), "", kb.FORWARD)
	endpoints := cn.EndpointsOf(ifaces, kb.BOTH)
	return cn.InterfacesOf(endpoints, "", kb.INVERSE)
}

// match scores an (implementation, processor) pair: reject on
// resource infeasibility, then on reachability — every processor
// currently hosting an implementation adjacent to impl must be among
// proc's own hardware neighbours (or proc itself; co-location is
// allowed).
func (m *Mapper) match(g *kb.Graph, impl, proc kb.UID) (float64, error) {
	score, err := m.Satisfies(kb.NewUIDSet(proc), kb.NewUIDSet(impl))
	if err != nil {
		return 0, err
	}
	if math.IsInf(score, -1) {
		return score, nil
	}

	swNeighbours := neighboursOf(m.SW.Network, impl)
	hwNeighbours := neighboursOf(m.HW.Network, proc)
	hwNeighbours.Add(proc)

	assignedProcs := m.ProvidersOf(swNeighbours)
	if !assignedProcs.Subtract(hwNeighbours).Empty() {
		return math.Inf(-1), nil
	}
	return score, nil
}

// mutate asserts executed-on from impl to proc.
func (m *Mapper) mutate(g *kb.Graph, impl, proc kb.UID) error {
	m.G.AssertFact(m.Vocab.ExecutedOn, kb.NewUIDSet(impl), kb.NewUIDSet(proc))
	return nil
}

// Map runs the matcher over the bound graph, then computes the
// post-mapping global cost: the average, over every processor that
// received at least one implementation, of (available - used) / available
// for each resource it provides. Returns 0 if no processor was used.
// A processor whose consumed quantity of a resource class exceeds what
// it provides aborts the run with an invariant-violation error.
func (m *Mapper) Map() (float64, []resource.Assignment, error) {
	assignments, err := resource.Match(m.G, m.partitionLeft, m.partitionRight, m.match, m.mutate)
	if err != nil {
		return 0, assignments, err
	}

	used := make(map[kb.UID]struct{})
	for _, a := range assignments {
		if a.Mapped {
			used[a.Right] = struct{}{}
		}
	}

	if len(used) == 0 {
		return 0, assignments, nil
	}

	total := 0.0
	for proc := range used {
		procSet := kb.NewUIDSet(proc)
		consumers := m.ConsumersOf(procSet)
		available := m.ResourcesOf(procSet, nil)
		consumed := m.G.FactsOf(m.Network.Vocab.Consumes, consumers, nil).Targets()

		for availableUID := range available {
			availableQty, err := m.Quantity(availableUID)
			if err != nil {
				return 0, assignments, err
			}
			availableClasses := m.G.ClassesOf(availableUID)

			consumedQty := 0.0
			for consumedUID := range consumed {
				if m.G.ClassesOf(consumedUID).Intersect(availableClasses).Empty() {
					continue
				}
				q, err := m.Quantity(consumedUID)
				if err != nil {
					return 0, assignments, err
				}
				consumedQty += q
			}
			if consumedQty > availableQty {
				return 0, assignments, pkgerrors.NewInvariantViolation("capacity exceeded on processor " + proc.String())
			}
			total += (availableQty - consumedQty) / availableQty
		}
	}
	return total / float64(len(used)), assignments, nil
}
