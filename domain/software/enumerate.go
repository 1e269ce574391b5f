package software

import (
	"fmt"

	"hyperkb/domain/kb"
)

// dependsOnEdge records one original depends-on fact between two
// algorithm instances' own input/output interfaces, captured before
// any candidate is spawned so step 3 can replay it against whichever
// implementation each candidate chose.
type dependsOnEdge struct {
	algIn  kb.UID
	in     kb.UID
	algOut kb.UID
	out    kb.UID
}

// GenerateAllImplementationNetworks enumerates every possible
// implementation network for the algorithm instances wired by
// depends-on in g (spec §4.3.1). Each returned graph is an
// independent clone of g carrying realizes facts for every algorithm
// instance plus depends-on facts mirrored between the chosen
// implementations' interfaces by label. Cardinality is the product,
// over every algorithm instance, of the number of implementation
// classes linked to it via implements — zero if any algorithm
// instance has none.
//
// Grounded verbatim on original_source/src/SoftwareNetwork.cpp's
// generateAllImplementationNetworks (candidate-list Cartesian
// expansion, then a single depends-on replay pass over the result).
func GenerateAllImplementationNetworks(g *kb.Graph) []*kb.Graph {
	// maxCandidates <= 0 disables the cap, so this never aborts.
	networks, _ := GenerateAllImplementationNetworksCapped(g, 0)
	return networks
}

// GenerateAllImplementationNetworksCapped behaves like
// GenerateAllImplementationNetworks but aborts the Cartesian expansion
// as soon as the running candidate count would exceed maxCandidates,
// returning an error instead of an unbounded result. maxCandidates <= 0
// means unlimited. This is the demo binary's guard against a
// pathological algorithm/implementation fan-out; spec §4.3.1's
// cardinality has no built-in ceiling of its own.
func GenerateAllImplementationNetworksCapped(g *kb.Graph, maxCandidates int) ([]*kb.Graph, error) {
	base := New(g)
	algorithms := base.Algorithms("").Slice()

	var edges []dependsOnEdge
	for _, a := range algorithms {
		ins := base.InputsOf(kb.NewUIDSet(a), "", kb.FORWARD)
		for in := range ins {
			outs := base.G.RelatedTo(kb.NewUIDSet(in), base.Vocab.DependsOn, "", kb.FORWARD)
			for out := range outs {
				for _, b := range algorithms {
					if b == a {
						continue
					}
					if base.OutputsOf(kb.NewUIDSet(b), "", kb.FORWARD).Has(out) {
						edges = append(edges, dependsOnEdge{algIn: a, in: in, algOut: b, out: out})
					}
				}
			}
		}
	}

	candidates := []*kb.Graph{g.Clone()}

	for _, a := range algorithms {
		algClass := base.ClassOf(a)
		implClasses := base.ImplementationClassesOf(algClass).Slice()

		if maxCandidates > 0 && len(implClasses) > 0 && len(candidates) > maxCandidates/len(implClasses) {
			return nil, fmt.Errorf("implementation network expansion exceeds %d candidates", maxCandidates)
		}

		next := make([]*kb.Graph, 0, len(candidates)*len(implClasses))
		for _, cand := range candidates {
			for _, impl := range implClasses {
				spawned := cand.Clone()
				sn := New(spawned)
				implInstance := sn.InstantiateComponent(kb.NewUIDSet(impl), sn.G.Label(impl))
				sn.Realizes(kb.NewUIDSet(implInstance), kb.NewUIDSet(a))
				next = append(next, spawned)
			}
		}
		candidates = next
	}

	for _, cand := range candidates {
		cn := New(cand)
		for _, e := range edges {
			aImpl := cn.RealizersOf(kb.NewUIDSet(e.algIn))
			bImpl := cn.RealizersOf(kb.NewUIDSet(e.algOut))
			inLabel := cand.Label(e.in)
			outLabel := cand.Label(e.out)
			aInterfaces := cn.InputsOf(aImpl, inLabel, kb.FORWARD)
			bInterfaces := cn.OutputsOf(bImpl, outLabel, kb.FORWARD)
			cn.DependsOn(aInterfaces, bInterfaces)
		}
	}

	return candidates, nil
}
