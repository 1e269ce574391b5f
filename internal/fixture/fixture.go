// Package fixture builds small demo knowledge bases for cmd/mapper, one
// per entry point named in spec §6: generate-implementation-networks
// and map-software-to-hardware. These are illustrative graphs, not test
// fixtures; domain package tests build their own minimal graphs inline.
package fixture

import (
	"hyperkb/domain/hardware"
	"hyperkb/domain/kb"
	"hyperkb/domain/resource"
	"hyperkb/domain/software"
)

// Enumeration builds two algorithm instances A and B, each of an
// algorithm class with two implementing classes, wired by a single
// depends-on fact between A's input and B's output — the scenario
// generateAllImplementationNetworks is expected to expand into exactly
// four candidate networks (spec §8 scenario 4).
func Enumeration(g *kb.Graph) {
	sn := software.New(g)

	algoA := kb.UID("algo.A")
	algoB := kb.UID("algo.B")
	sn.CreateAlgorithm(algoA, "ALGO-A")
	sn.CreateAlgorithm(algoB, "ALGO-B")

	implA1, implA2 := kb.UID("impl.A1"), kb.UID("impl.A2")
	implB1, implB2 := kb.UID("impl.B1"), kb.UID("impl.B2")
	sn.CreateImplementation(implA1, "IMPL-A1")
	sn.CreateImplementation(implA2, "IMPL-A2")
	sn.CreateImplementation(implB1, "IMPL-B1")
	sn.CreateImplementation(implB2, "IMPL-B2")
	sn.Implements(kb.NewUIDSet(implA1, implA2), kb.NewUIDSet(algoA))
	sn.Implements(kb.NewUIDSet(implB1, implB2), kb.NewUIDSet(algoB))

	// Class-level slots: every implementing class of A gets its own "in"
	// port, every implementing class of B its own "out" port, so cloning
	// an implementation instance carries the port along with it under
	// the same label the algorithm-level edge was discovered by.
	inSlot := kb.UID("impl.in.slot")
	outSlot := kb.UID("impl.out.slot")
	sn.CreateInput(inSlot, "in")
	sn.CreateOutput(outSlot, "out")
	sn.Needs(kb.NewUIDSet(implA1, implA2), kb.NewUIDSet(inSlot))
	sn.Provides(kb.NewUIDSet(implB1, implB2), kb.NewUIDSet(outSlot))

	inA := kb.UID("algo.A.in")
	outB := kb.UID("algo.B.out")
	sn.CreateInput(inA, "in")
	sn.CreateOutput(outB, "out")

	aInst := g.Instantiate("a", algoA)
	bInst := g.Instantiate("b", algoB)
	inAInst := g.Instantiate("in", inA)
	outBInst := g.Instantiate("out", outB)

	sn.Needs(kb.NewUIDSet(aInst), kb.NewUIDSet(inAInst))
	sn.Provides(kb.NewUIDSet(bInst), kb.NewUIDSet(outBInst))
	sn.DependsOn(kb.NewUIDSet(inAInst), kb.NewUIDSet(outBInst))
}

// Mapping builds two implementation instances connected by depends-on
// between their interfaces, and two processor instances with no
// connected-to-interface between them, each individually resource-
// sufficient (spec §8 scenario 3: the reachability gate forces both
// implementations onto the same processor).
func Mapping(g *kb.Graph) {
	sn := software.New(g)
	hn := hardware.New(g)
	rn := resource.New(g)

	algo := kb.UID("algo.worker")
	sn.CreateAlgorithm(algo, "WORKER")
	implClass := kb.UID("impl.worker")
	sn.CreateImplementation(implClass, "WORKER-IMPL")
	sn.Implements(kb.NewUIDSet(implClass), kb.NewUIDSet(algo))

	ifaceIn := kb.UID("worker.in")
	ifaceOut := kb.UID("worker.out")
	sn.CreateInput(ifaceIn, "IN")
	sn.CreateOutput(ifaceOut, "OUT")

	i1 := sn.InstantiateComponent(kb.NewUIDSet(implClass), "i1")
	i2 := sn.InstantiateComponent(kb.NewUIDSet(implClass), "i2")

	i1In := g.Instantiate("i1.in", ifaceIn)
	i2Out := g.Instantiate("i2.out", ifaceOut)
	sn.HasInterface(kb.NewUIDSet(i1), kb.NewUIDSet(i1In))
	sn.HasInterface(kb.NewUIDSet(i2), kb.NewUIDSet(i2Out))
	sn.DependsOn(kb.NewUIDSet(i1In), kb.NewUIDSet(i2Out))

	procClass := kb.UID("proc.class")
	hn.CreateProcessor(procClass, "PROC")
	p1 := g.Instantiate("p1", procClass)
	p2 := g.Instantiate("p2", procClass)

	cycles := kb.UID("resource.Cycles")
	rn.DefineResource(cycles, "CYCLES")

	for _, impl := range []kb.UID{i1, i2} {
		demand := rn.InstantiateResource(kb.NewUIDSet(cycles), 1)
		rn.Needs(kb.NewUIDSet(impl), demand)
	}
	for _, proc := range []kb.UID{p1, p2} {
		supply := rn.InstantiateResource(kb.NewUIDSet(cycles), 10)
		rn.Provides(kb.NewUIDSet(proc), supply)
	}
}
