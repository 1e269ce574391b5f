package swhw_test

import (
	"testing"

	"hyperkb/domain/kb"
	"hyperkb/domain/swhw"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildReachabilityScenario mirrors spec §8 scenario 3: two
// implementation instances connected by depends-on, two processors
// with no connected-to-interface between them, each individually
// resource-sufficient. The reachability gate must force both
// implementations onto the same processor.
func buildReachabilityScenario(t *testing.T) (*swhw.Mapper, kb.UID, kb.UID, kb.UID, kb.UID) {
	t.Helper()
	g := kb.NewGraph()
	m := swhw.New(g)

	m.SW.CreateAlgorithm("Worker", "WORKER")
	m.SW.CreateImplementation("WorkerImpl", "WORKER-IMPL")
	m.SW.Implements(kb.NewUIDSet("WorkerImpl"), kb.NewUIDSet("Worker"))
	m.SW.CreateInput("Worker.In", "IN")
	m.SW.CreateOutput("Worker.Out", "OUT")

	i1 := m.SW.InstantiateComponent(kb.NewUIDSet("WorkerImpl"), "i1")
	i2 := m.SW.InstantiateComponent(kb.NewUIDSet("WorkerImpl"), "i2")
	i1In := g.Instantiate("i1.in", "Worker.In")
	i2Out := g.Instantiate("i2.out", "Worker.Out")
	m.SW.HasInterface(kb.NewUIDSet(i1), kb.NewUIDSet(i1In))
	m.SW.HasInterface(kb.NewUIDSet(i2), kb.NewUIDSet(i2Out))
	m.SW.DependsOn(kb.NewUIDSet(i1In), kb.NewUIDSet(i2Out))

	m.HW.CreateProcessor("Proc", "PROC")
	p1 := g.Instantiate("p1", "Proc")
	p2 := g.Instantiate("p2", "Proc")

	m.DefineResource("Cycles", "CYCLES")
	for _, impl := range []kb.UID{i1, i2} {
		m.Needs(kb.NewUIDSet(impl), m.InstantiateResource(kb.NewUIDSet("Cycles"), 1))
	}
	for _, proc := range []kb.UID{p1, p2} {
		m.Provides(kb.NewUIDSet(proc), m.InstantiateResource(kb.NewUIDSet("Cycles"), 10))
	}

	return m, i1, i2, p1, p2
}

func TestMap_ReachabilityForcesCoLocation(t *testing.T) {
	m, i1, i2, _, _ := buildReachabilityScenario(t)

	_, assignments, err := m.Map()
	require.NoError(t, err)
	require.Len(t, assignments, 2)

	byLeft := make(map[kb.UID]string)
	for _, a := range assignments {
		require.True(t, a.Mapped, "both implementations are individually resource-sufficient and must map")
		byLeft[a.Left] = a.Right.String()
	}
	assert.Equal(t, byLeft[i1], byLeft[i2], "depends-on-connected implementations with no inter-processor link must land on the same processor")
}

func TestMap_Deterministic(t *testing.T) {
	m, _, _, _, _ := buildReachabilityScenario(t)
	m2 := swhw.New(m.G.Clone())
	_, first, err := m.Map()
	require.NoError(t, err)

	_, second, err := m2.Map()
	require.NoError(t, err)

	require.Len(t, first, len(second))
	for i := range first {
		assert.Equal(t, first[i].Left, second[i].Left)
		assert.Equal(t, first[i].Mapped, second[i].Mapped)
	}
}

func TestMap_GlobalCostAveragesUsedProcessorsOnly(t *testing.T) {
	m, _, _, p1, p2 := buildReachabilityScenario(t)

	cost, assignments, err := m.Map()
	require.NoError(t, err)

	used := make(map[kb.UID]bool)
	for _, a := range assignments {
		if a.Mapped {
			used[a.Right] = true
		}
	}
	assert.Len(t, used, 1, "the reachability gate must confine both implementations to a single processor")
	assert.True(t, used[p1] || used[p2])
	assert.Greater(t, cost, 0.0, "a lightly loaded processor must leave positive residual slack")
}

func TestMap_NoProcessorsYieldsZeroCostAndAllUnmapped(t *testing.T) {
	g := kb.NewGraph()
	m := swhw.New(g)
	m.SW.CreateAlgorithm("Worker", "WORKER")
	m.SW.CreateImplementation("WorkerImpl", "WORKER-IMPL")
	m.SW.Implements(kb.NewUIDSet("WorkerImpl"), kb.NewUIDSet("Worker"))
	m.SW.InstantiateComponent(kb.NewUIDSet("WorkerImpl"), "i1")

	cost, assignments, err := m.Map()
	require.NoError(t, err)
	assert.Equal(t, 0.0, cost)
	for _, a := range assignments {
		assert.False(t, a.Mapped)
	}
}
