package component_test

import (
	"testing"

	"hyperkb/domain/component"
	"hyperkb/domain/kb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInstantiateComponent_ClonePreservesSubstructure exercises the
// universal property from spec §8: after instantiateComponent(C), the
// sub-structure below the instance under has-a is isomorphic to that
// below C, and intra-substructure has-a facts (here, an interface's
// has-a-value) are preserved between the corresponding clones.
func TestInstantiateComponent_ClonePreservesSubstructure(t *testing.T) {
	g := kb.NewGraph()
	cn := component.New(g)

	class := cn.CreateComponent("Sensor", "SENSOR")
	iface := cn.CreateInterface("Sensor.Reading", "READING")
	val := cn.CreateValue("Sensor.Unit", "UNIT")
	require.False(t, class.Empty())
	require.False(t, iface.Empty())
	require.False(t, val.Empty())

	cn.HasInterface(kb.NewUIDSet("Sensor"), kb.NewUIDSet("Sensor.Reading"))
	cn.HasValue(kb.NewUIDSet("Sensor.Reading"), kb.NewUIDSet("Sensor.Unit"))

	inst := cn.InstantiateComponent(kb.NewUIDSet("Sensor"), "s1")

	instIfaces := cn.InterfacesOf(kb.NewUIDSet(inst), "", kb.FORWARD)
	require.Len(t, instIfaces, 1, "the instance must have exactly one cloned interface")

	clonedIface := instIfaces.Slice()[0]
	assert.NotEqual(t, kb.UID("Sensor.Reading"), clonedIface, "the interface must be a clone, not the class itself")
	assert.Equal(t, "READING", g.Label(clonedIface))

	clonedValues := cn.ValuesOf(kb.NewUIDSet(clonedIface), "", kb.FORWARD)
	require.Len(t, clonedValues, 1, "the cloned interface must carry its own cloned value, not the class's")
	assert.Equal(t, "UNIT", g.Label(clonedValues.Slice()[0]))
	assert.NotEqual(t, kb.UID("Sensor.Unit"), clonedValues.Slice()[0])
}

// TestInstantiateComponent_TwoInstancesAreIndependent confirms repeated
// instantiation produces independent clones rather than sharing state.
func TestInstantiateComponent_TwoInstancesAreIndependent(t *testing.T) {
	g := kb.NewGraph()
	cn := component.New(g)
	cn.CreateComponent("Sensor", "SENSOR")
	cn.CreateInterface("Sensor.Reading", "READING")
	cn.HasInterface(kb.NewUIDSet("Sensor"), kb.NewUIDSet("Sensor.Reading"))

	a := cn.InstantiateComponent(kb.NewUIDSet("Sensor"), "a")
	b := cn.InstantiateComponent(kb.NewUIDSet("Sensor"), "b")

	ifaceA := cn.InterfacesOf(kb.NewUIDSet(a), "", kb.FORWARD)
	ifaceB := cn.InterfacesOf(kb.NewUIDSet(b), "", kb.FORWARD)
	require.Len(t, ifaceA, 1)
	require.Len(t, ifaceB, 1)
	assert.NotEqual(t, ifaceA.Slice()[0], ifaceB.Slice()[0], "each instantiation must clone its own interface")
}

// TestAliasedInterfaceReachability covers spec §8 scenario 6: outer
// component O aliases inner interface x of part P. Connecting another
// component's interface to O's alias must cause EndpointsOf to reach
// P.x through the alias chain, and the reverse lookup from P.x must
// reach the connected interface too.
func TestAliasedInterfaceReachability(t *testing.T) {
	g := kb.NewGraph()
	cn := component.New(g)

	cn.CreateComponent("Outer", "OUTER")
	cn.CreateComponent("Part", "PART")
	cn.CreateComponent("Other", "OTHER")
	cn.CreateInterface("Outer.Alias", "ALIAS")
	cn.CreateInterface("Part.X", "X")
	cn.CreateInterface("Other.Y", "Y")

	cn.PartOfComponent(kb.NewUIDSet("Part"), kb.NewUIDSet("Outer"))
	cn.HasInterface(kb.NewUIDSet("Outer"), kb.NewUIDSet("Outer.Alias"))
	cn.HasInterface(kb.NewUIDSet("Part"), kb.NewUIDSet("Part.X"))
	cn.HasInterface(kb.NewUIDSet("Other"), kb.NewUIDSet("Other.Y"))
	cn.AliasOf(kb.NewUIDSet("Outer.Alias"), kb.NewUIDSet("Part.X"))

	cn.ConnectInterface(kb.NewUIDSet("Other.Y"), kb.NewUIDSet("Outer.Alias"))

	reached := cn.EndpointsOf(kb.NewUIDSet("Other.Y"), kb.BOTH)
	assert.True(t, reached.Has("Part.X"), "connecting to the outer alias must reach the aliased inner interface")
	assert.True(t, reached.Has("Outer.Alias"))

	reverse := cn.EndpointsOf(kb.NewUIDSet("Part.X"), kb.BOTH)
	assert.True(t, reverse.Has("Other.Y"), "the inner interface must see the connection made through its alias")
}

// TestOriginalInterfacesOf_ChainedAlias confirms alias-of chains resolve
// to their fixed point rather than stopping one hop early.
func TestOriginalInterfacesOf_ChainedAlias(t *testing.T) {
	g := kb.NewGraph()
	cn := component.New(g)
	cn.CreateInterface("A", "A")
	cn.CreateInterface("B", "B")
	cn.CreateInterface("C", "C")
	cn.AliasOf(kb.NewUIDSet("A"), kb.NewUIDSet("B"))
	cn.AliasOf(kb.NewUIDSet("B"), kb.NewUIDSet("C"))

	originals := cn.OriginalInterfacesOf(kb.NewUIDSet("A"), "", kb.FORWARD)
	assert.True(t, originals.Has("C"), "alias-of chains must resolve through every hop to the innermost target")
}

// TestCreateComponent_RejectsSuperNotUnderRoot mirrors the original's
// createComponent type check: a super that is not itself a component
// subclass is rejected, leaving nothing created.
func TestCreateComponent_RejectsSuperNotUnderRoot(t *testing.T) {
	g := kb.NewGraph()
	cn := component.New(g)
	cn.CreateInterface("NotAComponent", "NOT-A-COMPONENT")

	result := cn.CreateComponent("Bad", "BAD", "NotAComponent")
	assert.True(t, result.Empty(), "a super outside the component lattice must reject the creation")
	assert.False(t, g.Exists("Bad"))
}
