package kb_test

import (
	"testing"

	"hyperkb/domain/kb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubrelationClosure(t *testing.T) {
	g := kb.NewGraph()
	a := g.CreateConcept("A", "A")
	b := g.CreateConcept("B", "B")
	g.CreateRelationType("R", "R", a, b)
	g.CreateRelationType("R2", "R2", a, b, "R")

	x := g.Instantiate("x", "A")
	y := g.Instantiate("y", "B")
	g.AssertFact("R2", kb.NewUIDSet(x), kb.NewUIDSet(y))

	facts := g.FactsOf("R", kb.NewUIDSet(x), nil)
	assert.False(t, facts.Empty(), "facts of R must include facts of its subrelation R2")
	assert.Equal(t, kb.UID("R2"), facts.Slice()[0].Relation)
}

func TestAssertFact_TypeMismatchRejectedSilently(t *testing.T) {
	g := kb.NewGraph()
	g.CreateConcept("A", "A")
	g.CreateConcept("B", "B")
	g.CreateRelationType("R", "R", kb.NewUIDSet("A"), kb.NewUIDSet("B"))

	wrongSource := g.Instantiate("wrong", "B")
	target := g.Instantiate("target", "B")

	result := g.AssertFact("R", kb.NewUIDSet(wrongSource), kb.NewUIDSet(target))
	assert.True(t, result.Empty(), "a fact violating the declared domain must be silently rejected")
}

func TestAssertFact_EmptyEndpointRejected(t *testing.T) {
	g := kb.NewGraph()
	g.CreateConcept("A", "A")
	g.CreateConcept("B", "B")
	g.CreateRelationType("R", "R", kb.NewUIDSet("A"), kb.NewUIDSet("B"))

	result := g.AssertFact("R", kb.UIDSet{}, kb.NewUIDSet("B"))
	assert.True(t, result.Empty())
}

func TestSubclassesAndInstancesOf(t *testing.T) {
	g := kb.NewGraph()
	g.CreateConcept("Animal", "ANIMAL")
	g.CreateConcept("Dog", "DOG", "Animal")
	g.CreateConcept("Cat", "CAT", "Animal")

	dogInstance := g.Instantiate("rex", "Dog")

	classes := g.SubclassesOf(kb.NewUIDSet("Animal"), "")
	assert.True(t, classes.Has("Dog"))
	assert.True(t, classes.Has("Cat"))

	instances := g.InstancesOf(classes, "")
	assert.True(t, instances.Has(dogInstance))
}

func TestClone_IndependentOfOriginal(t *testing.T) {
	g := kb.NewGraph()
	g.CreateConcept("A", "A")
	g.CreateConcept("B", "B")
	g.CreateRelationType("R", "R", kb.NewUIDSet("A"), kb.NewUIDSet("B"))
	x := g.Instantiate("x", "A")
	y := g.Instantiate("y", "B")
	g.AssertFact("R", kb.NewUIDSet(x), kb.NewUIDSet(y))

	clone := g.Clone()

	z := clone.Instantiate("z", "A")
	clone.AssertFact("R", kb.NewUIDSet(z), kb.NewUIDSet(y))

	require.True(t, clone.Exists(z))
	assert.False(t, g.Exists(z), "mutating the clone must not affect the original")

	origFacts := g.FactsOf("R", nil, nil)
	cloneFacts := clone.FactsOf("R", nil, nil)
	assert.Len(t, origFacts, 1)
	assert.Len(t, cloneFacts, 2)
}

func TestLabel_UnknownUIDIsEmpty(t *testing.T) {
	g := kb.NewGraph()
	assert.Equal(t, "", g.Label("nope"))
	assert.False(t, g.Exists("nope"))
}
