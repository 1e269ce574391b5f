package hardware_test

import (
	"testing"

	"hyperkb/domain/hardware"
	"hyperkb/domain/kb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessorIsADevice(t *testing.T) {
	g := kb.NewGraph()
	hn := hardware.New(g)

	hn.CreateProcessor("CPU", "CPU")
	p1 := g.Instantiate("p1", "CPU")

	devices := hn.Devices("")
	assert.True(t, devices.Has(p1), "every processor instance must also count as a device instance")

	processors := hn.Processors("")
	assert.True(t, processors.Has(p1))
}

func TestCreateProcessor_CustomSuperMustBeUnderDevice(t *testing.T) {
	g := kb.NewGraph()
	hn := hardware.New(g)

	hn.CreateDevice("EmbeddedBoard", "EMBEDDED-BOARD")
	result := hn.CreateProcessor("ARMCore", "ARM-CORE", "EmbeddedBoard")
	require.False(t, result.Empty(), "a device subclass is a legal processor super")
	assert.True(t, g.SubclassesOf(kb.NewUIDSet(hn.Vocab.Device), "").Has("ARMCore"))
}

func TestHardwareInterfaceIsDistinctFromSoftwareInterface(t *testing.T) {
	g := kb.NewGraph()
	hn := hardware.New(g)
	hn.CreateHWInterface("PCIeLane", "PCIE")

	hwInterfaces := g.SubclassesOf(kb.NewUIDSet(hn.Vocab.Interface), "")
	assert.True(t, hwInterfaces.Has("PCIeLane"))
	assert.False(t, hwInterfaces.Has(hn.Network.Vocab.Interface), "the hardware interface root is a subclass of, not equal to, the generic component interface root")
}
