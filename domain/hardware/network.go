// Package hardware is a thin specialisation of the component network
// (spec §4.4): Device, Processor (Processor <= Device) and a dedicated
// hardware Interface root so domain filtering by is-a distinguishes
// hardware interfaces from software ones. No further behaviour.
//
// Grounded on original_source/include/HardwareComputationalNetwork.hpp.
package hardware

import (
	"hyperkb/domain/component"
	"hyperkb/domain/kb"
)

// Vocabulary holds the root concept UIDs this layer installs, reusing
// the component layer's relation vocabulary unchanged.
type Vocabulary struct {
	Device    kb.UID
	Processor kb.UID
	Interface kb.UID
}

var DefaultVocabulary = Vocabulary{
	Device:    "hardware.Device",
	Processor: "hardware.Processor",
	Interface: "hardware.Interface",
}

// Network binds the hardware vocabulary to a component.Network sharing
// the same underlying graph.
type Network struct {
	*component.Network
	Vocab Vocabulary
}

// New binds a hardware Network to g, ensuring both the component layer
// and the hardware vocabulary exist.
func New(g *kb.Graph) *Network {
	n := &Network{Network: component.New(g), Vocab: DefaultVocabulary}
	n.Ensure()
	return n
}

func (n *Network) Ensure() {
	v := n.Vocab
	g := n.G
	g.CreateConcept(v.Device, "DEVICE", n.Network.Vocab.Component)
	g.CreateConcept(v.Processor, "PROCESSOR", v.Device)
	g.CreateConcept(v.Interface, "HW-INTERFACE", n.Network.Vocab.Interface)
}

// CreateDevice registers uid as a device class.
func (n *Network) CreateDevice(uid kb.UID, label string, supers ...kb.UID) kb.UIDSet {
	if len(supers) == 0 {
		supers = []kb.UID{n.Vocab.Device}
	}
	return n.CreateComponent(uid, label, supers...)
}

// CreateProcessor registers uid as a processor class (a kind of device).
func (n *Network) CreateProcessor(uid kb.UID, label string, supers ...kb.UID) kb.UIDSet {
	if len(supers) == 0 {
		supers = []kb.UID{n.Vocab.Processor}
	}
	return n.CreateComponent(uid, label, supers...)
}

// CreateHWInterface registers uid as a hardware interface class.
func (n *Network) CreateHWInterface(uid kb.UID, label string, supers ...kb.UID) kb.UIDSet {
	if len(supers) == 0 {
		supers = []kb.UID{n.Vocab.Interface}
	}
	return n.CreateInterface(uid, label, supers...)
}

// Processors returns every processor instance, optionally filtered by
// label.
func (n *Network) Processors(label string) kb.UIDSet {
	return n.G.InstancesOf(n.G.SubclassesOf(kb.NewUIDSet(n.Vocab.Processor), ""), label)
}

// Devices returns every device instance, optionally filtered by label.
func (n *Network) Devices(label string) kb.UIDSet {
	return n.G.InstancesOf(n.G.SubclassesOf(kb.NewUIDSet(n.Vocab.Device), ""), label)
}
