package kb

// entity is the label carried by any addressable UID in the knowledge
// base — a concept, a relation type, or an instance. Concept-ness and
// instance-ness are purely relational (is-a vs. instance-of facts), not
// a property of the entity itself, per spec §9's "identifier-indexed
// facts, not owning references".
type entity struct {
	Label string
}

// Concept is a read-only view returned to callers; the graph itself
// keeps the mutable entity/is-a bookkeeping private.
type Concept struct {
	UID   UID
	Label string
}
