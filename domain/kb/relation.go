package kb

// RelationType is a labelled directed relation schema with a domain and
// codomain concept set. Relation types form their own is-a lattice
// (subrelations); a fact of a subrelation is also a fact of every
// ancestor relation (spec §3, §9).
type RelationType struct {
	UID      UID
	Label    string
	Domain   UIDSet
	Codomain UIDSet
}
