package kb

// Direction selects which endpoint of a fact a traversal follows.
// Grounded on original_source/include/SoftwareNetwork.hpp's
// TraversalDirection.
type Direction int

const (
	// FORWARD returns targets of facts whose source lies in the query set.
	FORWARD Direction = iota
	// INVERSE returns sources of facts whose target lies in the query set.
	INVERSE
	// BOTH returns the union of FORWARD and INVERSE.
	BOTH
)
