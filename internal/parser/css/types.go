package css

// Declaration is one property: value pair from a declaration block
type Declaration struct {
	Property string
	Value    string
	// Important is set for declarations ending in !important
	Important bool
}
