package types

// Null is the single inhabitant of the Null kind.
type Null struct{}

func (n *Null) Kind() Kind     { return NULL }
func (n *Null) String() string { return "null" }
