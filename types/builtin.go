package types

// Builtin is an opaque handle naming a built-in function, resolved
// against the builtin registry at call time rather than carrying the
// function pointer itself — this keeps the value model free of a
// dependency on the registry package.
type Builtin struct {
	Name string
}

func (b *Builtin) Kind() Kind     { return BUILTIN }
func (b *Builtin) String() string { return "builtin function: " + b.Name }
