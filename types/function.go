package types

import (
	"strings"

	"lumen/parser"
)

// Function is a first-class closure: parameter names, a body block, and
// the environment it was defined in, captured by shared reference so
// that later mutations of that environment remain visible.
type Function struct {
	Parameters []*parser.Identifier
	Body       *parser.BlockStatement
	Env        *Environment
}

func (f *Function) Kind() Kind { return FUNCTION }
func (f *Function) String() string {
	params := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = p.String()
	}
	var out strings.Builder
	out.WriteString("fn(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") {\n")
	out.WriteString(f.Body.String())
	out.WriteString("\n}")
	return out.String()
}
