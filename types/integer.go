package types

import "strconv"

// Integer is a signed 64-bit integer value.
type Integer struct {
	Value int64
}

func (i *Integer) Kind() Kind     { return INTEGER }
func (i *Integer) String() string { return strconv.FormatInt(i.Value, 10) }

func (i *Integer) HashKey() HashKey {
	return HashKey{Kind: i.Kind(), Value: uint64(i.Value)}
}
