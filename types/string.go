package types

import "hash/fnv"

// String is an immutable byte sequence; equality is byte-wise.
type String struct {
	Value string
}

func (s *String) Kind() Kind     { return STRING }
func (s *String) String() string { return s.Value }

func (s *String) HashKey() HashKey {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s.Value))
	return HashKey{Kind: s.Kind(), Value: h.Sum64()}
}
