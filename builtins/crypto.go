package builtins

import (
	"encoding/hex"

	"golang.org/x/crypto/ripemd160"

	"lumen/types"
)

// builtinDigest computes a content fingerprint for a string, letting
// scripts content-address values (e.g. as stable map keys derived from
// long text) without pulling string hashing into the core operator set.
func builtinDigest(args []types.Value) types.Value {
	if len(args) != 1 {
		return wrongArgCount(len(args), 1)
	}
	str, ok := args[0].(*types.String)
	if !ok {
		return newError("argument to `digest` must be STRING, got %s", args[0].Kind())
	}

	h := ripemd160.New()
	_, _ = h.Write([]byte(str.Value))
	return &types.String{Value: hex.EncodeToString(h.Sum(nil))}
}
