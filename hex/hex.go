// Package hex bundles the standard library hex codec functions under shorter
// names, and adds append-style encode/decode using the faster templexxx/xhex
// implementation.
package hex

import (
	"encoding/hex"

	"github.com/templexxx/xhex"

	"github.com/AdamuAbba/nostr/chk"
)

var Enc = hex.EncodeToString
var EncBytes = hex.Encode
var Dec = hex.DecodeString
var DecBytes = hex.Decode

var DecLen = hex.DecodedLen
var EncLen = hex.EncodedLen

type InvalidByteError = hex.InvalidByteError

// EncAppend appends the hex encoding of src to dst and returns the extended
// slice.
func EncAppend(dst, src []byte) (b []byte) {
	l := len(dst)
	dst = append(dst, make([]byte, len(src)*2)...)
	xhex.Encode(dst[l:], src)
	return dst
}

// DecAppend appends the decoded bytes of the hex in src to dst and returns the
// extended slice.
func DecAppend(dst, src []byte) (b []byte, err error) {
	l := len(dst)
	b = dst
	b = append(b, make([]byte, len(src)/2)...)
	if err = xhex.Decode(b[l:], src); chk.E(err) {
		return
	}
	return
}
