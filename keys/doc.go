// Package keys provides generation, parsing and encoding of nostr identity
// keys: secp256k1 secret scalars and their BIP-340 x-only public keys.
//
// Keys round trip through two text encodings, 64 character lowercase hex and
// checksummed bech32 (nsec for secret keys, npub for public keys). Parse
// failures are reported as distinct kinds so callers can tell a mistyped
// character from a wrong length from an out of range scalar.
//
// All types are immutable values and safe for concurrent use.
package keys
