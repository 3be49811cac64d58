// Package bech32encoding converts nostr keys between their raw secp256k1
// forms, hex strings, and the bech32 nsec/npub encodings.
//
// The bech32 forms carry a human readable prefix identifying the key type and
// a checksum that catches transcription errors, which is why they are the
// preferred form for showing keys to users.
package bech32encoding
