package keys

import (
	"github.com/pkg/errors"
)

// The distinct failure kinds of key parsing and generation. Callers match
// them with errors.Is; parse failures are never collapsed into one kind
// because a user mistyping one bech32 character needs a different message
// than a user pasting the wrong kind of string altogether.
var (
	// ErrInvalidFormat means the input has the wrong length, charset or
	// prefix for any accepted key encoding.
	ErrInvalidFormat = errors.New("invalid key format")

	// ErrInvalidChecksum means the input parsed as bech32 but its checksum
	// does not match, ie the string was corrupted in transcription.
	ErrInvalidChecksum = errors.New("invalid bech32 checksum")

	// ErrInvalidScalar means the decoded secret key is zero or not below the
	// secp256k1 group order.
	ErrInvalidScalar = errors.New("secret key scalar out of range")

	// ErrPublicKeyOnly means a public key encoding was given where a secret
	// key is required to construct a keypair.
	ErrPublicKeyOnly = errors.New("input is a public key, cannot derive a secret key from it")

	// ErrEntropyUnavailable means the secure random source failed. There is
	// no point retrying without external intervention.
	ErrEntropyUnavailable = errors.New("entropy source unavailable")
)
