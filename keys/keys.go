package keys

import (
	"crypto/rand"
	"io"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"

	"github.com/AdamuAbba/nostr/bech32encoding"
	"github.com/AdamuAbba/nostr/chk"
	"github.com/AdamuAbba/nostr/hex"
)

// SecretKeyLen is the length of a raw secret key in bytes.
const SecretKeyLen = secp256k1.PrivKeyBytesLen

// PublicKeyLen is the length of a raw x-only public key in bytes.
const PublicKeyLen = schnorr.PubKeyBytesLen

// SecretKey is a validated secp256k1 secret scalar. It can only be obtained
// from Generate or one of the parse functions, so a SecretKey in hand is
// always non-zero and below the group order.
type SecretKey struct {
	k *secp256k1.PrivateKey
}

// PublicKey is a BIP-340 x-only public key. It is either derived from a
// SecretKey or parsed from an encoding that was verified to be a curve point.
type PublicKey struct {
	k *secp256k1.PublicKey
}

// Keys is a secret key together with its derived public key. The public half
// is always the derivation of the secret half; there is no way to pair
// unrelated keys.
type Keys struct {
	sec *SecretKey
	pub *PublicKey
}

// Generate makes a new Keys from the operating system entropy source.
func Generate() (k *Keys, err error) { return GenerateFromEntropy(rand.Reader) }

// GenerateFromEntropy makes a new Keys reading key material from the provided
// source. Tests use this with a deterministic source; everything else should
// call Generate.
func GenerateFromEntropy(r io.Reader) (k *Keys, err error) {
	var sk *secp256k1.PrivateKey
	if sk, err = secp256k1.GeneratePrivateKeyFromRand(r); chk.E(err) {
		err = errors.Wrap(ErrEntropyUnavailable, err.Error())
		return
	}
	return New(&SecretKey{k: sk}), nil
}

// New pairs a secret key with its derived public key.
func New(sec *SecretKey) (k *Keys) {
	return &Keys{sec: sec, pub: sec.Public()}
}

// Secret returns the secret half of the pair.
func (k *Keys) Secret() (sec *SecretKey) { return k.sec }

// Public returns the public half of the pair.
func (k *Keys) Public() (pub *PublicKey) { return k.pub }

// Equal reports whether two pairs hold the same secret key.
func (k *Keys) Equal(other *Keys) bool { return k.sec.Equal(other.sec) }

// ParseKeys constructs a Keys from a secret key encoding, either 64 character
// hex or nsec bech32. An npub is recognized and rejected with
// ErrPublicKeyOnly since a keypair cannot be restored from a public key. A
// bare hex string is always treated as a secret key because nothing in the
// encoding says otherwise.
func ParseKeys(input string) (k *Keys, err error) {
	if strings.HasPrefix(input, bech32encoding.PubHRP+"1") {
		err = errors.Wrapf(ErrPublicKeyOnly, "parsing '%s'", input)
		return
	}
	var sec *SecretKey
	if sec, err = ParseSecretKey(input); err != nil {
		return
	}
	return New(sec), nil
}

// ParseSecretKey decodes a secret key from either 64 character hex or nsec
// bech32 form. Failures are distinguished: ErrInvalidFormat for wrong
// length, charset or prefix, ErrInvalidChecksum for a bech32 checksum
// mismatch, ErrInvalidScalar for a scalar outside [1, n-1].
func ParseSecretKey(input string) (sec *SecretKey, err error) {
	var b []byte
	if strings.HasPrefix(input, bech32encoding.SecHRP+"1") {
		if b, err = bech32encoding.NsecToBytes(input); err != nil {
			err = classify(err)
			return
		}
	} else if b, err = decodeKeyHex(input); err != nil {
		return
	}
	return secretFromBytes(b)
}

// ParsePublicKey decodes a public key from either 64 character hex or npub
// bech32 form, verifying that it is a valid x-only curve point.
func ParsePublicKey(input string) (pub *PublicKey, err error) {
	var b []byte
	if strings.HasPrefix(input, bech32encoding.PubHRP+"1") {
		if b, err = bech32encoding.NpubToBytes(input); err != nil {
			err = classify(err)
			return
		}
	} else if b, err = decodeKeyHex(input); err != nil {
		return
	}
	var pk *secp256k1.PublicKey
	if pk, err = schnorr.ParsePubKey(b); err != nil {
		err = errors.Wrap(ErrInvalidFormat, err.Error())
		return
	}
	return &PublicKey{k: pk}, nil
}

// decodeKeyHex decodes a string that must be exactly 64 hex digits into 32
// bytes. Anything else, including the overlong strings floating around in
// nostr documentation, is ErrInvalidFormat.
func decodeKeyHex(input string) (b []byte, err error) {
	if len(input) != bech32encoding.HexKeyLen {
		err = errors.Wrapf(ErrInvalidFormat, "key is %d chars, must be %d",
			len(input), bech32encoding.HexKeyLen)
		return
	}
	if b, err = hex.Dec(input); err != nil {
		err = errors.Wrap(ErrInvalidFormat, err.Error())
		return
	}
	return
}

// secretFromBytes range checks the raw scalar and wraps it. The check runs on
// the bytes as given, before any modular reduction could mask an out of range
// value.
func secretFromBytes(b []byte) (sec *SecretKey, err error) {
	var s secp256k1.ModNScalar
	overflow := s.SetByteSlice(b)
	if overflow || s.IsZero() {
		s.Zero()
		err = errors.Wrap(ErrInvalidScalar, "scalar must be in [1, n-1]")
		return
	}
	sec = &SecretKey{k: secp256k1.NewPrivateKey(&s)}
	s.Zero()
	return
}

// classify maps a bech32 decode failure onto the error taxonomy: a checksum
// mismatch is reported as such, everything else is a format problem.
func classify(err error) error {
	var chkErr bech32.ErrInvalidChecksum
	if errors.As(err, &chkErr) {
		return errors.Wrap(ErrInvalidChecksum, err.Error())
	}
	return errors.Wrap(ErrInvalidFormat, err.Error())
}

// Public derives the x-only public key. Derivation is deterministic so this
// can be called any number of times.
func (s *SecretKey) Public() (pub *PublicKey) {
	return &PublicKey{k: s.k.PubKey()}
}

// Serialize returns a copy of the raw 32 byte scalar.
func (s *SecretKey) Serialize() (b []byte) { return s.k.Serialize() }

// Hex returns the lowercase fixed width hex form of the secret key.
func (s *SecretKey) Hex() (h string) { return hex.Enc(s.k.Serialize()) }

// Nsec returns the bech32 nsec form of the secret key.
func (s *SecretKey) Nsec() (nsec string, err error) {
	return bech32encoding.SecretKeyToNsec(s.k)
}

// Equal reports whether two secret keys hold the same scalar.
func (s *SecretKey) Equal(other *SecretKey) bool {
	return s.k.Key.Equals(&other.k.Key)
}

// Zero wipes the scalar. The key must not be used afterwards.
func (s *SecretKey) Zero() { s.k.Zero() }

// Serialize returns a copy of the raw 32 byte x-only public key.
func (p *PublicKey) Serialize() (b []byte) { return schnorr.SerializePubKey(p.k) }

// Hex returns the lowercase fixed width hex form of the public key.
func (p *PublicKey) Hex() (h string) { return hex.Enc(schnorr.SerializePubKey(p.k)) }

// Npub returns the bech32 npub form of the public key.
func (p *PublicKey) Npub() (npub string, err error) {
	return bech32encoding.PublicKeyToNpub(p.k)
}

// Equal reports whether two public keys are the same point.
func (p *PublicKey) Equal(other *PublicKey) bool {
	return p.k.IsEqual(other.k)
}
