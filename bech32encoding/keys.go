package bech32encoding

import (
	btcec "github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/AdamuAbba/nostr/chk"
	"github.com/AdamuAbba/nostr/errorf"
	"github.com/AdamuAbba/nostr/hex"
)

const (
	// MinKeyStringLen is 56 because Bech32 needs 52 characters plus 4 for the HRP,
	// any string shorter than this cannot be a nostr key.
	MinKeyStringLen = 56
	HexKeyLen       = 64
	Bech32HRPLen    = 4
)

var (
	SecHRP = "nsec"
	PubHRP = "npub"
)

// ConvertForBech32 performs the bit expansion required for encoding into Bech32.
func ConvertForBech32(b8 []byte) (b5 []byte, err error) {
	return bech32.ConvertBits(b8, 8, 5, true)
}

// ConvertFromBech32 collapses together the bit expanded 5 bit numbers encoded
// in bech32. No padding, so a key decodes to exactly 32 bytes.
func ConvertFromBech32(b5 []byte) (b8 []byte, err error) {
	return bech32.ConvertBits(b5, 5, 8, false)
}

// SecretKeyToNsec encodes an secp256k1 secret key as a Bech32 string (nsec).
func SecretKeyToNsec(sk *secp256k1.PrivateKey) (encoded string, err error) {
	var b5 []byte
	if b5, err = ConvertForBech32(sk.Serialize()); chk.E(err) {
		return
	}
	return bech32.Encode(SecHRP, b5)
}

// PublicKeyToNpub encodes a public key as a bech32 string (npub).
func PublicKeyToNpub(pk *secp256k1.PublicKey) (encoded string, err error) {
	var bits5 []byte
	pubKeyBytes := schnorr.SerializePubKey(pk)
	if bits5, err = ConvertForBech32(pubKeyBytes); chk.E(err) {
		return
	}
	return bech32.Encode(PubHRP, bits5)
}

// decodeKey decodes a bech32 key string, requires the expected human readable
// part, and returns the raw 32 byte key. Decode errors pass through untouched
// so callers can distinguish a bad checksum from a malformed string.
func decodeKey(encoded, wantHRP string) (b8 []byte, err error) {
	var b5 []byte
	var hrp string
	if hrp, b5, err = bech32.Decode(encoded); chk.D(err) {
		return
	}
	if hrp != wantHRP {
		err = errorf.E("wrong human readable part, got '%s' want '%s'",
			hrp, wantHRP)
		return
	}
	if b8, err = ConvertFromBech32(b5); chk.D(err) {
		return
	}
	if len(b8) != secp256k1.PrivKeyBytesLen {
		err = errorf.E("key is %d bytes, must be %d", len(b8),
			secp256k1.PrivKeyBytesLen)
		return
	}
	return
}

// NsecToBytes decodes a nostr secret key (nsec) and returns the raw 32 byte
// secret scalar without any range validation.
func NsecToBytes(encoded string) (b []byte, err error) {
	return decodeKey(encoded, SecHRP)
}

// NpubToBytes decodes a nostr public key (npub) and returns the raw 32 byte
// x-only public key without checking it lies on the curve.
func NpubToBytes(encoded string) (b []byte, err error) {
	return decodeKey(encoded, PubHRP)
}

// NsecToSecretKey decodes a nostr secret key (nsec) and returns the secp256k1
// secret key.
func NsecToSecretKey(encoded string) (sk *secp256k1.PrivateKey, err error) {
	var b8 []byte
	if b8, err = NsecToBytes(encoded); chk.D(err) {
		return
	}
	sk = secp256k1.PrivKeyFromBytes(b8)
	return
}

// NpubToPublicKey decodes a nostr public key (npub) and returns an secp256k1
// public key.
func NpubToPublicKey(encoded string) (pk *secp256k1.PublicKey, err error) {
	var b8 []byte
	if b8, err = NpubToBytes(encoded); chk.D(err) {
		return
	}
	return schnorr.ParsePubKey(b8)
}

// HexToPublicKey decodes a string that should be a 64 character long hex
// encoded public key into a btcec.PublicKey that can be used to verify a
// signature or encode to Bech32.
func HexToPublicKey(pk string) (p *btcec.PublicKey, err error) {
	if len(pk) != HexKeyLen {
		err = errorf.E("public key is %d chars, must be %d", len(pk),
			HexKeyLen)
		return
	}
	var pb []byte
	if pb, err = hex.Dec(pk); chk.D(err) {
		return
	}
	if p, err = schnorr.ParsePubKey(pb); chk.D(err) {
		return
	}
	return
}

// HexToSecretKey decodes a string that should be a 64 character long hex
// encoded secret key into a btcec.SecretKey that can be used to sign or
// encode to Bech32.
func HexToSecretKey(sk string) (s *btcec.PrivateKey, err error) {
	if len(sk) != HexKeyLen {
		err = errorf.E("secret key is %d chars, must be %d", len(sk),
			HexKeyLen)
		return
	}
	var sb []byte
	if sb, err = hex.Dec(sk); chk.D(err) {
		return
	}
	s = secp256k1.PrivKeyFromBytes(sb)
	return
}

// HexToNsec converts a hex encoded secret key to a bech32 encoded nsec.
func HexToNsec(sk string) (nsec string, err error) {
	var s *btcec.PrivateKey
	if s, err = HexToSecretKey(sk); chk.E(err) {
		return
	}
	if nsec, err = SecretKeyToNsec(s); chk.E(err) {
		return
	}
	return
}

// HexToNpub converts a hex encoded public key to a bech32 encoded npub.
func HexToNpub(pk string) (npub string, err error) {
	var p *btcec.PublicKey
	if p, err = HexToPublicKey(pk); chk.E(err) {
		return
	}
	if npub, err = PublicKeyToNpub(p); chk.E(err) {
		return
	}
	return
}

// BinToNsec converts a binary secret key to a bech32 encoded nsec.
func BinToNsec(sk []byte) (nsec string, err error) {
	s := secp256k1.PrivKeyFromBytes(sk)
	if nsec, err = SecretKeyToNsec(s); chk.E(err) {
		return
	}
	return
}

// BinToNpub converts a binary public key to a bech32 encoded npub.
func BinToNpub(pk []byte) (npub string, err error) {
	var bits5 []byte
	if bits5, err = ConvertForBech32(pk); chk.D(err) {
		return
	}
	return bech32.Encode(PubHRP, bits5)
}

// SecretKeyToHex converts a secret key to the hex encoding.
func SecretKeyToHex(sk *btcec.PrivateKey) (hexSec string) {
	return hex.Enc(sk.Serialize())
}

// PublicKeyToHex converts a public key to the x-only hex encoding.
func PublicKeyToHex(pk *btcec.PublicKey) (hexPub string) {
	return hex.Enc(schnorr.SerializePubKey(pk))
}

// NsecToHex converts a bech32 encoded nsec to the hex encoding.
func NsecToHex(nsec string) (hexSec string, err error) {
	var sk *secp256k1.PrivateKey
	if sk, err = NsecToSecretKey(nsec); chk.E(err) {
		return
	}
	hexSec = SecretKeyToHex(sk)
	return
}

// NpubToHex converts a bech32 encoded npub to the hex encoding.
func NpubToHex(npub string) (hexPub string, err error) {
	var pk *secp256k1.PublicKey
	if pk, err = NpubToPublicKey(npub); chk.E(err) {
		return
	}
	hexPub = PublicKeyToHex(pk)
	return
}
