package keys

import (
	"strings"

	"github.com/AdamuAbba/nostr/chk"
	"github.com/AdamuAbba/nostr/hex"
)

// GenerateSecretKeyHex generates a new secret key and returns its hex form.
func GenerateSecretKeyHex() (sks string, err error) {
	var k *Keys
	if k, err = Generate(); chk.E(err) {
		return
	}
	return k.Secret().Hex(), nil
}

// GetPublicKeyHex derives the hex public key from a hex or nsec secret key.
func GetPublicKeyHex(sk string) (pk string, err error) {
	var sec *SecretKey
	if sec, err = ParseSecretKey(sk); chk.E(err) {
		return
	}
	return sec.Public().Hex(), nil
}

// SecretBytesToPubKeyHex derives the hex public key from raw secret key bytes.
func SecretBytesToPubKeyHex(skb []byte) (pk string, err error) {
	var sec *SecretKey
	if sec, err = secretFromBytes(skb); chk.E(err) {
		return
	}
	return sec.Public().Hex(), nil
}

// IsValid32ByteHex checks that a string is lowercase hex encoding exactly 32
// bytes, the canonical text form for keys on the wire.
func IsValid32ByteHex(pk string) bool {
	if strings.ToLower(pk) != pk {
		return false
	}
	dec, _ := hex.Dec(pk)
	return len(dec) == 32
}

// IsValidPublicKey checks that a hex string encodes a valid x-only public key.
func IsValidPublicKey(pk string) bool {
	_, err := ParsePublicKey(pk)
	return err == nil
}
