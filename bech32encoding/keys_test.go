package bech32encoding

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/AdamuAbba/nostr/chk"
)

func TestConvertBits(t *testing.T) {
	var err error
	var b5, b8, b58 []byte
	b8 = make([]byte, 32)
	for i := 0; i < 1000; i++ {
		if _, err = rand.Read(b8); chk.E(err) {
			t.Fatal(err)
		}
		if b5, err = ConvertForBech32(b8); chk.E(err) {
			t.Fatal(err)
		}
		if b58, err = ConvertFromBech32(b5); chk.E(err) {
			t.Fatal(err)
		}
		if !bytes.Equal(b8, b58) {
			t.Fatalf("did not recover bytes: %x != %x", b8, b58)
		}
	}
}

func TestSecretKeyToNsec(t *testing.T) {
	var err error
	var sec, reSec *secp256k1.PrivateKey
	var nsec, reNsec string
	var secBytes, reSecBytes []byte
	for i := 0; i < 1000; i++ {
		if sec, err = secp256k1.GeneratePrivateKey(); chk.E(err) {
			t.Fatalf("error generating key: '%s'", err)
		}
		secBytes = sec.Serialize()
		if nsec, err = SecretKeyToNsec(sec); chk.E(err) {
			t.Fatalf("error converting key to nsec: '%s'", err)
		}
		if !strings.HasPrefix(nsec, SecHRP+"1") {
			t.Fatalf("nsec has wrong prefix: %s", nsec)
		}
		if reSec, err = NsecToSecretKey(nsec); chk.E(err) {
			t.Fatalf("error nsec back to secret key: '%s'", err)
		}
		reSecBytes = reSec.Serialize()
		if !bytes.Equal(secBytes, reSecBytes) {
			t.Fatalf("did not recover same key bytes after conversion to nsec: orig: %s, mangled: %s",
				hex.EncodeToString(secBytes), hex.EncodeToString(reSecBytes))
		}
		if reNsec, err = SecretKeyToNsec(reSec); chk.E(err) {
			t.Fatalf("error recovered secret key from converted to nsec: %s",
				err)
		}
		if reNsec != nsec {
			t.Fatalf("recovered secret key did not regenerate nsec of original: %s mangled: %s",
				reNsec, nsec)
		}
	}
}

func TestPublicKeyToNpub(t *testing.T) {
	var err error
	var sec *secp256k1.PrivateKey
	var pub, rePub *secp256k1.PublicKey
	var npub, reNpub string
	var pubBytes, rePubBytes []byte
	for i := 0; i < 1000; i++ {
		if sec, err = secp256k1.GeneratePrivateKey(); chk.E(err) {
			t.Fatalf("error generating key: '%s'", err)
		}
		pub = sec.PubKey()
		pubBytes = schnorr.SerializePubKey(pub)
		if npub, err = PublicKeyToNpub(pub); chk.E(err) {
			t.Fatalf("error converting key to npub: '%s'", err)
		}
		if !strings.HasPrefix(npub, PubHRP+"1") {
			t.Fatalf("npub has wrong prefix: %s", npub)
		}
		if rePub, err = NpubToPublicKey(npub); chk.E(err) {
			t.Fatalf("error npub back to public key: '%s'", err)
		}
		rePubBytes = schnorr.SerializePubKey(rePub)
		if !bytes.Equal(pubBytes, rePubBytes) {
			t.Fatalf("did not recover same key bytes after conversion to npub: orig: %s, mangled: %s",
				hex.EncodeToString(pubBytes), hex.EncodeToString(rePubBytes))
		}
		if reNpub, err = PublicKeyToNpub(rePub); chk.E(err) {
			t.Fatalf("error recovered public key from converted npub: %s", err)
		}
		if reNpub != npub {
			t.Fatalf("recovered public key did not regenerate npub of original: %s mangled: %s",
				reNpub, npub)
		}
	}
}

func TestHexBridges(t *testing.T) {
	var err error
	var sec *secp256k1.PrivateKey
	if sec, err = secp256k1.GeneratePrivateKey(); chk.E(err) {
		t.Fatal(err)
	}
	skHex := SecretKeyToHex(sec)
	pkHex := PublicKeyToHex(sec.PubKey())
	var nsec, npub string
	if nsec, err = HexToNsec(skHex); chk.E(err) {
		t.Fatal(err)
	}
	if npub, err = HexToNpub(pkHex); chk.E(err) {
		t.Fatal(err)
	}
	var reSkHex, rePkHex string
	if reSkHex, err = NsecToHex(nsec); chk.E(err) {
		t.Fatal(err)
	}
	if rePkHex, err = NpubToHex(npub); chk.E(err) {
		t.Fatal(err)
	}
	if reSkHex != skHex {
		t.Fatalf("secret hex does not round trip: %s != %s", reSkHex, skHex)
	}
	if rePkHex != pkHex {
		t.Fatalf("public hex does not round trip: %s != %s", rePkHex, pkHex)
	}
	var binNsec string
	if binNsec, err = BinToNsec(sec.Serialize()); chk.E(err) {
		t.Fatal(err)
	}
	if binNsec != nsec {
		t.Fatalf("BinToNsec disagrees with HexToNsec: %s != %s", binNsec, nsec)
	}
	var binNpub string
	if binNpub, err = BinToNpub(schnorr.SerializePubKey(sec.PubKey())); chk.E(err) {
		t.Fatal(err)
	}
	if binNpub != npub {
		t.Fatalf("BinToNpub disagrees with HexToNpub: %s != %s", binNpub, npub)
	}
}

func TestDecodeWrongHRP(t *testing.T) {
	var err error
	var sec *secp256k1.PrivateKey
	if sec, err = secp256k1.GeneratePrivateKey(); chk.E(err) {
		t.Fatal(err)
	}
	var nsec, npub string
	if nsec, err = SecretKeyToNsec(sec); chk.E(err) {
		t.Fatal(err)
	}
	if npub, err = PublicKeyToNpub(sec.PubKey()); chk.E(err) {
		t.Fatal(err)
	}
	if _, err = NsecToSecretKey(npub); err == nil {
		t.Fatal("npub accepted as nsec")
	}
	if _, err = NpubToPublicKey(nsec); err == nil {
		t.Fatal("nsec accepted as npub")
	}
}
