package hex

import (
	"bytes"
	"testing"

	"lukechampine.com/frand"
)

func TestAppendRoundTrip(t *testing.T) {
	rng := frand.NewCustom(make([]byte, 32), 1024, 12)
	for i := 0; i < 1000; i++ {
		src := make([]byte, 32)
		rng.Read(src)
		enc := EncAppend(nil, src)
		if string(enc) != Enc(src) {
			t.Fatalf("EncAppend disagrees with Enc: %s != %s", enc, Enc(src))
		}
		dec, err := DecAppend(nil, enc)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(dec, src) {
			t.Fatalf("did not recover bytes: %x != %x", dec, src)
		}
	}
}

func TestAppendExtends(t *testing.T) {
	prefix := []byte("key=")
	enc := EncAppend(prefix, []byte{0xde, 0xad})
	if string(enc) != "key=dead" {
		t.Fatalf("unexpected append result: %s", enc)
	}
}
