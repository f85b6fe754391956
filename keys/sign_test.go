package keys

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"strings"
	"testing"
)

func testKey(t *testing.T) ed25519.PrivateKey {
	t.Helper()
	return ed25519.NewKeyFromSeed(bytes.Repeat([]byte{0x17}, ed25519.SeedSize))
}

func TestSignVerifyEd25519SHA256(t *testing.T) {
	priv := testKey(t)
	pub := priv.Public().(ed25519.PublicKey)
	msg := []byte(`{"a":"1"}`)

	sig := SignEd25519SHA256(msg, priv)
	if sig == "" {
		t.Fatalf("empty signature")
	}
	if !VerifyEd25519SHA256(msg, sig, pub) {
		t.Fatalf("signature did not verify")
	}
	if VerifyEd25519SHA256([]byte(`{"a":"2"}`), sig, pub) {
		t.Fatalf("signature verified against a different message")
	}
	if VerifyEd25519SHA256(msg, "not base64!!", pub) {
		t.Fatalf("garbage signature verified")
	}
	if VerifyEd25519SHA256(msg, "QUJD", pub) {
		t.Fatalf("wrong-length signature verified")
	}
}

func TestSignVerifyDilithium3(t *testing.T) {
	pub, priv, err := GenerateDilithium3Keypair(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateDilithium3Keypair: %v", err)
	}
	msg := []byte("composite report bytes")

	for _, hashAlg := range []string{"sha256", "sha512", "sha3-256"} {
		sig, err := SignDilithium3(msg, hashAlg, priv)
		if err != nil {
			t.Fatalf("SignDilithium3(%s): %v", hashAlg, err)
		}
		if !VerifyDilithium3(msg, hashAlg, sig, pub) {
			t.Fatalf("dilithium3 signature with %s did not verify", hashAlg)
		}
		if VerifyDilithium3([]byte("tampered"), hashAlg, sig, pub) {
			t.Fatalf("dilithium3 signature verified against tampered message")
		}
	}

	if _, err := SignDilithium3(msg, "md5", priv); err == nil {
		t.Fatalf("expected error for unsupported hash algorithm")
	}
	if _, err := SignDilithium3(msg, "sha256", nil); err == nil {
		t.Fatalf("expected error for missing private key")
	}
	if VerifyDilithium3(msg, "sha256", "QUJD", pub) {
		t.Fatalf("wrong-length dilithium3 signature verified")
	}
}

func TestDigestFor(t *testing.T) {
	msg := []byte("abc")
	sizes := map[string]int{"sha256": 32, "sha512": 64, "sha3-256": 32}
	for alg, n := range sizes {
		d, err := DigestFor(alg, msg)
		if err != nil {
			t.Fatalf("DigestFor(%s): %v", alg, err)
		}
		if len(d) != n {
			t.Fatalf("DigestFor(%s) length = %d, want %d", alg, len(d), n)
		}
	}
	if _, err := DigestFor("crc32", msg); err == nil {
		t.Fatalf("expected error for unsupported algorithm")
	}
}

func TestSignerKeyFromSeed(t *testing.T) {
	seed := bytes.Repeat([]byte{0x17}, ed25519.SeedSize)
	got, err := SignerKeyFromSeed(seed)
	if err != nil {
		t.Fatalf("SignerKeyFromSeed: %v", err)
	}
	if !strings.HasPrefix(got, "ed25519:") {
		t.Fatalf("signer key missing scheme prefix: %q", got)
	}

	priv := testKey(t)
	fromPub, err := SignerKeyFromPublicKey(priv.Public().(ed25519.PublicKey))
	if err != nil {
		t.Fatalf("SignerKeyFromPublicKey: %v", err)
	}
	if got != fromPub {
		t.Fatalf("seed-derived and public-key-derived signer keys differ:\n%s\n%s", got, fromPub)
	}

	if _, err := SignerKeyFromSeed([]byte("short")); err == nil {
		t.Fatalf("expected error for bad seed length")
	}
}
