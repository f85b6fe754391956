package keys

import (
	"crypto/ed25519"
	"encoding/base64"
	"fmt"
)

// SignerKeyFromPublicKey encodes an Ed25519 public key into the signer-key
// string embedded alongside detached report signatures: "ed25519:" +
// base64(pubkey).
func SignerKeyFromPublicKey(pub ed25519.PublicKey) (string, error) {
	if l := len(pub); l != ed25519.PublicKeySize {
		return "", fmt.Errorf("ed25519 public key must be %d bytes, got %d", ed25519.PublicKeySize, l)
	}
	return "ed25519:" + base64.StdEncoding.EncodeToString(pub), nil
}

// SignerKeyFromSeed returns the signer-key string for an Ed25519 seed.
func SignerKeyFromSeed(seed []byte) (string, error) {
	if l := len(seed); l != ed25519.SeedSize {
		return "", fmt.Errorf("ed25519 seed must be %d bytes, got %d", ed25519.SeedSize, l)
	}
	priv := ed25519.NewKeyFromSeed(seed)
	return SignerKeyFromPublicKey(priv.Public().(ed25519.PublicKey))
}
