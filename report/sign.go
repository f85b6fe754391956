package report

import (
	"crypto/ed25519"

	"github.com/cloudflare/circl/sign/dilithium/mode3"

	"github.com/sigcore/deviceprint/keys"
)

// Signature is a detached signature over a report's canonical bytes.
//
// The content hash itself carries no tamper resistance; deployments that
// need an integrity assertion attach one of these alongside the report.
type Signature struct {
	SignerKey    string `json:"signerKey"`
	SignatureAlg string `json:"signatureAlg"`
	HashAlg      string `json:"hashAlg"`
	Value        string `json:"value"`
}

// Sign produces a detached ed25519 signature over the report's canonical
// bytes.
func Sign(c *Composite, priv ed25519.PrivateKey) (*Signature, error) {
	signer, err := keys.SignerKeyFromPublicKey(priv.Public().(ed25519.PublicKey))
	if err != nil {
		return nil, err
	}
	return &Signature{
		SignerKey:    signer,
		SignatureAlg: "ed25519",
		HashAlg:      "sha256",
		Value:        keys.SignEd25519SHA256(c.CanonicalBytes(), priv),
	}, nil
}

// Verify reports whether sig is a valid ed25519 signature over the report's
// canonical bytes.
func Verify(c *Composite, sig *Signature, pub ed25519.PublicKey) bool {
	if sig == nil || sig.SignatureAlg != "ed25519" || sig.HashAlg != "sha256" {
		return false
	}
	return keys.VerifyEd25519SHA256(c.CanonicalBytes(), sig.Value, pub)
}

// SignPQ produces a detached dilithium3 signature over the report's
// canonical bytes using the named hash algorithm.
func SignPQ(c *Composite, hashAlg string, priv *mode3.PrivateKey) (*Signature, error) {
	value, err := keys.SignDilithium3(c.CanonicalBytes(), hashAlg, priv)
	if err != nil {
		return nil, err
	}
	return &Signature{
		SignatureAlg: "dilithium3",
		HashAlg:      hashAlg,
		Value:        value,
	}, nil
}

// VerifyPQ reports whether sig is a valid dilithium3 signature over the
// report's canonical bytes.
func VerifyPQ(c *Composite, sig *Signature, pub *mode3.PublicKey) bool {
	if sig == nil || sig.SignatureAlg != "dilithium3" {
		return false
	}
	return keys.VerifyDilithium3(c.CanonicalBytes(), sig.HashAlg, sig.Value, pub)
}
