// Package identity computes stable content-addressed identifiers for signal
// documents.
//
// An identifier is a pure function of the document's canonical text: two
// documents that differ only in key/array order or in sub-precision float
// jitter produce the identical ID.
package identity

import (
	"github.com/sigcore/deviceprint/canon"
	"github.com/sigcore/deviceprint/cidutil"
)

// GenerateID serializes doc canonically and returns the 64-character
// lowercase hex SHA-256 of the canonical text. A nil cfg means defaults.
//
// The only failure mode is the digest primitive itself, surfaced as a
// canon.Error of kind Digest; serialization never fails.
func GenerateID(doc any, cfg *canon.Config) (string, error) {
	id, _, err := generate(doc, cfg)
	return id, err
}

// DebugInfo carries the full serialization outcome behind an identifier.
type DebugInfo struct {
	Serialization canon.Result
}

// GenerateIDWithDebug returns the same identifier as GenerateID plus the
// serialization result that produced it.
func GenerateIDWithDebug(doc any, cfg *canon.Config) (string, *DebugInfo, error) {
	id, res, err := generate(doc, cfg)
	if err != nil {
		return "", nil, err
	}
	return id, &DebugInfo{Serialization: res}, nil
}

// GenerateCID returns the CIDv1 (raw + sha2-256) form of the identifier,
// for interop with content-addressed storage.
func GenerateCID(doc any, cfg *canon.Config) (string, error) {
	res := serialize(doc, cfg)
	return cidutil.CIDv1RawSHA256([]byte(res.SerializedText)), nil
}

func generate(doc any, cfg *canon.Config) (string, canon.Result, error) {
	res := serialize(doc, cfg)
	id, err := cidutil.HexSHA256([]byte(res.SerializedText))
	if err != nil {
		return "", canon.Result{}, canon.WrapError(canon.KindDigest, "DP-DIGEST-001", "digest primitive failed", err)
	}
	return id, res, nil
}

func serialize(doc any, cfg *canon.Config) canon.Result {
	if cfg == nil {
		c := canon.DefaultConfig()
		cfg = &c
	}
	return canon.Serialize(doc, *cfg)
}
