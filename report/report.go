// Package report assembles the composite fingerprint report: the signal
// document, the optional geolocation projection, the confidence assessments,
// and the content hash merged into one output document.
package report

import (
	"github.com/sigcore/deviceprint/canon"
	"github.com/sigcore/deviceprint/confidence"
	"github.com/sigcore/deviceprint/geo"
	"github.com/sigcore/deviceprint/identity"
	"github.com/sigcore/deviceprint/signal"
)

// AssessmentPair carries the system assessment and, when a combined score
// was supplied, the combined one.
type AssessmentPair struct {
	System   confidence.Assessment  `json:"system"`
	Combined *confidence.Assessment `json:"combined,omitempty"`
}

// Composite is the final report document. Hash is always a 64-hex-char
// string; Geolocation is null when no lookup result was available.
type Composite struct {
	SystemInfo           signal.Document `json:"systemInfo"`
	Geolocation          *geo.Projection `json:"geolocation"`
	ConfidenceAssessment AssessmentPair  `json:"confidenceAssessment"`
	Hash                 string          `json:"hash"`
}

// Assemble merges the externally supplied inputs into one report.
//
// When geoDoc is present the VPN heuristic runs first, comparing the
// lookup's timezone against the system's local timezone; its outcome is
// bound into the geolocation projection. combinedScore nil means no
// combined assessment is produced. A nil cfg means serializer defaults.
func Assemble(geoDoc *geo.Document, systemInfo signal.Document, combinedScore *float64, cfg *canon.Config) (*Composite, error) {
	hash, err := identity.GenerateID(systemInfo, cfg)
	if err != nil {
		return nil, err
	}

	var projection *geo.Projection
	var traits *geo.Traits
	if geoDoc != nil {
		vpn := geo.DetectVPN(geoDoc.Location.TimeZone, systemInfo.Timezone())
		projection = geoDoc.Project(vpn)
		traits = &geoDoc.Traits
	}

	assessments := AssessmentPair{System: confidence.System(systemInfo)}
	if combinedScore != nil {
		combined := confidence.Combined(*combinedScore, traits)
		assessments.Combined = &combined
	}

	return &Composite{
		SystemInfo:           systemInfo,
		Geolocation:          projection,
		ConfidenceAssessment: assessments,
		Hash:                 hash,
	}, nil
}

// CanonicalBytes returns the canonical text form of the report itself,
// suitable for signing or re-hashing.
func (c *Composite) CanonicalBytes() []byte {
	return []byte(canon.Serialize(c, canon.DefaultConfig()).SerializedText)
}
