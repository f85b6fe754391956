// Package confidence classifies signal documents into reliability bands with
// human-readable factors.
//
// Two assessments may exist per report: the system assessment derived from
// the signal document alone, and an optional combined assessment that also
// scans network traits from the geolocation lookup.
package confidence

import (
	"math"

	"github.com/sigcore/deviceprint/geo"
	"github.com/sigcore/deviceprint/signal"
)

// Level is one of five ordered reliability bands.
type Level string

const (
	LevelLow        Level = "low"
	LevelMediumLow  Level = "medium-low"
	LevelMedium     Level = "medium"
	LevelMediumHigh Level = "medium-high"
	LevelHigh       Level = "high"
)

// rank orders levels for monotonicity checks; higher is more reliable.
func (l Level) rank() int {
	switch l {
	case LevelHigh:
		return 4
	case LevelMediumHigh:
		return 3
	case LevelMedium:
		return 2
	case LevelMediumLow:
		return 1
	default:
		return 0
	}
}

// RanksAbove reports whether l is a strictly higher band than other.
func (l Level) RanksAbove(other Level) bool { return l.rank() > other.rank() }

// Assessment is the reliability classification of one signal set.
type Assessment struct {
	Score       float64  `json:"score"`
	Level       Level    `json:"level"`
	Rating      string   `json:"rating"`
	Reliability string   `json:"reliability"`
	Factors     []string `json:"factors"`
}

// LevelFor bands a score. Inputs are clamped to [0,1] first; NaN clamps
// to 0. Band lower bounds are inclusive.
func LevelFor(score float64) Level {
	score = clamp01(score)
	switch {
	case score >= 0.8:
		return LevelHigh
	case score >= 0.65:
		return LevelMediumHigh
	case score >= 0.5:
		return LevelMedium
	case score >= 0.35:
		return LevelMediumLow
	default:
		return LevelLow
	}
}

func ratingFor(l Level) string {
	switch l {
	case LevelHigh:
		return "excellent"
	case LevelMediumHigh:
		return "good"
	case LevelMedium:
		return "moderate"
	case LevelMediumLow:
		return "questionable"
	default:
		return "unreliable"
	}
}

func reliabilityFor(l Level) string {
	switch l {
	case LevelHigh:
		return "Highly reliable"
	case LevelMediumHigh:
		return "Reliable"
	case LevelMedium:
		return "Moderately reliable"
	case LevelMediumLow:
		return "Low reliability"
	default:
		return "Unreliable"
	}
}

func assess(score float64, factors []string) Assessment {
	score = clamp01(score)
	level := LevelFor(score)
	return Assessment{
		Score:       score,
		Level:       level,
		Rating:      ratingFor(level),
		Reliability: reliabilityFor(level),
		Factors:     factors,
	}
}

// System assesses a signal document on its own. The base score is the
// caller-supplied aggregate signal-quality number. When the document reports
// bot-like signals, "Bot signals detected" is prepended followed by each raw
// signal string.
func System(doc signal.Document) Assessment {
	var factors []string
	bot := doc.Bot()
	if bot.IsBot || len(bot.Signals) > 0 {
		factors = append(factors, "Bot signals detected")
		factors = append(factors, bot.Signals...)
	}
	if doc.IncognitoPrivate() {
		factors = append(factors, "Private browsing detected")
	}
	if len(factors) == 0 {
		factors = []string{"No suspicious system factors detected"}
	}
	return assess(doc.ConfidenceScore(), factors)
}

// Combined assesses a system score together with network traits. The score
// passes through the same banding; factors come from scanning the boolean
// traits. Absent traits, or traits with nothing set, yield exactly
// "No suspicious network factors detected".
func Combined(score float64, traits *geo.Traits) Assessment {
	var factors []string
	if traits != nil {
		if traits.IsAnonymousProxy {
			factors = append(factors, "Proxy detected")
		}
		if traits.IsAnonymousVPN {
			factors = append(factors, "VPN detected")
		}
		if traits.IsHostingProvider {
			factors = append(factors, "Hosting provider detected")
		}
		if traits.IsTorExitNode {
			factors = append(factors, "Tor exit node detected")
		}
	}
	if len(factors) == 0 {
		factors = []string{"No suspicious network factors detected"}
	}
	return assess(score, factors)
}

func clamp01(f float64) float64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}
