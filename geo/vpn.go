package geo

import "strings"

// VPNCheck is the outcome of the timezone-mismatch VPN heuristic.
type VPNCheck struct {
	Status      bool    `json:"status"`
	Probability float64 `json:"probability"`
}

// timezoneAliases maps equivalent IANA zone names onto one canonical name so
// a rename or legacy alias never counts as a mismatch.
var timezoneAliases = map[string]string{
	"Etc/UTC":              "UTC",
	"Etc/Universal":        "UTC",
	"Etc/Zulu":             "UTC",
	"Universal":            "UTC",
	"Zulu":                 "UTC",
	"GMT":                  "UTC",
	"Etc/GMT":              "UTC",
	"Etc/GMT+0":            "UTC",
	"Etc/GMT-0":            "UTC",
	"Etc/GMT0":             "UTC",
	"Greenwich":            "UTC",
	"Asia/Calcutta":        "Asia/Kolkata",
	"Asia/Katmandu":        "Asia/Kathmandu",
	"Asia/Saigon":          "Asia/Ho_Chi_Minh",
	"Asia/Rangoon":         "Asia/Yangon",
	"Asia/Chongqing":       "Asia/Shanghai",
	"Asia/Harbin":          "Asia/Shanghai",
	"Asia/Macao":           "Asia/Macau",
	"Asia/Ulan_Bator":      "Asia/Ulaanbaatar",
	"Europe/Kiev":          "Europe/Kyiv",
	"America/Buenos_Aires": "America/Argentina/Buenos_Aires",
	"America/Godthab":      "America/Nuuk",
	"Atlantic/Faeroe":      "Atlantic/Faroe",
	"Pacific/Ponape":       "Pacific/Pohnpei",
	"Pacific/Truk":         "Pacific/Chuuk",
	"Israel":               "Asia/Jerusalem",
	"Japan":                "Asia/Tokyo",
	"Singapore":            "Asia/Singapore",
	"Hongkong":             "Asia/Hong_Kong",
	"US/Eastern":           "America/New_York",
	"US/Central":           "America/Chicago",
	"US/Mountain":          "America/Denver",
	"US/Pacific":           "America/Los_Angeles",
}

// NormalizeTimezone trims a zone name and resolves it through the static
// alias table.
func NormalizeTimezone(tz string) string {
	tz = strings.TrimSpace(tz)
	if canonical, ok := timezoneAliases[tz]; ok {
		return canonical
	}
	return tz
}

// DetectVPN compares the geolocation-derived timezone against the system's
// local timezone after alias resolution.
//
// Either zone missing or the literal "unknown" yields an inconclusive
// result (probability 0.5); a mismatch flags VPN use at 0.75; a match
// clears it at 0.2.
func DetectVPN(geoTZ, localTZ string) VPNCheck {
	geoTZ = strings.TrimSpace(geoTZ)
	localTZ = strings.TrimSpace(localTZ)
	if geoTZ == "" || localTZ == "" ||
		strings.EqualFold(geoTZ, "unknown") || strings.EqualFold(localTZ, "unknown") {
		return VPNCheck{Status: false, Probability: 0.5}
	}
	if NormalizeTimezone(geoTZ) != NormalizeTimezone(localTZ) {
		return VPNCheck{Status: true, Probability: 0.75}
	}
	return VPNCheck{Status: false, Probability: 0.2}
}
