// Package geo models the nullable geolocation document supplied by an
// external lookup collaborator, and the VPN heuristic derived from it.
//
// Acquisition is asynchronous and happens before report assembly; this
// package treats the document as an already-resolved, possibly-nil value.
package geo

// Name is an ISO-coded named region.
type Name struct {
	ISOCode string `json:"isoCode"`
	Name    string `json:"name"`
}

// Continent is a continent code/name pair.
type Continent struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// RegisteredCountry is the country of IP registration.
type RegisteredCountry struct {
	ISOCode           string `json:"isoCode"`
	Name              string `json:"name"`
	IsInEuropeanUnion bool   `json:"isInEuropeanUnion,omitempty"`
}

// City is a populated place with its GeoNames identifier.
type City struct {
	Name      string `json:"name"`
	GeonameID int    `json:"geonameId"`
}

// Location is the coarse position estimate.
type Location struct {
	AccuracyRadius int     `json:"accuracyRadius"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	TimeZone       string  `json:"timeZone"`
}

// Postal is the postal code block.
type Postal struct {
	Code string `json:"code"`
}

// Traits are boolean network-reputation traits plus addressing details.
type Traits struct {
	IsAnonymous         bool   `json:"isAnonymous"`
	IsAnonymousProxy    bool   `json:"isAnonymousProxy"`
	IsAnonymousVPN      bool   `json:"isAnonymousVpn"`
	IsAnycast           bool   `json:"isAnycast"`
	IsHostingProvider   bool   `json:"isHostingProvider"`
	IsLegitimateProxy   bool   `json:"isLegitimateProxy"`
	IsPublicProxy       bool   `json:"isPublicProxy"`
	IsResidentialProxy  bool   `json:"isResidentialProxy"`
	IsSatelliteProvider bool   `json:"isSatelliteProvider"`
	IsTorExitNode       bool   `json:"isTorExitNode"`
	IPAddress           string `json:"ipAddress"`
	Network             string `json:"network"`
}

// Document is the full geolocation lookup result.
type Document struct {
	IPAddress         string            `json:"ipAddress"`
	Country           Name              `json:"country"`
	RegisteredCountry RegisteredCountry `json:"registeredCountry"`
	City              City              `json:"city"`
	Continent         Continent         `json:"continent"`
	Subdivisions      []Name            `json:"subdivisions"`
	Location          Location          `json:"location"`
	Postal            Postal            `json:"postal"`
	Traits            Traits            `json:"traits"`
}

// Projection is the reduced geolocation view embedded in a composite report.
type Projection struct {
	VPNStatus VPNCheck  `json:"vpnStatus"`
	IP        string    `json:"ip"`
	City      string    `json:"city"`
	Region    Name      `json:"region"`
	Country   Name      `json:"country"`
	Continent Continent `json:"continent"`
	Location  Location  `json:"location"`
	Traits    Traits    `json:"traits"`
}

// Project reduces the document to its report shape, binding the already
// computed VPN heuristic. Region is the first subdivision when present.
func (d *Document) Project(vpn VPNCheck) *Projection {
	if d == nil {
		return nil
	}
	var region Name
	if len(d.Subdivisions) > 0 {
		region = d.Subdivisions[0]
	}
	return &Projection{
		VPNStatus: vpn,
		IP:        d.IPAddress,
		City:      d.City.Name,
		Region:    region,
		Country:   d.Country,
		Continent: d.Continent,
		Location:  d.Location,
		Traits:    d.Traits,
	}
}
