package domain

import "time"

// Zone is a named area within a city. IsAirport only affects labelling in
// admin tooling, never pricing.
type Zone struct {
	ID        string
	CityID    string
	Name      string
	IsAirport bool
	CreatedAt time.Time
}

// ZonePrice is a fixed price between two zones of the same city. It is
// bidirectional: a lookup for (A,B) and (B,A) resolves to the same record.
// When it applies, the metered distance/time formula and surge are bypassed.
type ZonePrice struct {
	ID                   string
	PriceConfigurationID string
	FromZoneID           string
	ToZoneID             string
	Amount               float64
	CreatedAt            time.Time
}

// MatchesPair reports whether the record covers the unordered zone pair.
func (z ZonePrice) MatchesPair(zoneA, zoneB string) bool {
	return (z.FromZoneID == zoneA && z.ToZoneID == zoneB) ||
		(z.FromZoneID == zoneB && z.ToZoneID == zoneA)
}
