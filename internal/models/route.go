package models

import "github.com/julianstephens/commutewell/internal/constants"

// CommuteRoute is a saved route served by the HTTP backend.
type CommuteRoute struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Origin         string   `json:"origin"`
	Destination    string   `json:"destination"`
	DepartureStart string   `json:"departureStart"` // HH:MM
	DepartureEnd   string   `json:"departureEnd"`   // HH:MM
	TransportModes []string `json:"transportModes"`
	IsActive       bool     `json:"isActive"`
}

// RoutePatch is a partial route update. Nil fields are left untouched.
type RoutePatch struct {
	Name           *string  `json:"name"`
	Origin         *string  `json:"origin"`
	Destination    *string  `json:"destination"`
	DepartureStart *string  `json:"departureStart"`
	DepartureEnd   *string  `json:"departureEnd"`
	TransportModes []string `json:"transportModes"`
	IsActive       *bool    `json:"isActive"`
}

// Apply copies the patch's set fields onto the route.
func (p RoutePatch) Apply(r *CommuteRoute) {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Origin != nil {
		r.Origin = *p.Origin
	}
	if p.Destination != nil {
		r.Destination = *p.Destination
	}
	if p.DepartureStart != nil {
		r.DepartureStart = *p.DepartureStart
	}
	if p.DepartureEnd != nil {
		r.DepartureEnd = *p.DepartureEnd
	}
	if p.TransportModes != nil {
		r.TransportModes = p.TransportModes
	}
	if p.IsActive != nil {
		r.IsActive = *p.IsActive
	}
}

// TrafficStat is the current congestion reading for a route.
type TrafficStat struct {
	RouteID         string                  `json:"routeId"`
	Timestamp       string                  `json:"timestamp"`
	CongestionLevel int                     `json:"congestionLevel"` // 0-100
	Status          constants.TrafficStatus `json:"status"`
	Recommendation  string                  `json:"recommendation"`
	Explanation     string                  `json:"explanation"`
}

// ForecastPoint is one entry of the congestion forecast curve.
type ForecastPoint struct {
	Time       string `json:"time"` // HH:MM
	Congestion int    `json:"congestion"`
}

// TrafficPrediction is the full prediction payload for a route.
type TrafficPrediction struct {
	CurrentStatus     TrafficStat     `json:"currentStatus"`
	Forecast          []ForecastPoint `json:"forecast"`
	BestDepartureTime string          `json:"bestDepartureTime"`
}
