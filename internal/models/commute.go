package models

// CommuteProfile is the standing one-way commute configuration. A single
// active profile exists; every edit upserts it wholesale.
type CommuteProfile struct {
	FromCity       string `json:"from_city"`
	ToCity         string `json:"to_city"`
	CommuteHours   int    `json:"commute_hours"`
	CommuteMinutes int    `json:"commute_minutes"` // 0-59
	DaysPerWeek    int    `json:"days_per_week"`   // 1-7
}

// TotalCommuteMinutes is the one-way commute expressed in minutes,
// used for the wellness score penalty.
func (p CommuteProfile) TotalCommuteMinutes() int {
	return p.CommuteHours*60 + p.CommuteMinutes
}

// WeeklyCommuteHours is the round-trip weekly time cost in hours.
func (p CommuteProfile) WeeklyCommuteHours() float64 {
	oneWay := float64(p.CommuteHours) + float64(p.CommuteMinutes)/60
	return oneWay * float64(p.DaysPerWeek) * 2
}

// CommuteLogEntry records a day the commute was actually made, distinct
// from the standing profile. One entry per date, upsert on re-log.
type CommuteLogEntry struct {
	ID             string `json:"id"`
	Date           string `json:"date"`      // YYYY-MM-DD
	Timestamp      string `json:"timestamp"` // RFC3339
	FromCity       string `json:"from_city"`
	ToCity         string `json:"to_city"`
	CommuteHours   int    `json:"commute_hours"`
	CommuteMinutes int    `json:"commute_minutes"`
	DaysPerWeek    int    `json:"days_per_week"`
	Notes          string `json:"notes,omitempty"`
}
