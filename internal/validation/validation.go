package validation

import (
	"strings"

	"github.com/julianstephens/commutewell/internal/constants"
	"github.com/julianstephens/commutewell/internal/errors"
	"github.com/julianstephens/commutewell/internal/models"
	"github.com/julianstephens/commutewell/internal/utils"
)

// FieldError carries the offending field name alongside the message so
// the HTTP layer can return {message, field} bodies.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

// Ratings checks a check-in's rating map: at least one axis present,
// every present axis within bounds.
func Ratings(ratings map[constants.RatingAxis]int) error {
	if len(ratings) == 0 {
		return errors.Validationf("at least one rating is required")
	}
	for axis, v := range ratings {
		switch axis {
		case constants.AxisEnergy, constants.AxisStress, constants.AxisComfort:
		default:
			return errors.Validationf("unknown rating axis %q", axis)
		}
		if v < constants.RatingMin || v > constants.RatingMax {
			return errors.Validationf("%s rating must be between %d and %d",
				axis, constants.RatingMin, constants.RatingMax)
		}
	}
	return nil
}

// Profile checks the standing commute configuration bounds.
func Profile(p models.CommuteProfile) error {
	if p.CommuteHours < 0 {
		return errors.Validationf("commute hours cannot be negative")
	}
	if p.CommuteMinutes < 0 || p.CommuteMinutes > 59 {
		return errors.Validationf("commute minutes must be between 0 and 59")
	}
	if p.DaysPerWeek < 1 || p.DaysPerWeek > 7 {
		return errors.Validationf("days per week must be between 1 and 7")
	}
	return nil
}

// ProfileForLogging additionally requires both cities, which a day's
// commute cannot be logged without.
func ProfileForLogging(p models.CommuteProfile) error {
	if strings.TrimSpace(p.FromCity) == "" || strings.TrimSpace(p.ToCity) == "" {
		return errors.Validationf("set commute cities before logging a commute")
	}
	return Profile(p)
}

// TaskGroup checks a checklist group name.
func TaskGroup(group constants.TaskGroup) error {
	switch group {
	case constants.GroupMorning, constants.GroupDrive, constants.GroupEvening:
		return nil
	}
	return errors.Validationf("unknown task group %q", group)
}

// Route checks a full route record for creation.
func Route(r models.CommuteRoute) *FieldError {
	if strings.TrimSpace(r.Name) == "" {
		return &FieldError{Field: "name", Message: "Name is required"}
	}
	if strings.TrimSpace(r.Origin) == "" {
		return &FieldError{Field: "origin", Message: "Origin is required"}
	}
	if strings.TrimSpace(r.Destination) == "" {
		return &FieldError{Field: "destination", Message: "Destination is required"}
	}
	if !utils.ValidTimeOfDay(r.DepartureStart) {
		return &FieldError{Field: "departureStart", Message: "Departure start must be HH:MM"}
	}
	if !utils.ValidTimeOfDay(r.DepartureEnd) {
		return &FieldError{Field: "departureEnd", Message: "Departure end must be HH:MM"}
	}
	if len(r.TransportModes) == 0 {
		return &FieldError{Field: "transportModes", Message: "At least one transport mode is required"}
	}
	return nil
}

// RoutePatch checks only the fields a partial update sets.
func RoutePatch(p models.RoutePatch) *FieldError {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return &FieldError{Field: "name", Message: "Name cannot be empty"}
	}
	if p.Origin != nil && strings.TrimSpace(*p.Origin) == "" {
		return &FieldError{Field: "origin", Message: "Origin cannot be empty"}
	}
	if p.Destination != nil && strings.TrimSpace(*p.Destination) == "" {
		return &FieldError{Field: "destination", Message: "Destination cannot be empty"}
	}
	if p.DepartureStart != nil && !utils.ValidTimeOfDay(*p.DepartureStart) {
		return &FieldError{Field: "departureStart", Message: "Departure start must be HH:MM"}
	}
	if p.DepartureEnd != nil && !utils.ValidTimeOfDay(*p.DepartureEnd) {
		return &FieldError{Field: "departureEnd", Message: "Departure end must be HH:MM"}
	}
	return nil
}

// DeviceStatus checks the three-color status accepted by device sync.
func DeviceStatus(status constants.TrafficStatus) error {
	switch status {
	case constants.TrafficGreen, constants.TrafficYellow, constants.TrafficRed:
		return nil
	}
	return errors.Validationf("status must be green, yellow, or red")
}
