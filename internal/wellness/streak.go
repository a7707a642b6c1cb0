package wellness

import (
	"time"

	"github.com/julianstephens/commutewell/internal/constants"
	"github.com/julianstephens/commutewell/internal/utils"
)

// Streak counts consecutive days with a check-in, scanning backward
// from asOf for up to a year. A missing check-in for asOf itself does
// not break the count (the day isn't over yet); any earlier gap ends
// the scan immediately.
func Streak(checkinDates map[string]bool, asOf time.Time) int {
	if len(checkinDates) == 0 {
		return 0
	}

	streak := 0
	for i := 0; i < constants.StreakScanDays; i++ {
		day := utils.DateKey(asOf.AddDate(0, 0, -i))
		if checkinDates[day] {
			streak++
		} else if i > 0 {
			break
		}
	}
	return streak
}
