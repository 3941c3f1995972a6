package assessment

import (
	"math"
	"time"
)

// RetakeIntervalMonths is the calendar-month cooldown between sittings.
const RetakeIntervalMonths = 6

// RetakeStatus reports eligibility for a new sitting given the latest
// result's timestamp.
type RetakeStatus struct {
	CanRetake     bool      `json:"can_retake"`
	AvailableAt   time.Time `json:"available_at"`
	DaysRemaining int       `json:"days_remaining"`
}

// RetakeStatusAt adds six calendar months (not a fixed day count) to the
// last test date. When still blocked, DaysRemaining is the ceiling of the
// remaining delta in whole days.
func RetakeStatusAt(lastTest time.Time, now time.Time) RetakeStatus {
	availableAt := lastTest.AddDate(0, RetakeIntervalMonths, 0)
	if !now.Before(availableAt) {
		return RetakeStatus{CanRetake: true, AvailableAt: availableAt}
	}
	remaining := availableAt.Sub(now)
	days := int(math.Ceil(remaining.Hours() / 24))
	return RetakeStatus{CanRetake: false, AvailableAt: availableAt, DaysRemaining: days}
}
