package usecase

import (
	"math"
	"time"

	"github.com/foodexpiry/backend/internal/domain"
)

// expiringSoonMaxDays is the last day an item still counts as expiring-soon.
// An item expiring today (day 0) is usable, so day 0 through day 3 are
// expiring-soon and anything past that is fresh.
const expiringSoonMaxDays = 3

// Classify maps an expiration date to a status bucket relative to the given
// reference date. Both dates are truncated to day granularity first so
// partial days cannot shift the bucket. Pure function, safe to call
// concurrently.
func Classify(expirationDate, today time.Time) domain.Classification {
	days := daysBetween(today, expirationDate)

	status := domain.StatusFresh
	switch {
	case days < 0:
		status = domain.StatusExpired
	case days <= expiringSoonMaxDays:
		status = domain.StatusExpiringSoon
	}

	return domain.Classification{
		Status:              status,
		DaysUntilExpiration: days,
	}
}

// daysBetween returns the calendar-day distance from one date to another.
// The ceiling over the midnight-to-midnight duration keeps DST-shortened
// days counting as a full day.
func daysBetween(from, to time.Time) int {
	fromDay := truncateToDay(from)
	toDay := truncateToDay(to)
	return int(math.Ceil(toDay.Sub(fromDay).Hours() / 24))
}

// truncateToDay drops the time-of-day component, keeping the location
func truncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
