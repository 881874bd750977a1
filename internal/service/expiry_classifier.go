package service

import (
	"time"

	"zerowastechef/internal/model"
)

// expiringSoonWindowDays is the number of days before expiry at which an
// item is flagged as expiring soon.
const expiringSoonWindowDays = 3

// ExpiryClassifier derives freshness status from expiry dates.
type ExpiryClassifier struct{}

// NewExpiryClassifier creates a new expiry classifier.
func NewExpiryClassifier() *ExpiryClassifier {
	return &ExpiryClassifier{}
}

// Classify returns the freshness band for an expiry date evaluated on a
// given day: expired when the date has passed, expiring soon within the
// 0..3 day window, good beyond it. Time-of-day and timezone are ignored.
func (c *ExpiryClassifier) Classify(expiry, today time.Time) model.ExpiryStatus {
	days := c.DaysToExpiry(expiry, today)
	switch {
	case days < 0:
		return model.StatusExpired
	case days <= expiringSoonWindowDays:
		return model.StatusExpiringSoon
	default:
		return model.StatusGood
	}
}

// DaysToExpiry returns the whole calendar days from today until the expiry
// date; negative when the date has passed.
func (c *ExpiryClassifier) DaysToExpiry(expiry, today time.Time) int {
	return int(truncateToDate(expiry).Sub(truncateToDate(today)).Hours() / 24)
}

// truncateToDate drops the time component so comparisons work on calendar
// days only.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
