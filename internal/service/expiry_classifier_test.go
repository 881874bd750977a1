package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"zerowastechef/internal/model"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestExpiryClassifier_Classify(t *testing.T) {
	today := date("2024-06-10")

	tests := []struct {
		name     string
		expiry   time.Time
		expected model.ExpiryStatus
	}{
		{"expired yesterday", date("2024-06-09"), model.StatusExpired},
		{"expired long ago", date("2023-01-01"), model.StatusExpired},
		{"expires today", date("2024-06-10"), model.StatusExpiringSoon},
		{"expires in two days", date("2024-06-12"), model.StatusExpiringSoon},
		{"expires at window edge", date("2024-06-13"), model.StatusExpiringSoon},
		{"expires just past window", date("2024-06-14"), model.StatusGood},
		{"expires far out", date("2024-06-20"), model.StatusGood},
	}

	classifier := NewExpiryClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifier.Classify(tt.expiry, today))
		})
	}
}

func TestExpiryClassifier_DaysToExpiry(t *testing.T) {
	classifier := NewExpiryClassifier()

	assert.Equal(t, -1, classifier.DaysToExpiry(date("2024-06-09"), date("2024-06-10")))
	assert.Equal(t, 0, classifier.DaysToExpiry(date("2024-06-10"), date("2024-06-10")))
	assert.Equal(t, 10, classifier.DaysToExpiry(date("2024-06-20"), date("2024-06-10")))
}

// Classification must ignore the time component of both dates.
func TestExpiryClassifier_IgnoresTimeOfDay(t *testing.T) {
	classifier := NewExpiryClassifier()

	lateToday := time.Date(2024, 6, 10, 23, 30, 0, 0, time.UTC)
	earlyExpiry := time.Date(2024, 6, 10, 0, 15, 0, 0, time.UTC)

	assert.Equal(t, model.StatusExpiringSoon, classifier.Classify(earlyExpiry, lateToday))
	assert.Equal(t, 0, classifier.DaysToExpiry(earlyExpiry, lateToday))
}
