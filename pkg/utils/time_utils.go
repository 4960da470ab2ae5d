package utils

import "time"

// Subscription dates are calendar days, stored as unix seconds of
// midnight UTC. All day arithmetic in the billing path goes through
// these helpers so the inclusive-expiry comparison stays consistent.

// TruncateToDay drops the time-of-day component, keeping the UTC date.
func TruncateToDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DayUnix is the canonical stored form of a calendar day.
func DayUnix(t time.Time) int64 {
	return TruncateToDay(t).Unix()
}

// AddBillingMonth computes the exclusive-period end of one billing cycle.
// time.AddDate normalizes overflow (Jan 31 + 1 month = Mar 2/3), which
// matches how the billing period has always been computed here.
func AddBillingMonth(day time.Time) time.Time {
	return TruncateToDay(day).AddDate(0, 1, 0)
}

func NowUnixSeconds() int64 { return time.Now().Unix() }
