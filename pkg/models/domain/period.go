package domain

import "time"

// Period is an end-inclusive calendar window. Both bounds are treated
// as dates; callers should pass midnight timestamps.
type Period struct {
	Start time.Time
	End   time.Time
}

// Days returns the window length in calendar days, end inclusive.
// Both bounds are normalized to UTC midnights first so the count is
// pure calendar arithmetic; a DST transition inside the window must
// not shift it.
func (p Period) Days() int {
	start := time.Date(p.Start.Year(), p.Start.Month(), p.Start.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(p.End.Year(), p.End.Month(), p.End.Day(), 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours()/24) + 1
}

// Previous returns the equal-length window immediately preceding p,
// adjacent and non-overlapping: for [2024-01-01, 2024-01-31] it is
// [2023-12-01, 2023-12-31].
func (p Period) Previous() Period {
	days := p.Days()
	return Period{
		Start: p.Start.AddDate(0, 0, -days),
		End:   p.Start.AddDate(0, 0, -1),
	}
}

// ExclusiveEnd returns the day after End, the upper bound to use when
// filtering timestamps so the whole final date is covered.
func (p Period) ExclusiveEnd() time.Time {
	return p.End.AddDate(0, 0, 1)
}

// MonthPeriod returns the calendar-month window containing ref.
func MonthPeriod(ref time.Time) Period {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	return Period{
		Start: start,
		End:   start.AddDate(0, 1, -1),
	}
}

// LastNDays returns the window covering the n days ending with ref's date.
func LastNDays(ref time.Time, n int) Period {
	end := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	return Period{
		Start: end.AddDate(0, 0, -(n - 1)),
		End:   end,
	}
}
