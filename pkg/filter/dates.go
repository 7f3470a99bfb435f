package filter

import "time"

// DateRange names a fixed time window for session filtering.
type DateRange string

const (
	RangeToday   DateRange = "today"
	RangeWeek    DateRange = "week"    // last 7 days
	RangeMonth   DateRange = "month"   // last 30 days
	RangeQuarter DateRange = "quarter" // last 3 months
	RangeYear    DateRange = "year"    // last year
	RangeCustom  DateRange = "custom"  // explicit [from, to] bounds
)

// inDateRange reports whether ts falls inside the spec's window relative
// to now. Named windows keep timestamps at or after a computed cutoff; the
// custom window applies inclusive bounds, with the upper bound extended
// through end of day.
func inDateRange(ts time.Time, spec SessionSpec, now time.Time) bool {
	if spec.DateRange == RangeCustom {
		return inCustomRange(ts, spec.DateFrom, spec.DateTo)
	}

	cutoff, ok := rangeCutoff(spec.DateRange, now)
	if !ok {
		// Unknown window names impose no constraint
		return true
	}
	return !ts.Before(cutoff)
}

// rangeCutoff computes the inclusive lower bound for a named window.
func rangeCutoff(r DateRange, now time.Time) (time.Time, bool) {
	switch r {
	case RangeToday:
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location()), true
	case RangeWeek:
		return now.AddDate(0, 0, -7), true
	case RangeMonth:
		return now.AddDate(0, 0, -30), true
	case RangeQuarter:
		return now.AddDate(0, -3, 0), true
	case RangeYear:
		return now.AddDate(-1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

// inCustomRange applies the explicit window. Either bound may be open; an
// unparsable bound is ignored.
func inCustomRange(ts time.Time, from, to string) bool {
	if fromDate, err := time.Parse("2006-01-02", from); err == nil {
		if ts.Before(fromDate) {
			return false
		}
	}
	if toDate, err := time.Parse("2006-01-02", to); err == nil {
		// to is inclusive through 23:59:59.999
		end := toDate.Add(24*time.Hour - time.Millisecond)
		if ts.After(end) {
			return false
		}
	}
	return true
}
