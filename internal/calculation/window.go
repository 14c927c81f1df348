package calculation

import "strconv"

// yearToken extracts the leading 4-character year from a date string
// such as "2025-01-01". Shorter or malformed values report no bound,
// which is the graceful-degradation rule for activity windows.
func yearToken(date string) (int, bool) {
	if len(date) < 4 {
		return 0, false
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0, false
	}
	return year, true
}

// activeIn reports whether year falls inside the closed window implied
// by the start/end date strings. A missing or unparseable date leaves
// that side unbounded: only a start date means active from that year
// onward, only an end date means active through that year, neither
// means active always.
func activeIn(startDate, endDate string, year int) bool {
	if start, ok := yearToken(startDate); ok && year < start {
		return false
	}
	if end, ok := yearToken(endDate); ok && year > end {
		return false
	}
	return true
}
