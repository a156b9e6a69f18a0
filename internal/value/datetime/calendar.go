package datetime

var daysBefore = [...]int{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

// IsLeapYear reports whether year is a leap year in the Gregorian calendar.
// The rule is applied to the year number as written, including negative years.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in month (1-12) of year.
// It returns 0 for a month outside 1-12.
func DaysInMonth(month, year int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysBefore[month] - daysBefore[month-1]
}

// addYears moves year by delta, skipping year zero in either direction.
func addYears(year, delta int) int {
	next := year + delta
	switch {
	case year > 0 && next <= 0:
		next--
	case year < 0 && next >= 0:
		next++
	}
	return next
}

func previousMonth(year, month int) (int, int) {
	if month == 1 {
		return addYears(year, -1), 12
	}
	return year, month - 1
}

func nextMonth(year, month int) (int, int) {
	if month == 12 {
		return addYears(year, 1), 1
	}
	return year, month + 1
}

// carry returns hi, lo such that hi*base + lo is preserved and 0 <= lo < base.
func carry(hi, lo, base int) (int, int) {
	if lo < 0 {
		n := (-lo-1)/base + 1
		hi -= n
		lo += n * base
	}
	if lo >= base {
		n := lo / base
		hi += n
		lo -= n * base
	}
	return hi, lo
}
