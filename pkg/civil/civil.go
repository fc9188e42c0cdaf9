package civil

const (
	// epochDays is the number of days from 0001-01-01 to 1970-01-01 in the
	// proleptic Gregorian calendar.
	epochDays = 719_162

	// epochShift is the number of days from 0000-03-01 to 1970-01-01. The
	// March-based origin places the leap day at the end of a year, which is
	// what lets eras decompose uniformly.
	epochShift = 719_468

	// eraDays is the length of one 400-year Gregorian cycle. Every era has
	// exactly this many days, which is why the decomposition is closed-form.
	eraDays = 146_097
)

// daysBeforeMonth[m-1] is the number of days in a non-leap year that precede
// the first day of month m.
var daysBeforeMonth = [12]int64{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// IsLeap reports whether year is a leap year under the Gregorian rule:
// divisible by 4, except centuries, which must be divisible by 400.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month of the given
// year. Month must be in [1, 12].
func DaysInMonth(year, month int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeap(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

// DaysFromDate returns the number of days from 1970-01-01 to the given civil
// date. Dates before the epoch yield negative counts. The date is not
// validated; callers check field ranges first.
func DaysFromDate(year, month, day int) int64 {
	y := int64(year) - 1
	days := y*365 + y/4 - y/100 + y/400 - epochDays
	days += daysBeforeMonth[month-1]
	if month > 2 && IsLeap(year) {
		days++
	}
	return days + int64(day-1)
}

// DateFromDays is the inverse of [DaysFromDate]: it converts a day count
// relative to 1970-01-01 back to a civil date. The algorithm rebases the
// count onto a March-1-of-year-0 origin and splits it into 400-year eras,
// year of era, and day of year, all with integer arithmetic.
func DateFromDays(days int64) (year, month, day int) {
	z := days + epochShift
	era := z / eraDays
	if z < 0 && z%eraDays != 0 {
		era--
	}
	// Day of era, year of era, then March-based day of year and month.
	doe := z - era*eraDays
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d := doy - (153*mp+2)/5 + 1
	m := mp + 3
	if mp >= 10 {
		m = mp - 9
	}
	y := yoe + era*400
	if m <= 2 {
		y++
	}
	return int(y), int(m), int(d)
}
