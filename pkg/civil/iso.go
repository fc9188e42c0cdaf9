package civil

import (
	"errors"
	"fmt"
)

// Parse and format failures.
var (
	// ErrSyntax reports input that does not match the
	// YYYY-MM-DDTHH:MM:SS[.ffffff]Z pattern.
	ErrSyntax = errors.New("civil: malformed ISO-8601 timestamp")

	// ErrRange reports a structurally valid timestamp with a field outside
	// its valid range, including dates before the Unix epoch.
	ErrRange = errors.New("civil: ISO-8601 field out of range")

	// ErrYearRange reports a timestamp whose year does not fit the
	// four-digit year field.
	ErrYearRange = errors.New("civil: year does not fit ISO-8601 four-digit field")
)

const (
	microsPerSecond = 1_000_000
	microsPerDay    = 86_400 * microsPerSecond

	// minISOLen is the length of a timestamp without a fractional part,
	// "YYYY-MM-DDTHH:MM:SSZ".
	minISOLen = 20
)

// ParseMicros converts a strict ISO-8601 UTC timestamp of the form
// YYYY-MM-DDTHH:MM:SS[.ffffff]Z into microseconds since the Unix epoch.
//
// Separators are required at fixed offsets and every field must be numeric.
// Month, day, hour, minute, and second are range-checked; day validity
// accounts for leap years. Second 60 is accepted and carries into the next
// minute. The fractional part, when present, must hold at least one digit;
// only the first six digits are significant and shorter fractions are
// treated as right-padded with zeros. The timestamp must end with Z and
// denote a time at or after 1970-01-01T00:00:00Z.
func ParseMicros(s string) (uint64, error) {
	if len(s) < minISOLen {
		return 0, fmt.Errorf("%w: too short (%d bytes)", ErrSyntax, len(s))
	}
	if s[4] != '-' || s[7] != '-' || s[10] != 'T' || s[13] != ':' || s[16] != ':' {
		return 0, fmt.Errorf("%w: bad separator", ErrSyntax)
	}

	year, okYear := atoi(s[0:4])
	month, okMonth := atoi(s[5:7])
	day, okDay := atoi(s[8:10])
	hour, okHour := atoi(s[11:13])
	minute, okMinute := atoi(s[14:16])
	sec, okSec := atoi(s[17:19])
	if !okYear || !okMonth || !okDay || !okHour || !okMinute || !okSec {
		return 0, fmt.Errorf("%w: non-numeric field", ErrSyntax)
	}

	if month < 1 || month > 12 {
		return 0, fmt.Errorf("%w: month %d", ErrRange, month)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return 0, fmt.Errorf("%w: day %d of %04d-%02d", ErrRange, day, year, month)
	}
	if hour > 23 {
		return 0, fmt.Errorf("%w: hour %d", ErrRange, hour)
	}
	if minute > 59 {
		return 0, fmt.Errorf("%w: minute %d", ErrRange, minute)
	}
	if sec > 60 {
		return 0, fmt.Errorf("%w: second %d", ErrRange, sec)
	}

	var frac uint64
	switch s[19] {
	case 'Z':
		if len(s) != minISOLen {
			return 0, fmt.Errorf("%w: trailing data after Z", ErrSyntax)
		}
	case '.':
		i := 20
		mul := uint64(100_000)
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			if mul > 0 {
				frac += uint64(s[i]-'0') * mul
				mul /= 10
			}
			i++
		}
		if i == 20 {
			return 0, fmt.Errorf("%w: empty fraction", ErrSyntax)
		}
		if i != len(s)-1 || s[i] != 'Z' {
			return 0, fmt.Errorf("%w: missing Z terminator", ErrSyntax)
		}
	default:
		return 0, fmt.Errorf("%w: expected fraction or Z at offset 19", ErrSyntax)
	}

	days := DaysFromDate(year, month, day)
	if days < 0 {
		return 0, fmt.Errorf("%w: %04d-%02d-%02d predates the Unix epoch", ErrRange, year, month, day)
	}

	secOfDay := int64(hour)*3600 + int64(minute)*60 + int64(sec)
	return uint64(days)*microsPerDay + uint64(secOfDay)*microsPerSecond + frac, nil
}

// FormatMicros renders microseconds since the Unix epoch as an ISO-8601 UTC
// timestamp with six fractional digits, YYYY-MM-DDTHH:MM:SS.ffffffZ.
//
// Timestamps whose year exceeds 9999 do not fit the fixed-width year field
// and return [ErrYearRange] instead of wrapping or widening the output.
func FormatMicros(micros uint64) (string, error) {
	days := micros / microsPerDay
	rem := micros % microsPerDay

	year, month, day := DateFromDays(int64(days))
	if year > 9999 {
		return "", fmt.Errorf("%w: year %d", ErrYearRange, year)
	}

	secOfDay := rem / microsPerSecond
	frac := rem % microsPerSecond
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d.%06dZ",
		year, month, day,
		secOfDay/3600, secOfDay/60%60, secOfDay%60, frac), nil
}

// atoi parses a fixed-width decimal field. It accepts ASCII digits only; no
// signs, spaces, or underscores.
func atoi(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
