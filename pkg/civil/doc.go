// Package civil implements proleptic Gregorian calendar arithmetic and a
// strict ISO-8601 timestamp codec without relying on the time package.
//
// The package converts between civil dates and day counts relative to the
// Unix epoch (1970-01-01), and between ISO-8601 text and microseconds since
// the epoch. Both directions are exact inverses for every date in the
// supported range, which is what makes identifiers round-trip losslessly.
//
// Day counts use two closed-form algorithms:
//   - [DaysFromDate] sums whole-year day counts with the 4/100/400 leap rule,
//     a days-before-month table, and a single leap-day adjustment.
//   - [DateFromDays] shifts the epoch to March 1 of year 0 and decomposes the
//     day count into 400-year eras of exactly 146097 days, then year-of-era,
//     day-of-year, and month.
//
// The ISO-8601 codec accepts exactly the pattern
// YYYY-MM-DDTHH:MM:SS[.ffffff]Z. Separators are checked at fixed offsets,
// every field is range-checked (including February 29 against leap years),
// and only the first six fractional digits are significant. Formatting always
// emits six fractional digits and a trailing Z.
//
// Timestamps before the epoch are rejected. Second 60 is accepted on input to
// tolerate leap seconds but no leap-second table is applied; it simply adds
// one more second of arithmetic.
//
// Parse failures return [ErrSyntax] for structural problems and [ErrRange]
// for out-of-range or calendar-invalid fields. Formatting a timestamp whose
// year does not fit the fixed four-digit field returns [ErrYearRange].
package civil
