package civil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dilipvamsi/microshard-uuid/pkg/civil"
)

func TestIsLeap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year int
		want bool
	}{
		{1970, false},
		{1972, true},
		{1900, false},
		{2000, true},
		{2023, false},
		{2024, true},
		{2100, false},
		{2400, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, civil.IsLeap(tt.year), "year %d", tt.year)
	}
}

func TestDaysInMonth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 31, civil.DaysInMonth(2023, 1))
	assert.Equal(t, 28, civil.DaysInMonth(2023, 2))
	assert.Equal(t, 29, civil.DaysInMonth(2024, 2))
	assert.Equal(t, 28, civil.DaysInMonth(2100, 2))
	assert.Equal(t, 29, civil.DaysInMonth(2000, 2))
	assert.Equal(t, 30, civil.DaysInMonth(2023, 4))
	assert.Equal(t, 30, civil.DaysInMonth(2023, 6))
	assert.Equal(t, 30, civil.DaysInMonth(2023, 9))
	assert.Equal(t, 30, civil.DaysInMonth(2023, 11))
	assert.Equal(t, 31, civil.DaysInMonth(2023, 12))
}

func TestDaysFromDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		year, month, day int
		want             int64
	}{
		{"epoch", 1970, 1, 1, 0},
		{"day after epoch", 1970, 1, 2, 1},
		{"day before epoch", 1969, 12, 31, -1},
		{"end of epoch year", 1970, 12, 31, 364},
		{"first leap day after epoch", 1972, 2, 29, 789},
		{"y2k", 2000, 1, 1, 10957},
		{"post-century-leap day", 2000, 3, 1, 11017},
		{"recent", 2024, 1, 1, 19723},
		{"recent leap day", 2024, 2, 29, 19782},
		{"century non-leap", 2100, 3, 1, 47541},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, civil.DaysFromDate(tt.year, tt.month, tt.day))
		})
	}
}

func TestDateFromDays(t *testing.T) {
	t.Parallel()

	t.Run("known day counts", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			days             int64
			year, month, day int
		}{
			{0, 1970, 1, 1},
			{364, 1970, 12, 31},
			{365, 1971, 1, 1},
			{10957, 2000, 1, 1},
			{19782, 2024, 2, 29},
			{19783, 2024, 3, 1},
			{47540, 2100, 2, 28},
			{47541, 2100, 3, 1},
		}

		for _, tt := range tests {
			y, m, d := civil.DateFromDays(tt.days)
			assert.Equal(t, [3]int{tt.year, tt.month, tt.day}, [3]int{y, m, d}, "day count %d", tt.days)
		}
	})

	t.Run("inverse of DaysFromDate over a sweep", func(t *testing.T) {
		t.Parallel()

		// Steps of 317 days cross month and year boundaries at varying
		// offsets; the range covers roughly 850 years.
		for days := int64(0); days < 310_000; days += 317 {
			y, m, d := civil.DateFromDays(days)
			require.Equal(t, days, civil.DaysFromDate(y, m, d), "date %04d-%02d-%02d", y, m, d)
			require.GreaterOrEqual(t, d, 1)
			require.LessOrEqual(t, d, civil.DaysInMonth(y, m))
		}
	})

	t.Run("every day of a leap and a non-leap year", func(t *testing.T) {
		t.Parallel()

		for _, year := range []int{2023, 2024} {
			start := civil.DaysFromDate(year, 1, 1)
			total := int64(365)
			if civil.IsLeap(year) {
				total = 366
			}
			for offset := int64(0); offset < total; offset++ {
				y, m, d := civil.DateFromDays(start + offset)
				require.Equal(t, year, y)
				require.Equal(t, start+offset, civil.DaysFromDate(y, m, d))
			}
		}
	})
}
