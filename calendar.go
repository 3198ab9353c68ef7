// Copyright 2025 unilogic.ir. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package solarhijri provides support for working with dates in the
// Solar Hijri (Persian) calendar, the calendar in civil use in Iran and
// Afghanistan. Dates are proleptic, that is, the calendar's rules are
// extended indefinitely forwards and backwards from its epoch, and all
// conversions to and from ISO epoch days are exact and reversible.
//
// Leap years are determined by the 33 year arithmetic cycle rather than
// by astronomical observation; the two agree for the years of practical
// interest.
package solarhijri

// epochOffset is the ISO epoch day (days since 1970-01-01) of
// Farvardin 1 of year 1.
const epochOffset = -492268

// firstHalfDays is the total number of days in months 1-6, each of
// which has 31 days.
const firstHalfDays = 186

// MinYear and MaxYear bound the supported range of proleptic years.
const (
	MinYear = -999_999_999
	MaxYear = 999_999_999
)

// IsLeap returns true if the specified year is a leap year. Leap years
// repeat on a 33 year cycle with 8 leap years per cycle.
func IsLeap(year int) bool {
	return floorMod(25*int64(year)+11, 33) < 8
}

// DaysInYear returns the number of days in the specified year, 366 for
// leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of days in the specified month of the
// specified year. Months 1-6 have 31 days, months 7-11 have 30 days and
// month 12 has 30 days in a leap year and 29 otherwise.
func DaysInMonth(year int, month Month) int {
	switch {
	case month == 12:
		if IsLeap(year) {
			return 30
		}
		return 29
	case month > 6:
		return 30
	default:
		return 31
	}
}

// dayOfYear returns the 1-based day of the year for a month and day
// that are known to be valid.
func dayOfYear(month Month, day int) int {
	if month <= 6 {
		return (int(month)-1)*31 + day
	}
	return firstHalfDays + (int(month)-7)*30 + day
}

// monthDayFromYearDay is the inverse of dayOfYear. The day of the year
// must be in the range 1 to DaysInYear for the intended year.
func monthDayFromYearDay(yearDay int) (Month, int) {
	d0 := yearDay - 1
	if d0 < firstHalfDays {
		return Month(d0/31 + 1), d0%31 + 1
	}
	d0 -= firstHalfDays
	m0 := d0/30 + 6
	return Month(m0 + 1), d0 - (m0-6)*30 + 1
}

// firstDayOfYear returns the day of Farvardin 1 of the specified year,
// counted from Farvardin 1 of year 1. The second term accounts for the
// leap days accumulated by the 33 year cycle.
func firstDayOfYear(year int) int64 {
	y := int64(year)
	return 365*(y-1) + floorDiv(8*y+21, 33)
}

// epochDay returns the ISO epoch day for a date that is known to be
// valid.
func epochDay(year int, month Month, day int) int64 {
	return epochOffset + firstDayOfYear(year) + int64(dayOfYear(month, day)) - 1
}

// dateFromEpochDay decodes an ISO epoch day into a year, month and day.
// It is exact for every representable epoch day and is the inverse of
// epochDay.
func dateFromEpochDay(ed int64) (int, Month, int) {
	d := ed - epochOffset
	year := int(1 + floorDiv(33*d+3, 12053))
	yearDay := int(d-firstDayOfYear(year)) + 1
	month, day := monthDayFromYearDay(yearDay)
	return year, month, day
}

// floorDiv returns the quotient of a and b rounded towards negative
// infinity. b must be positive.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b < 0 {
		return q - 1
	}
	return q
}

// floorMod returns a modulo b with the result always in [0, b).
// b must be positive.
func floorMod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		return m + b
	}
	return m
}
