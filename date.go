// Copyright 2025 unilogic.ir. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solarhijri

import (
	"cmp"
	"fmt"
	"iter"
	"time"
)

// Date is an immutable Solar Hijri calendar date. The zero value is not
// a valid date; use one of the constructors. Date is comparable and may
// be used as a map key.
type Date struct {
	year  int
	month Month
	day   int
}

// New returns the Date for the specified proleptic year, month and day.
// Invalid combinations are rejected, never adjusted.
func New(year int, month Month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, fmt.Errorf("%w: year out of range: %d", ErrInvalidDate, year)
	}
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("%w: invalid month: %d", ErrInvalidDate, int(month))
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return Date{}, fmt.Errorf("%w: %d/%d/%d", ErrInvalidDate, year, int(month), day)
	}
	return Date{year, month, day}, nil
}

// NewFromEpochDay returns the Date for the specified ISO epoch day
// (days since 1970-01-01). It is exact for every epoch day value.
func NewFromEpochDay(epochDay int64) Date {
	year, month, day := dateFromEpochDay(epochDay)
	return Date{year, month, day}
}

// NewFromYearDay returns the Date for the specified day of the year,
// in the range 1 to DaysInYear(year).
func NewFromYearDay(year, yearDay int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, fmt.Errorf("%w: year out of range: %d", ErrInvalidDate, year)
	}
	if yearDay < 1 || yearDay > DaysInYear(year) {
		return Date{}, fmt.Errorf("%w: day %d of year %d", ErrInvalidDate, yearDay, year)
	}
	month, day := monthDayFromYearDay(yearDay)
	return Date{year, month, day}, nil
}

// EpochDayer is implemented by any date-like value that can express
// itself as an ISO epoch day, such as the date types of other calendar
// systems.
type EpochDayer interface {
	EpochDay() int64
}

// NewFromEpochDayer returns the Date with the same epoch day as the
// supplied value.
func NewFromEpochDayer(d EpochDayer) Date {
	if sd, ok := d.(Date); ok {
		return sd
	}
	return NewFromEpochDay(d.EpochDay())
}

// NewFromTime returns the Date for the civil date of the specified time
// in its location.
func NewFromTime(when time.Time) Date {
	y, m, d := when.Date()
	secs := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix()
	return NewFromEpochDay(floorDiv(secs, 24*60*60))
}

// Time returns midnight at the start of the date in the specified
// location, which defaults to UTC if nil.
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	t := time.Unix(d.EpochDay()*24*60*60, 0).UTC()
	y, m, dd := t.Date()
	return time.Date(y, m, dd, 0, 0, 0, 0, loc)
}

// Year returns the proleptic year.
func (d Date) Year() int {
	return d.year
}

// Month returns the month of the year.
func (d Date) Month() Month {
	return d.month
}

// Day returns the day of the month.
func (d Date) Day() int {
	return d.day
}

// YearDay returns the day of the year in the range 1 to 365, or 366 in
// a leap year.
func (d Date) YearDay() int {
	return dayOfYear(d.month, d.day)
}

// Weekday returns the day of the week using the ISO-8601 numbering,
// with Monday as 1 through Sunday as 7.
func (d Date) Weekday() int {
	return int(floorMod(d.EpochDay()+3, 7)) + 1
}

// DaysInMonth returns the number of days in the date's month.
func (d Date) DaysInMonth() int {
	return DaysInMonth(d.year, d.month)
}

// DaysInYear returns the number of days in the date's year.
func (d Date) DaysInYear() int {
	return DaysInYear(d.year)
}

// EpochDay returns the date as an ISO epoch day.
func (d Date) EpochDay() int64 {
	return epochDay(d.year, d.month, d.day)
}

// Era returns the era the date falls in.
func (d Date) Era() Era {
	return eraOfYear(d.year)
}

// YearOfEra returns the year within the date's era, which is always
// positive.
func (d Date) YearOfEra() int {
	if d.year >= 1 {
		return d.year
	}
	return 1 - d.year
}

// prolepticMonth numbers all months across all years consecutively,
// with month 0 being Farvardin of year 0.
func (d Date) prolepticMonth() int64 {
	return int64(d.year)*12 + int64(d.month) - 1
}

// IsZero returns true for the zero value of Date, which is not a valid
// date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Compare orders dates by year, month and day. The ordering is
// identical to that of the dates' epoch days.
func (d Date) Compare(other Date) int {
	if c := cmp.Compare(d.year, other.year); c != 0 {
		return c
	}
	if c := cmp.Compare(d.month, other.month); c != 0 {
		return c
	}
	return cmp.Compare(d.day, other.day)
}

// Before returns true if d is earlier than other.
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

// After returns true if d is later than other.
func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

// Equal returns true if the dates are the same.
func (d Date) Equal(other Date) bool {
	return d == other
}

// Tomorrow returns the date of the next day.
func (d Date) Tomorrow() Date {
	if d.day < DaysInMonth(d.year, d.month) {
		return Date{d.year, d.month, d.day + 1}
	}
	if d.month < 12 {
		return Date{d.year, d.month + 1, 1}
	}
	return Date{d.year + 1, 1, 1}
}

// Yesterday returns the date of the previous day.
func (d Date) Yesterday() Date {
	if d.day > 1 {
		return Date{d.year, d.month, d.day - 1}
	}
	if d.month > 1 {
		return Date{d.year, d.month - 1, DaysInMonth(d.year, d.month-1)}
	}
	return Date{d.year - 1, 12, DaysInMonth(d.year-1, 12)}
}

// DatesBetween returns an iterator that yields each date from the from
// date through the to date inclusive.
func DatesBetween(from, to Date) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for td := from; !td.After(to); td = td.Tomorrow() {
			if !yield(td) {
				return
			}
		}
	}
}

// String returns the date in the form "Solar-hijri AH 1403-01-02" with
// the year given as a year of the era.
func (d Date) String() string {
	return fmt.Sprintf("%s %s %d-%02d-%02d", CalendarID, d.Era(), d.YearOfEra(), int(d.month), d.day)
}
