// Copyright 2025 unilogic.ir. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solarhijri

import "time"

// CalendarID is the identifier of the Solar Hijri calendar system.
const CalendarID = "Solar-hijri"

// CalendarType is the calendar type per the Unicode LDML specification,
// for locale aware formatting interop. See
// http://unicode.org/reports/tr35/.
const CalendarType = "persian"

// Chronology describes the Solar Hijri calendar system as a whole and
// provides calendar level operations independent of any particular
// date. The zero value is ready to use and can be registered with a
// chronology registry such as the one in the chrono package.
type Chronology struct{}

// ID returns the identifier of the calendar system.
func (Chronology) ID() string {
	return CalendarID
}

// CalendarType returns the Unicode LDML calendar type.
func (Chronology) CalendarType() string {
	return CalendarType
}

// Date returns the date for the specified proleptic year, month and
// day.
func (Chronology) Date(year int, month Month, day int) (Date, error) {
	return New(year, month, day)
}

// DateYearDay returns the date for the specified year and day of the
// year.
func (Chronology) DateYearDay(year, yearDay int) (Date, error) {
	return NewFromYearDay(year, yearDay)
}

// DateEpochDay returns the date for the specified ISO epoch day.
func (Chronology) DateEpochDay(epochDay int64) Date {
	return NewFromEpochDay(epochDay)
}

// DateFromTime returns the date for the civil date of the specified
// time in its location.
func (Chronology) DateFromTime(when time.Time) Date {
	return NewFromTime(when)
}

// IsLeapYear returns true if the specified year is a leap year.
func (Chronology) IsLeapYear(year int) bool {
	return IsLeap(year)
}

// ProlepticYear returns the proleptic year for a year of the specified
// era.
func (Chronology) ProlepticYear(era Era, yearOfEra int) int {
	return ProlepticYear(era, yearOfEra)
}

// EraOf returns the era for the specified numeric value.
func (Chronology) EraOf(value int) (Era, error) {
	return EraOf(value)
}

// Eras returns the eras of the calendar in numeric order.
func (Chronology) Eras() []Era {
	return []Era{BH, AH}
}

// Range returns the range of valid values for the field in this
// calendar.
func (Chronology) Range(field Field) (FieldRange, error) {
	return field.Range()
}
