// Copyright 2025 unilogic.ir. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solarhijri

import "fmt"

// Field identifies a field of a Date that can be read with Get and
// assigned with With.
type Field int

const (
	FieldDayOfWeek Field = iota
	FieldAlignedDayOfWeekInMonth
	FieldAlignedDayOfWeekInYear
	FieldDayOfMonth
	FieldDayOfYear
	FieldEpochDay
	FieldAlignedWeekOfMonth
	FieldAlignedWeekOfYear
	FieldMonthOfYear
	FieldProlepticMonth
	FieldYearOfEra
	FieldYear
	FieldEra
)

var fieldNames = []string{
	"DayOfWeek",
	"AlignedDayOfWeekInMonth",
	"AlignedDayOfWeekInYear",
	"DayOfMonth",
	"DayOfYear",
	"EpochDay",
	"AlignedWeekOfMonth",
	"AlignedWeekOfYear",
	"MonthOfYear",
	"ProlepticMonth",
	"YearOfEra",
	"Year",
	"Era",
}

func (f Field) String() string {
	if f < FieldDayOfWeek || f > FieldEra {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// FieldRange describes the range of valid values for a field.
// SmallestMax is the smallest value the maximum can take, eg. 29 for
// the day of the month, whose maximum varies with the month and year.
type FieldRange struct {
	Min, SmallestMax, Max int64
}

// Valid returns true if the value lies within the range.
func (r FieldRange) Valid(v int64) bool {
	return v >= r.Min && v <= r.Max
}

var (
	minEpochDay = epochDay(MinYear, 1, 1)
	maxEpochDay = epochDay(MaxYear, 12, DaysInMonth(MaxYear, 12))
)

// Range returns the range of valid values for the field across all
// possible dates.
func (f Field) Range() (FieldRange, error) {
	switch f {
	case FieldDayOfWeek, FieldAlignedDayOfWeekInMonth, FieldAlignedDayOfWeekInYear:
		return FieldRange{1, 7, 7}, nil
	case FieldDayOfMonth:
		return FieldRange{1, 29, 31}, nil
	case FieldDayOfYear:
		return FieldRange{1, 365, 366}, nil
	case FieldEpochDay:
		return FieldRange{minEpochDay, maxEpochDay, maxEpochDay}, nil
	case FieldAlignedWeekOfMonth:
		return FieldRange{1, 5, 5}, nil
	case FieldAlignedWeekOfYear:
		return FieldRange{1, 53, 53}, nil
	case FieldMonthOfYear:
		return FieldRange{1, 12, 12}, nil
	case FieldProlepticMonth:
		return FieldRange{MinYear * 12, MaxYear*12 + 11, MaxYear*12 + 11}, nil
	case FieldYearOfEra:
		return FieldRange{1, MaxYear, MaxYear + 1}, nil
	case FieldYear:
		return FieldRange{MinYear, MaxYear, MaxYear}, nil
	case FieldEra:
		return FieldRange{0, 1, 1}, nil
	}
	return FieldRange{}, fmt.Errorf("%w: %v", ErrUnsupportedField, f)
}

// Get returns the value of the specified field.
func (d Date) Get(field Field) (int64, error) {
	switch field {
	case FieldDayOfWeek:
		return int64(d.Weekday()), nil
	case FieldAlignedDayOfWeekInMonth:
		return int64((d.day-1)%7 + 1), nil
	case FieldAlignedDayOfWeekInYear:
		return int64((d.YearDay()-1)%7 + 1), nil
	case FieldDayOfMonth:
		return int64(d.day), nil
	case FieldDayOfYear:
		return int64(d.YearDay()), nil
	case FieldEpochDay:
		return d.EpochDay(), nil
	case FieldAlignedWeekOfMonth:
		return int64((d.day-1)/7 + 1), nil
	case FieldAlignedWeekOfYear:
		return int64((d.YearDay()-1)/7 + 1), nil
	case FieldMonthOfYear:
		return int64(d.month), nil
	case FieldProlepticMonth:
		return d.prolepticMonth(), nil
	case FieldYearOfEra:
		return int64(d.YearOfEra()), nil
	case FieldYear:
		return int64(d.year), nil
	case FieldEra:
		return int64(d.Era()), nil
	}
	return 0, fmt.Errorf("%w: %v", ErrUnsupportedField, field)
}

// With returns a copy of the date with the specified field set to the
// specified value. Values outside the field's range are rejected with
// ErrInvalidFieldValue. Setting the year or the month clamps the day of
// the month to the length of the resulting month, whereas setting the
// day of the month directly is strict and fails with ErrInvalidDate if
// the day does not exist in the current month.
func (d Date) With(field Field, value int64) (Date, error) {
	r, err := field.Range()
	if err != nil {
		return Date{}, err
	}
	if !r.Valid(value) {
		return Date{}, fmt.Errorf("%w: %d for %v", ErrInvalidFieldValue, value, field)
	}
	switch field {
	case FieldDayOfWeek:
		return d.AddDays(value - int64(d.Weekday()))
	case FieldAlignedDayOfWeekInMonth:
		return d.AddDays(value - int64((d.day-1)%7+1))
	case FieldAlignedDayOfWeekInYear:
		return d.AddDays(value - int64((d.YearDay()-1)%7+1))
	case FieldDayOfMonth:
		return d.WithDay(int(value))
	case FieldDayOfYear:
		return d.WithYearDay(int(value))
	case FieldEpochDay:
		return NewFromEpochDay(value), nil
	case FieldAlignedWeekOfMonth:
		return d.AddWeeks(value - int64((d.day-1)/7+1))
	case FieldAlignedWeekOfYear:
		return d.AddWeeks(value - int64((d.YearDay()-1)/7+1))
	case FieldMonthOfYear:
		return d.WithMonth(Month(value))
	case FieldProlepticMonth:
		return d.AddMonths(value - d.prolepticMonth())
	case FieldYearOfEra:
		if d.year >= 1 {
			return d.WithYear(int(value))
		}
		return d.WithYear(int(1 - value))
	case FieldYear:
		return d.WithYear(int(value))
	case FieldEra:
		if int64(d.Era()) == value {
			return d, nil
		}
		return d.WithYear(1 - d.year)
	}
	return Date{}, fmt.Errorf("%w: %v", ErrUnsupportedField, field)
}

// WithYear returns a copy of the date with the specified proleptic
// year, clamping the day of the month if the resulting month is
// shorter.
func (d Date) WithYear(year int) (Date, error) {
	if d.year == year {
		return d, nil
	}
	if year < MinYear || year > MaxYear {
		return Date{}, fmt.Errorf("%w: year out of range: %d", ErrInvalidFieldValue, year)
	}
	return resolvePreviousValid(year, d.month, d.day), nil
}

// WithMonth returns a copy of the date with the specified month,
// clamping the day of the month if the resulting month is shorter.
func (d Date) WithMonth(month Month) (Date, error) {
	if d.month == month {
		return d, nil
	}
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("%w: invalid month: %d", ErrInvalidFieldValue, int(month))
	}
	return resolvePreviousValid(d.year, month, d.day), nil
}

// WithDay returns a copy of the date with the specified day of the
// month. Unlike WithYear and WithMonth the day is not clamped; a day
// that does not exist in the current month fails with ErrInvalidDate.
func (d Date) WithDay(day int) (Date, error) {
	if d.day == day {
		return d, nil
	}
	return New(d.year, d.month, day)
}

// WithYearDay returns a copy of the date with the specified day of the
// year.
func (d Date) WithYearDay(yearDay int) (Date, error) {
	if d.YearDay() == yearDay {
		return d, nil
	}
	return NewFromYearDay(d.year, yearDay)
}

// resolvePreviousValid clamps the day of the month down to the last day
// of the target month if necessary.
func resolvePreviousValid(year int, month Month, day int) Date {
	if md := DaysInMonth(year, month); day > md {
		day = md
	}
	return Date{year, month, day}
}
