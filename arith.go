// Copyright 2025 unilogic.ir. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solarhijri

import (
	"fmt"
	"math"
)

// Unit is a unit of time that dates can be advanced by and differences
// expressed in.
type Unit int

const (
	Days Unit = iota
	Weeks
	Months
	Years
	Decades
	Centuries
	Millennia
	Eras
)

var unitNames = []string{
	"Days",
	"Weeks",
	"Months",
	"Years",
	"Decades",
	"Centuries",
	"Millennia",
	"Eras",
}

func (u Unit) String() string {
	if u < Days || u > Eras {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitNames[u]
}

// AddDays returns the date the specified number of days after d, or
// before it for negative values.
func (d Date) AddDays(days int64) (Date, error) {
	if days == 0 {
		return d, nil
	}
	ed, err := addExact(d.EpochDay(), days)
	if err != nil {
		return Date{}, err
	}
	return NewFromEpochDay(ed), nil
}

// AddWeeks returns the date the specified number of weeks after d.
func (d Date) AddWeeks(weeks int64) (Date, error) {
	days, err := mulExact(weeks, 7)
	if err != nil {
		return Date{}, err
	}
	return d.AddDays(days)
}

// AddMonths returns the date the specified number of months after d,
// clamping the day of the month if the resulting month is shorter.
func (d Date) AddMonths(months int64) (Date, error) {
	if months == 0 {
		return d, nil
	}
	calcMonths, err := addExact(d.prolepticMonth(), months)
	if err != nil {
		return Date{}, err
	}
	newYear := floorDiv(calcMonths, 12)
	if newYear < MinYear || newYear > MaxYear {
		return Date{}, fmt.Errorf("%w: year %d", ErrOverflow, newYear)
	}
	newMonth := Month(floorMod(calcMonths, 12) + 1)
	return resolvePreviousValid(int(newYear), newMonth, d.day), nil
}

// AddYears returns the date the specified number of years after d,
// clamping the day of the month if the resulting month is shorter.
func (d Date) AddYears(years int64) (Date, error) {
	if years == 0 {
		return d, nil
	}
	newYear, err := addExact(int64(d.year), years)
	if err != nil {
		return Date{}, err
	}
	if newYear < MinYear || newYear > MaxYear {
		return Date{}, fmt.Errorf("%w: year %d", ErrOverflow, newYear)
	}
	return resolvePreviousValid(int(newYear), d.month, d.day), nil
}

// Add returns the date the specified amount of the specified unit after
// d. Adding eras reflects the year across the epoch; the resulting era
// must exist.
func (d Date) Add(amount int64, unit Unit) (Date, error) {
	switch unit {
	case Days:
		return d.AddDays(amount)
	case Weeks:
		return d.AddWeeks(amount)
	case Months:
		return d.AddMonths(amount)
	case Years:
		return d.AddYears(amount)
	case Decades:
		return d.addScaledYears(amount, 10)
	case Centuries:
		return d.addScaledYears(amount, 100)
	case Millennia:
		return d.addScaledYears(amount, 1000)
	case Eras:
		era, err := addExact(int64(d.Era()), amount)
		if err != nil {
			return Date{}, err
		}
		return d.With(FieldEra, era)
	}
	return Date{}, fmt.Errorf("%w: %v", ErrUnsupportedUnit, unit)
}

func (d Date) addScaledYears(amount, scale int64) (Date, error) {
	years, err := mulExact(amount, scale)
	if err != nil {
		return Date{}, err
	}
	return d.AddYears(years)
}

// Sub returns the date the specified amount of the specified unit
// before d.
func (d Date) Sub(amount int64, unit Unit) (Date, error) {
	if amount == math.MinInt64 {
		nd, err := d.Add(math.MaxInt64, unit)
		if err != nil {
			return Date{}, err
		}
		return nd.Add(1, unit)
	}
	return d.Add(-amount, unit)
}

func addExact(a, b int64) (int64, error) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return s, nil
}

func mulExact(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}
	r := a * b
	if r/b != a {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}
	return r, nil
}
