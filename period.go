// Copyright 2025 unilogic.ir. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solarhijri

import "fmt"

// Period is an amount of elapsed calendar time in years, months and
// days. The three components carry the sign of the overall period.
type Period struct {
	Years  int
	Months int
	Days   int
}

// IsZero returns true for an empty period.
func (p Period) IsZero() bool {
	return p == Period{}
}

// String returns the period in the ISO-8601 style form "P1Y2M3D".
func (p Period) String() string {
	return fmt.Sprintf("P%dY%dM%dD", p.Years, p.Months, p.Days)
}

// DaysUntil returns the number of days from d until end, negative if
// end is earlier.
func (d Date) DaysUntil(end Date) int64 {
	return end.EpochDay() - d.EpochDay()
}

// MonthsUntil returns the number of whole months from d until end,
// truncated towards zero so that partial months are ignored in either
// direction.
func (d Date) MonthsUntil(end Date) int64 {
	packed1 := d.prolepticMonth()*32 + int64(d.day)
	packed2 := end.prolepticMonth()*32 + int64(end.day)
	return (packed2 - packed1) / 32
}

// UntilIn returns the amount of time from d until the exclusive end
// date, expressed in the specified unit and truncated towards zero.
func (d Date) UntilIn(end Date, unit Unit) (int64, error) {
	switch unit {
	case Days:
		return d.DaysUntil(end), nil
	case Weeks:
		return d.DaysUntil(end) / 7, nil
	case Months:
		return d.MonthsUntil(end), nil
	case Years:
		return d.MonthsUntil(end) / 12, nil
	case Decades:
		return d.MonthsUntil(end) / 120, nil
	case Centuries:
		return d.MonthsUntil(end) / 1200, nil
	case Millennia:
		return d.MonthsUntil(end) / 12000, nil
	case Eras:
		return int64(end.Era()) - int64(d.Era()), nil
	}
	return 0, fmt.Errorf("%w: %v", ErrUnsupportedUnit, unit)
}

// Until returns the period from d until the exclusive end date as a
// normalized number of years, months and days.
func (d Date) Until(end Date) Period {
	totalMonths := end.prolepticMonth() - d.prolepticMonth()
	days := end.day - d.day
	if totalMonths > 0 && days < 0 {
		totalMonths--
		calcDate, _ := d.AddMonths(totalMonths) // cannot fail, both dates are in range
		days = int(end.EpochDay() - calcDate.EpochDay())
	} else if totalMonths < 0 && days > 0 {
		totalMonths++
		days -= end.DaysInMonth()
	}
	return Period{
		Years:  int(totalMonths / 12),
		Months: int(totalMonths % 12),
		Days:   days,
	}
}
