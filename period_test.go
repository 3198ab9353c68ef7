// Copyright 2025 unilogic.ir. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solarhijri_test

import (
	"errors"
	"testing"

	"github.com/unilogic/solarhijri"
)

func TestDaysUntil(t *testing.T) {
	for _, tc := range []struct {
		a, b solarhijri.Date
		days int64
	}{
		{nd(1400, 1, 1), nd(1400, 1, 1), 0},
		{nd(1400, 1, 1), nd(1400, 1, 2), 1},
		{nd(1400, 1, 1), nd(1403, 1, 1), 1095},
		{nd(1403, 1, 1), nd(1400, 1, 1), -1095},
		{nd(1399, 12, 29), nd(1400, 1, 1), 2}, // 1399 is a leap year
	} {
		if got := tc.a.DaysUntil(tc.b); got != tc.days {
			t.Errorf("%v to %v: got %v, want %v", tc.a, tc.b, got, tc.days)
		}
	}
}

func TestMonthsUntil(t *testing.T) {
	for _, tc := range []struct {
		a, b   solarhijri.Date
		months int64
	}{
		{nd(1400, 1, 1), nd(1400, 2, 1), 1},
		{nd(1400, 1, 31), nd(1400, 2, 30), 0}, // one day short of a whole month
		{nd(1400, 1, 31), nd(1400, 2, 31), 1},
		{nd(1400, 2, 30), nd(1400, 1, 31), 0}, // truncation towards zero, not flooring
		{nd(1400, 1, 1), nd(1402, 7, 1), 30},
		{nd(1402, 7, 1), nd(1400, 1, 1), -30},
	} {
		if got := tc.a.MonthsUntil(tc.b); got != tc.months {
			t.Errorf("%v to %v: got %v, want %v", tc.a, tc.b, got, tc.months)
		}
	}
}

func TestUntilIn(t *testing.T) {
	a, b := nd(1400, 1, 1), nd(1403, 1, 1)
	for _, tc := range []struct {
		unit   solarhijri.Unit
		amount int64
	}{
		{solarhijri.Days, 1095},
		{solarhijri.Weeks, 156},
		{solarhijri.Months, 36},
		{solarhijri.Years, 3},
		{solarhijri.Decades, 0},
		{solarhijri.Eras, 0},
	} {
		got, err := a.UntilIn(b, tc.unit)
		if err != nil {
			t.Errorf("%v: %v", tc.unit, err)
			continue
		}
		if got != tc.amount {
			t.Errorf("%v: got %v, want %v", tc.unit, got, tc.amount)
		}
	}

	if got, err := nd(-5, 1, 1).UntilIn(nd(5, 1, 1), solarhijri.Eras); err != nil || got != 1 {
		t.Errorf("got %v, %v", got, err)
	}
	if _, err := a.UntilIn(b, solarhijri.Unit(99)); !errors.Is(err, solarhijri.ErrUnsupportedUnit) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestUntil(t *testing.T) {
	for _, tc := range []struct {
		a, b   solarhijri.Date
		period solarhijri.Period
	}{
		{nd(1400, 1, 1), nd(1400, 1, 1), solarhijri.Period{}},
		{nd(1399, 12, 29), nd(1400, 1, 1), solarhijri.Period{Days: 2}}, // 1399 is a leap year
		{nd(1400, 1, 1), nd(1400, 1, 20), solarhijri.Period{Days: 19}},
		{nd(1400, 1, 25), nd(1400, 3, 5), solarhijri.Period{Months: 1, Days: 11}},
		{nd(1400, 3, 15), nd(1400, 1, 20), solarhijri.Period{Months: -1, Days: -26}},
		{nd(1395, 6, 10), nd(1403, 2, 20), solarhijri.Period{Years: 7, Months: 8, Days: 10}},
		{nd(1403, 2, 20), nd(1395, 6, 10), solarhijri.Period{Years: -7, Months: -8, Days: -10}},
	} {
		if got := tc.a.Until(tc.b); got != tc.period {
			t.Errorf("%v to %v: got %v, want %v", tc.a, tc.b, got, tc.period)
		}
	}
}

func TestUntilReconstructs(t *testing.T) {
	// Adding the period components in years, months, days order takes
	// the start date to the end date.
	pairs := [][2]solarhijri.Date{
		{nd(1399, 12, 29), nd(1400, 1, 1)},
		{nd(1400, 1, 25), nd(1400, 3, 5)},
		{nd(1395, 6, 10), nd(1403, 2, 20)},
		{nd(1400, 6, 31), nd(1403, 12, 30)},
		{nd(-10, 2, 5), nd(5, 8, 20)},
	}
	for _, pair := range pairs {
		a, b := pair[0], pair[1]
		p := a.Until(b)
		d := add(t, a, int64(p.Years), solarhijri.Years)
		d = add(t, d, int64(p.Months), solarhijri.Months)
		d = add(t, d, int64(p.Days), solarhijri.Days)
		if d != b {
			t.Errorf("%v + %v: got %v, want %v", a, p, d, b)
		}
	}
}

func TestPeriodString(t *testing.T) {
	for _, tc := range []struct {
		period solarhijri.Period
		str    string
	}{
		{solarhijri.Period{}, "P0Y0M0D"},
		{solarhijri.Period{Years: 7, Months: 8, Days: 10}, "P7Y8M10D"},
		{solarhijri.Period{Months: -1, Days: -26}, "P0Y-1M-26D"},
	} {
		if got := tc.period.String(); got != tc.str {
			t.Errorf("got %q, want %q", got, tc.str)
		}
	}
	if !(solarhijri.Period{}).IsZero() {
		t.Errorf("expected zero period")
	}
}
