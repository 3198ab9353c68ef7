// Copyright 2025 unilogic.ir. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solarhijri_test

import (
	"testing"

	"github.com/unilogic/solarhijri"
)

func TestParseMonth(t *testing.T) {
	for _, tc := range []struct {
		input string
		month solarhijri.Month
	}{
		{"1", solarhijri.Farvardin},
		{"01", solarhijri.Farvardin},
		{"12", solarhijri.Esfand},
		{"far", solarhijri.Farvardin},
		{"Farvardin", solarhijri.Farvardin},
		{"ORDIBEHESHT", solarhijri.Ordibehesht},
		{"kho", solarhijri.Khordad},
		{"tir", solarhijri.Tir},
		{"mor", solarhijri.Mordad},
		{"meh", solarhijri.Mehr},
		{"shahri", solarhijri.Shahrivar},
		{"aba", solarhijri.Aban},
		{"aza", solarhijri.Azar},
		{"dey", solarhijri.Dey},
		{"bah", solarhijri.Bahman},
		{"esf", solarhijri.Esfand},
	} {
		var m solarhijri.Month
		if err := m.Parse(tc.input); err != nil {
			t.Errorf("%v: %v", tc.input, err)
			continue
		}
		if m != tc.month {
			t.Errorf("%v: got %v, want %v", tc.input, m, tc.month)
		}
	}

	for _, tc := range []string{"", "0", "13", "xy", "fa", "tirr", "farvardinn"} {
		var m solarhijri.Month
		if err := m.Parse(tc); err == nil {
			t.Errorf("%v: expected error", tc)
		}
	}

	if got := solarhijri.Mehr.String(); got != "Mehr" {
		t.Errorf("got %q", got)
	}
	if got := solarhijri.Month(0).String(); got != "Month(0)" {
		t.Errorf("got %q", got)
	}
}

func TestParseDate(t *testing.T) {
	for _, tc := range []struct {
		input string
		date  solarhijri.Date
	}{
		{"1403/01/02", nd(1403, 1, 2)},
		{"1403/1/2", nd(1403, 1, 2)},
		{"1403/12/30", nd(1403, 12, 30)},
		{"-12/6/31", nd(-12, 6, 31)},
		{"Farvardin-02-1403", nd(1403, 1, 2)},
		{"esf-30-1403", nd(1403, 12, 30)},
		{"Mehr-30-1400", nd(1400, 7, 30)},
	} {
		var d solarhijri.Date
		if err := d.Parse(tc.input); err != nil {
			t.Errorf("%v: %v", tc.input, err)
			continue
		}
		if d != tc.date {
			t.Errorf("%v: got %v, want %v", tc.input, d, tc.date)
		}
	}

	for _, tc := range []string{
		"",
		"1403",
		"1403/01",
		"1403/13/01",
		"1403/01/00",
		"1404/12/30", // not a leap year
		"1400/7/31",  // Mehr has 30 days
		"Mehr-31-1400",
		"xyz-01-1403",
		"1403-01-02",
	} {
		var d solarhijri.Date
		if err := d.Parse(tc); err == nil {
			t.Errorf("%v: expected error", tc)
		}
	}
}

func TestNumericFormat(t *testing.T) {
	for _, d := range []solarhijri.Date{
		nd(1403, 1, 2),
		nd(1400, 12, 29),
		nd(-12, 6, 31),
	} {
		parsed, err := solarhijri.ParseDate(d.Numeric())
		if err != nil {
			t.Errorf("%v: %v", d.Numeric(), err)
			continue
		}
		if parsed != d {
			t.Errorf("%v: got %v, want %v", d.Numeric(), parsed, d)
		}
	}
}
