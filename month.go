// Copyright 2025 unilogic.ir. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solarhijri

import (
	"fmt"
	"strconv"
	"strings"
)

// Month is a month of the Solar Hijri year in the range Farvardin (1)
// to Esfand (12).
type Month int

const (
	Farvardin Month = 1 + iota
	Ordibehesht
	Khordad
	Tir
	Mordad
	Shahrivar
	Mehr
	Aban
	Azar
	Dey
	Bahman
	Esfand
)

var months = []string{
	"farvardin",
	"ordibehesht",
	"khordad",
	"tir",
	"mordad",
	"shahrivar",
	"mehr",
	"aban",
	"azar",
	"dey",
	"bahman",
	"esfand",
}

var monthNames = []string{
	"Farvardin",
	"Ordibehesht",
	"Khordad",
	"Tir",
	"Mordad",
	"Shahrivar",
	"Mehr",
	"Aban",
	"Azar",
	"Dey",
	"Bahman",
	"Esfand",
}

func (m Month) String() string {
	if m < Farvardin || m > Esfand {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return monthNames[m-1]
}

// ParseNumericMonth parses a 1 or 2 digit numeric month value in the
// range 1-12.
func ParseNumericMonth(val string) (Month, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid month: %s", val)
	}
	if n < 1 || n > 12 {
		return 0, fmt.Errorf("invalid month: %d", n)
	}
	return Month(n), nil
}

// ParseMonth parses a month name of the form "Far" to "Esf" or any
// longer prefix of "Farvardin" to "Esfand" in either lower or upper
// case.
func ParseMonth(val string) (Month, error) {
	lc := strings.ToLower(val)
	if len(lc) < 3 {
		return 0, fmt.Errorf("invalid month: %s", val)
	}
	for i := range months {
		if strings.HasPrefix(months[i], lc) {
			return Month(i + 1), nil
		}
	}
	return 0, fmt.Errorf("invalid month: %s", val)
}

// Parse parses a month in either numeric or month name format.
func (m *Month) Parse(val string) error {
	if n, err := ParseNumericMonth(val); err == nil {
		*m = n
		return nil
	}
	n, err := ParseMonth(val)
	if err != nil {
		return err
	}
	*m = n
	return nil
}
