// Copyright 2025 unilogic.ir. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solarhijri

import (
	"fmt"
	"strconv"
	"strings"
)

const expectedDateFormats = "1403/01/02 or Farvardin-02-1403"

// ParseNumericDate parses a date in the format '1403/01/02' with error
// checking for valid month and day. The year may be negative.
func ParseNumericDate(val string) (Date, error) {
	parts := strings.Split(val, "/")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid value %q, expected format '1403/01/02'", val)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, fmt.Errorf("invalid year: %s", parts[0])
	}
	month, err := ParseNumericMonth(parts[1])
	if err != nil {
		return Date{}, err
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, fmt.Errorf("invalid day: %s", parts[2])
	}
	return New(year, month, day)
}

// ParseNamedDate parses a date in the format 'Farvardin-02-1403' with
// error checking for valid month and day. Month names may be abbreviated
// to any unambiguous prefix of at least three characters. Only positive
// years can be expressed in this format.
func ParseNamedDate(val string) (Date, error) {
	parts := strings.Split(val, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid value %q, expected format 'Farvardin-02-1403'", val)
	}
	month, err := ParseMonth(parts[0])
	if err != nil {
		return Date{}, err
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, fmt.Errorf("invalid day: %s", parts[1])
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, fmt.Errorf("invalid year: %s", parts[2])
	}
	return New(year, month, day)
}

// ParseDate parses a date in either numeric or named format.
func ParseDate(val string) (Date, error) {
	if len(val) == 0 {
		return Date{}, fmt.Errorf("empty value, expected %s", expectedDateFormats)
	}
	if strings.Contains(val, "/") {
		return ParseNumericDate(val)
	}
	return ParseNamedDate(val)
}

// Parse parses a date in the formats '1403/01/02' or 'Farvardin-02-1403'.
func (d *Date) Parse(val string) error {
	date, err := ParseDate(val)
	if err != nil {
		return err
	}
	*d = date
	return nil
}

// Numeric returns the date in the numeric format accepted by Parse,
// eg. '1403/01/02'.
func (d Date) Numeric() string {
	return fmt.Sprintf("%d/%02d/%02d", d.year, int(d.month), d.day)
}
