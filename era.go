// Copyright 2025 unilogic.ir. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solarhijri

import "fmt"

// Era is an era in the Solar Hijri calendar. Proleptic years greater
// than or equal to 1 belong to the current era, AH, and all earlier
// years to the era before it, BH.
type Era int

const (
	// BH is the era before the Hijra, with the numeric value 0.
	BH Era = iota
	// AH is the current era, Anno Hegirae, with the numeric value 1.
	AH
)

// EraOf returns the Era for the specified numeric value.
func EraOf(value int) (Era, error) {
	switch value {
	case 0:
		return BH, nil
	case 1:
		return AH, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrInvalidEra, value)
}

func (e Era) String() string {
	switch e {
	case BH:
		return "BH"
	case AH:
		return "AH"
	}
	return fmt.Sprintf("Era(%d)", int(e))
}

// ProlepticYear returns the proleptic year for a year of the specified
// era. Year 1 BH is year 0, year 2 BH is year -1 and so on.
func ProlepticYear(era Era, yearOfEra int) int {
	if era == AH {
		return yearOfEra
	}
	return 1 - yearOfEra
}

// eraOfYear returns the era that the proleptic year falls in.
func eraOfYear(year int) Era {
	if year >= 1 {
		return AH
	}
	return BH
}
