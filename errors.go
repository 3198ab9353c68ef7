// Copyright 2025 unilogic.ir. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solarhijri

import "errors"

var (
	// ErrInvalidDate is returned when a year, month, day combination
	// does not name a valid calendar date.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidFieldValue is returned when a value lies outside the
	// declared range of the field it is being assigned to.
	ErrInvalidFieldValue = errors.New("invalid field value")

	// ErrInvalidEra is returned for era values other than 0 and 1.
	ErrInvalidEra = errors.New("invalid era")

	// ErrUnsupportedField is returned for fields not supported by this
	// calendar.
	ErrUnsupportedField = errors.New("unsupported field")

	// ErrUnsupportedUnit is returned for units not supported by this
	// calendar.
	ErrUnsupportedUnit = errors.New("unsupported unit")

	// ErrOverflow is returned when arithmetic on a date exceeds the
	// representable range.
	ErrOverflow = errors.New("arithmetic overflow")
)
