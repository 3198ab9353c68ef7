// Copyright 2025 unilogic.ir. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solarhijri_test

import (
	"testing"

	"github.com/unilogic/solarhijri"
)

func nd(year, month, day int) solarhijri.Date {
	d, err := solarhijri.New(year, solarhijri.Month(month), day)
	if err != nil {
		panic(err)
	}
	return d
}

func add(t *testing.T, d solarhijri.Date, amount int64, unit solarhijri.Unit) solarhijri.Date {
	t.Helper()
	r, err := d.Add(amount, unit)
	if err != nil {
		t.Fatalf("%v + %d %v: %v", d, amount, unit, err)
	}
	return r
}

func get(t *testing.T, d solarhijri.Date, field solarhijri.Field) int64 {
	t.Helper()
	v, err := d.Get(field)
	if err != nil {
		t.Fatalf("%v: %v: %v", d, field, err)
	}
	return v
}
