// Copyright 2025 unilogic.ir. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package schedule provides support for evaluating annually recurring
// events in the Solar Hijri calendar.
package schedule

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"cloudeng.io/algo/container/heap"
	"github.com/unilogic/solarhijri"
)

// Annual is an event that recurs on the same date every Solar Hijri
// year. An event on Esfand 30 falls on Esfand 29 in non-leap years.
type Annual struct {
	Name  string
	Month solarhijri.Month
	Day   int
}

// Validate returns an error if the month or day can never name a valid
// date.
func (a Annual) Validate() error {
	if a.Month < 1 || a.Month > 12 {
		return fmt.Errorf("invalid month: %d", int(a.Month))
	}
	if a.Day < 1 || a.Day > 31 {
		return fmt.Errorf("invalid day: %d", a.Day)
	}
	return nil
}

// Evaluate returns the date of the event in the specified year, with
// the day clamped to the length of the month in that year.
func (a Annual) Evaluate(year int) solarhijri.Date {
	day := min(a.Day, solarhijri.DaysInMonth(year, a.Month))
	d, _ := solarhijri.New(year, a.Month, day)
	return d
}

// AnnualList is a set of annually recurring events.
type AnnualList []Annual

func (al AnnualList) String() string {
	var out strings.Builder
	for i, a := range al {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(a.Name)
	}
	return out.String()
}

// Validate validates every event in the list.
func (al AnnualList) Validate() error {
	for _, a := range al {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("%v: %w", a.Name, err)
		}
	}
	return nil
}

// Evaluate returns the dates of all of the events in the list for the
// specified year, sorted into calendar order.
func (al AnnualList) Evaluate(year int) []solarhijri.Date {
	dates := make([]solarhijri.Date, len(al))
	for i, a := range al {
		dates[i] = a.Evaluate(year)
	}
	slices.SortFunc(dates, solarhijri.Date.Compare)
	return dates
}

// Occurrence is a single occurrence of a named annual event.
type Occurrence struct {
	Date solarhijri.Date
	Name string
}

// Occurrences returns an iterator that yields every occurrence of the
// events in the list from the from date through the to date inclusive,
// in epoch day order. Events sharing a date are yielded in arbitrary
// order relative to each other.
func (al AnnualList) Occurrences(from, to solarhijri.Date) iter.Seq[Occurrence] {
	return func(yield func(Occurrence) bool) {
		h := heap.NewMin(heap.WithSliceCap[int64, Annual](len(al)))
		for _, a := range al {
			first := a.Evaluate(from.Year())
			if first.Before(from) {
				first = a.Evaluate(from.Year() + 1)
			}
			if first.After(to) {
				continue
			}
			h.Push(first.EpochDay(), a)
		}
		for h.Len() > 0 {
			ed, a := h.Pop()
			d := solarhijri.NewFromEpochDay(ed)
			if !yield(Occurrence{Date: d, Name: a.Name}) {
				return
			}
			next := a.Evaluate(d.Year() + 1)
			if !next.After(to) {
				h.Push(next.EpochDay(), a)
			}
		}
	}
}
