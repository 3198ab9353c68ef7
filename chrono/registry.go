// Copyright 2025 unilogic.ir. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package chrono provides a registry of calendar systems keyed by their
// identifiers. Registration is optional and best effort: no calendar
// operation depends on it and failures are logged rather than fatal.
package chrono

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

// Chronology is implemented by calendar systems that can be registered.
// ID is the calendar's unique identifier, eg. "Solar-hijri", and
// CalendarType is its Unicode LDML calendar type, eg. "persian".
type Chronology interface {
	ID() string
	CalendarType() string
}

// Registry holds a set of chronologies. It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	byID   map[string]Chronology
	byType map[string]Chronology
}

// NewRegistry returns a new, empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   map[string]Chronology{},
		byType: map[string]Chronology{},
	}
}

// Register adds the supplied chronologies to the registry. Chronologies
// whose ID is already registered are skipped and a warning is logged to
// the logger in ctx. The returned error records any skipped
// chronologies; callers for whom registration is optional may ignore
// it.
func (r *Registry) Register(ctx context.Context, chronologies ...Chronology) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	errs := errors.M{}
	for _, c := range chronologies {
		id := c.ID()
		if _, ok := r.byID[id]; ok {
			ctxlog.Logger(ctx).Warn("chronology already registered", "id", id)
			errs.Append(fmt.Errorf("chronology already registered: %v", id))
			continue
		}
		r.byID[id] = c
		if ct := c.CalendarType(); ct != "" {
			r.byType[ct] = c
		}
	}
	return errs.Err()
}

// Lookup returns the chronology registered with the specified ID.
func (r *Registry) Lookup(id string) (Chronology, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	return c, ok
}

// LookupCalendarType returns the chronology registered with the
// specified calendar type.
func (r *Registry) LookupCalendarType(calendarType string) (Chronology, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byType[calendarType]
	return c, ok
}

// IDs returns the IDs of all registered chronologies in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
