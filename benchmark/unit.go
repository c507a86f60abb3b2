// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package benchmark

import (
	"fmt"
	"time"
)

// Unit is the duration unit elapsed time is logged in.
type Unit struct {
	duration time.Duration
	label    string
}

var (
	Nanoseconds  = Unit{time.Nanosecond, "nanoseconds"}
	Microseconds = Unit{time.Microsecond, "microseconds"}
	Milliseconds = Unit{time.Millisecond, "milliseconds"}
	Seconds      = Unit{time.Second, "seconds"}
	Minutes      = Unit{time.Minute, "minutes"}
	Hours        = Unit{time.Hour, "hours"}
)

var units = [...]Unit{Nanoseconds, Microseconds, Milliseconds, Seconds, Minutes, Hours}

// ParseUnit finds a Unit by its label.
func ParseUnit(label string) (Unit, error) {
	for _, unit := range units {
		if unit.label == label {
			return unit, nil
		}
	}
	return Unit{}, fmt.Errorf("benchmark: unknown unit %q", label)
}

// String is the label of u, or "units" for the zero Unit.
func (u Unit) String() string {
	if u.label == "" {
		return "units"
	}
	return u.label
}

// Count truncates d to a whole number of u. The zero Unit counts nanoseconds.
func (u Unit) Count(d time.Duration) int64 {
	if u.duration == 0 {
		return int64(d)
	}
	return int64(d / u.duration)
}
