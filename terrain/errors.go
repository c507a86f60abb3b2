// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import "errors"

var (
	// ErrIndexOutOfRange is returned by positional accessors given a position outside the heightmap.
	ErrIndexOutOfRange = errors.New("terrain: index out of range")
	// ErrZeroOffset is returned when a generator is configured with a zero (or NaN) offset.
	ErrZeroOffset = errors.New("terrain: offset must be non-zero")
)
