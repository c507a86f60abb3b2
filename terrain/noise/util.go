// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import "github.com/chewxy/math32"

func clamp(f float32) float32 {
	return math32.Max(math32.Min(f, 1), 0)
}
