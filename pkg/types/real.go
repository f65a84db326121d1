// SPDX-License-Identifier: MPL-2.0

package types

import "strconv"

// FormatReal renders a float the way analysis decks write reals: shortest
// exact decimal form, with ".0" appended to integral values so they read as
// reals rather than counts (2 -> "2.0", 0.1 -> "0.1", 1e-07 -> "1e-07").
func FormatReal(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if _, err := strconv.Atoi(s); err == nil {
		s += ".0"
	}
	return s
}
