// SPDX-License-Identifier: MPL-2.0

package suite

import "strconv"

// shortCount abbreviates exact multiples of a thousand or a million
// (10000000 -> "10M", 5000 -> "5K"); anything else prints in full.
func shortCount(n int) string {
	v := int64(n)
	switch {
	case v != 0 && v%1_000_000 == 0:
		return strconv.FormatInt(v/1_000_000, 10) + "M"
	case v != 0 && v%1_000 == 0:
		return strconv.FormatInt(v/1_000, 10) + "K"
	default:
		return strconv.FormatInt(v, 10)
	}
}
