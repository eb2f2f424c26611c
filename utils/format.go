package utils

import (
	"fmt"
	"math"
	"strconv"
)

// PadCount renders a traveler count zero-padded to two digits.
func PadCount(n int) string {
	if n < 0 {
		n = 0
	}
	return fmt.Sprintf("%02d", n)
}

// FormatAmount renders a monetary amount with thousands separators,
// e.g. 47500 -> "47,500".
func FormatAmount(amount float64) string {
	neg := amount < 0
	n := int64(math.Round(math.Abs(amount)))
	s := strconv.FormatInt(n, 10)

	var out []byte
	for i, d := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

// PerPerson splits a total across travelers, rounded to the nearest unit.
// Zero travelers yields the full amount.
func PerPerson(total float64, travelers int) float64 {
	if travelers <= 0 {
		return math.Round(total)
	}
	return math.Round(total / float64(travelers))
}
