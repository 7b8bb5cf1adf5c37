package service

import "math"

// toCents converts a decimal money amount to cents, rounding half away
// from zero so 0.1+0.2 style float noise never loses a cent.
func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
