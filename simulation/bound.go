package simulation

import "math"

// Bound is the classical approximation of the probability that an attacker
// with hash-power fraction p ever catches up from k blocks behind. An
// attacker with at least half of the hash power always does.
func Bound(p float64, k int) float64 {
	if p >= 0.5 {
		return 1.0
	}
	return math.Pow(p/(1-p), float64(k))
}
