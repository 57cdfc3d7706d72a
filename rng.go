package sicle

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when no seed/RNG is supplied.
// The value is arbitrary but stable to keep reproducible defaults.
//
// Grounded on tsp/rng.go's rngFromSeed/defaultRNGSeed pattern: the RNG is
// always a constructor argument, never a package-level singleton.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand. seed==0 is treated as
// "unset" and maps to defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}
