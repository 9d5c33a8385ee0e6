package sim

// LCG is a linear congruential generator with explicit state. Every random
// draw in the simulation goes through a World-owned LCG value, never a global
// source, so identical seeds replay identical runs.
type LCG struct {
	state uint64
}

// NewLCG seeds a generator. A zero seed is remapped so the stream never
// degenerates.
func NewLCG(seed uint64) LCG {
	if seed == 0 {
		seed = 0x9e3779b97f4a7c15
	}
	return LCG{state: seed}
}

// Next returns the next 31 bits of the stream.
func (r *LCG) Next() uint32 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return uint32(r.state >> 33) // #nosec G115 -- intentional truncation of the LCG state
}

// Intn returns a value in [0, n). n <= 0 returns 0.
func (r *LCG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint32(n)) // #nosec G115 -- n is a small positive count
}

// Float64 returns a value in [0, 1). Next yields 31 bits, so the divisor
// must match or the upper half of the range is never produced.
func (r *LCG) Float64() float64 {
	return float64(r.Next()) / (1 << 31)
}
