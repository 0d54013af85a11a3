package gamemath

import "github.com/chewxy/math32"

// ValueNoise1D is smooth value noise in [0,1]: hashed lattice values blended
// with a cubic ease.
func ValueNoise1D(x float32, seed int32) float32 {
	x0 := int32(math32.Floor(x))
	t := x - float32(x0)
	return lerp(hash1D(x0, seed), hash1D(x0+1, seed), smoothStep(t))
}

// hash1D maps a lattice coordinate to a deterministic value in [0,1].
func hash1D(x, seed int32) float32 {
	n := x*374761393 + seed*362437
	n = (n ^ (n >> 13)) * 1274126177
	n = n ^ (n >> 16)
	const invMaxInt = 1.0 / 2147483647.0
	return float32(n&0x7fffffff) * float32(invMaxInt)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// smoothStep is 3t^2 - 2t^3 on [0,1].
func smoothStep(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}
