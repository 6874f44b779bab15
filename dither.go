package sweep

import "math"

// ditherSeed is the fixed xorshift128+ seed. Seeding once per
// quantization pass keeps dithered output reproducible across runs.
const ditherSeed = 0xC0DEC0DEC0DEC0DE

// ditherer adds uniform noise in [0, 1) before 8-bit truncation, which
// turns quantization banding into unstructured grain.
type ditherer struct {
	s0, s1 uint64
}

func newDitherer() *ditherer {
	return &ditherer{s0: ditherSeed, s1: ditherSeed}
}

// next advances the xorshift128+ generator.
func (d *ditherer) next() uint64 {
	result := d.s0 + d.s1
	t := d.s0 ^ (d.s0 << 23)
	d.s0 = d.s1
	d.s1 = t ^ d.s1 ^ (t >> 18) ^ (d.s1 >> 5)
	return result
}

// nextFloat returns a uniform float in [0, 1).
func (d *ditherer) nextFloat() float64 {
	return math.Ldexp(float64(d.next()), -64)
}

// dither quantizes a channel value in [0, 1] to 8 bits with noise.
func (d *ditherer) dither(value float64) uint8 {
	return uint8(clamp255(value*255 + d.nextFloat()))
}
