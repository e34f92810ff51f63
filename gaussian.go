package xrand

import (
	"math"
)

// Gaussian returns a normally distributed value with mean 0 and standard
// deviation 1, using the polar Box-Muller method. Each draw produces two
// independent deviates; the second is returned by the next call.
func (src *Source) Gaussian() float64 {
	if src.haveExtraGaussian {
		src.haveExtraGaussian = false
		return src.extraGaussian
	}

	gaussian, extra := polar(src.Float64)

	src.extraGaussian = extra
	src.haveExtraGaussian = true

	return gaussian
}

func (src *Source) GaussianMeanStd(mean, stdDev float64) float64 {
	return src.Gaussian()*stdDev + mean
}

// GaussianClamped returns GaussianMeanStd(mean, stdDev) clamped to [min, max].
func (src *Source) GaussianClamped(mean, stdDev, min, max float64) (float64, error) {
	if max < min {
		return 0, errMaxBelowMin(min, max)
	}
	return clamp(src.GaussianMeanStd(mean, stdDev), min, max), nil
}

func (src *Source) GaussianFloat32() float32 {
	return float32(src.Gaussian())
}

func (src *Source) GaussianFloat32MeanStd(mean, stdDev float32) float32 {
	return float32(src.Gaussian())*stdDev + mean
}

func (src *Source) GaussianFloat32Clamped(mean, stdDev, min, max float32) (float32, error) {
	if max < min {
		return 0, errMaxBelowMin(min, max)
	}
	return float32(clamp(float64(src.GaussianFloat32MeanStd(mean, stdDev)), float64(min), float64(max))), nil
}

// polar draws pairs of uniforms in (-1, 1) until they fall strictly inside the
// unit circle (and not on its centre), then maps them to two independent
// standard normal deviates.
func polar(uniform func() float64) (float64, float64) {
	var u1, u2, s float64
	for {
		u1 = 2*uniform() - 1
		u2 = 2*uniform() - 1
		s = u1*u1 + u2*u2
		if s < 1 && s != 0 {
			break
		}
	}

	multiplier := math.Sqrt(-2 * math.Log(s) / s)

	return u1 * multiplier, u2 * multiplier
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
