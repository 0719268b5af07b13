// Package analysis provides frequency analysis of recorded particle
// trajectories, chiefly to spot the wall-bounce oscillation period.
package analysis

import (
	"math"
	"math/cmplx"
)

// FFT computes the discrete Fourier transform by radix-2
// Cooley-Tukey. The input is zero-padded to the next power of two.
func FFT(data []float64) []complex128 {
	n := nextPow2(len(data))
	padded := make([]complex128, n)
	for i, v := range data {
		padded[i] = complex(v, 0)
	}
	return fft(padded)
}

func fft(x []complex128) []complex128 {
	n := len(x)
	if n <= 1 {
		return x
	}

	even := make([]complex128, n/2)
	odd := make([]complex128, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = x[2*i]
		odd[i] = x[2*i+1]
	}

	feven := fft(even)
	fodd := fft(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = feven[k] + w*fodd[k]
		result[k+n/2] = feven[k] - w*fodd[k]
	}
	return result
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

// PowerSpectrum returns the magnitude of the first half of the
// transform, one bin per frequency up to Nyquist.
func PowerSpectrum(data []float64) []float64 {
	out := FFT(data)
	ps := make([]float64, len(out)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(out[i])
	}
	return ps
}

// DominantFrequency returns the strongest non-DC bin of the power
// spectrum converted to hertz for samples spaced dt apart, and its
// power. It returns 0, 0 when no bin stands out.
func DominantFrequency(data []float64, dt float64) (freq, power float64) {
	if len(data) < 2 || dt <= 0 {
		return 0, 0
	}
	ps := PowerSpectrum(data)
	maxIdx := 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > power {
			power = ps[i]
			maxIdx = i
		}
	}
	if maxIdx == 0 {
		return 0, 0
	}
	n := nextPow2(len(data))
	return float64(maxIdx) / (float64(n) * dt), power
}
