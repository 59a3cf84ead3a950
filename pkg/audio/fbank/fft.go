package fbank

import (
	"math"
	"math/bits"
	"math/cmplx"
)

// fft is a radix-2 transform plan for one power-of-two size. The
// bit-reversal table and twiddle factors are computed once and reused for
// every frame.
type fft struct {
	n       int
	rev     []int
	twiddle []complex128 // exp(-2πik/n) for k < n/2
}

// newFFT returns a plan for the smallest power of two >= size.
func newFFT(size int) *fft {
	n := 1
	if size > 1 {
		n = 1 << bits.Len(uint(size-1))
	}
	logN := bits.TrailingZeros(uint(n))
	f := &fft{
		n:       n,
		rev:     make([]int, n),
		twiddle: make([]complex128, n/2),
	}
	for i := range f.rev {
		f.rev[i] = int(bits.Reverse(uint(i)) >> (bits.UintSize - logN))
	}
	for k := range f.twiddle {
		f.twiddle[k] = cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
	}
	return f
}

// transform runs the forward transform of x in place. len(x) must be f.n.
func (f *fft) transform(x []complex128) {
	for i, r := range f.rev {
		if i < r {
			x[i], x[r] = x[r], x[i]
		}
	}
	for size := 2; size <= f.n; size <<= 1 {
		half, step := size/2, f.n/size
		for start := 0; start < f.n; start += size {
			for k := range half {
				u, v := start+k, start+k+half
				t := f.twiddle[k*step] * x[v]
				x[v] = x[u] - t
				x[u] += t
			}
		}
	}
}

// power writes |x[i]|² for the non-negative frequency bins into out, which
// must hold f.n/2+1 values.
func (f *fft) power(x []complex128, out []float64) {
	for i := range out {
		re, im := real(x[i]), imag(x[i])
		out[i] = re*re + im*im
	}
}
