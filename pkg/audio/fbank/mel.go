package fbank

import "math"

// hamming returns a symmetric Hamming window of length n.
func hamming(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for i := range w {
		w[i] = 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	}
	return w
}

// HTK mel scale.
func hzToMel(hz float64) float64  { return 2595 * math.Log10(1+hz/700) }
func melToHz(mel float64) float64 { return 700 * (math.Pow(10, mel/2595) - 1) }

// melFilter is a triangular filter stored as its non-zero span of FFT bins.
type melFilter struct {
	first   int
	weights []float64
}

func (f melFilter) apply(power []float64) float64 {
	var sum float64
	for i, w := range f.weights {
		sum += w * power[f.first+i]
	}
	return sum
}

// melFilters builds n triangular filters over the fftSize/2+1 power bins,
// with edges spaced evenly on the mel scale between low and high Hz. Each
// filter spans at least two bins so narrow low-frequency bands never
// collapse.
func melFilters(n, fftSize, sampleRate int, low, high float64) []melFilter {
	bins := fftSize/2 + 1
	lo, hi := hzToMel(low), hzToMel(high)

	edges := make([]int, n+2)
	for i := range edges {
		hz := melToHz(lo + (hi-lo)*float64(i)/float64(n+1))
		edges[i] = min(int(math.Round(hz*float64(fftSize)/float64(sampleRate))), bins-1)
		if i > 0 && edges[i] <= edges[i-1] {
			edges[i] = edges[i-1] + 1
		}
	}

	filters := make([]melFilter, n)
	for m := range filters {
		left, center, right := edges[m], edges[m+1], edges[m+2]
		f := melFilter{first: left}
		for k := left; k <= min(right, bins-1); k++ {
			if k < center {
				f.weights = append(f.weights, float64(k-left)/float64(center-left))
			} else {
				f.weights = append(f.weights, float64(right-k)/float64(right-center))
			}
		}
		filters[m] = f
	}
	return filters
}
