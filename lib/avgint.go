package lib

import "math"

// AverageInt64 compute running min, max, mean and deviation over int64
// samples without storing them.
type AverageInt64 struct {
	n      int64
	minval int64
	maxval int64
	sum    int64
	sumsq  float64
}

// Add a sample.
func (av *AverageInt64) Add(sample int64) {
	if av.n == 0 || sample < av.minval {
		av.minval = sample
	}
	if av.n == 0 || sample > av.maxval {
		av.maxval = sample
	}
	av.n++
	av.sum += sample
	av.sumsq += float64(sample) * float64(sample)
}

// Min return the smallest sample, zero if there are no samples.
func (av *AverageInt64) Min() int64 { return av.minval }

// Max return the largest sample, zero if there are no samples.
func (av *AverageInt64) Max() int64 { return av.maxval }

// Samples return the number of samples added so far.
func (av *AverageInt64) Samples() int64 { return av.n }

// Sum return the sum of all samples.
func (av *AverageInt64) Sum() int64 { return av.sum }

// Mean return the integer average of all samples.
func (av *AverageInt64) Mean() int64 {
	if av.n == 0 {
		return 0
	}
	return int64(float64(av.sum) / float64(av.n))
}

// Variance of samples from their mean.
func (av *AverageInt64) Variance() float64 {
	if av.n == 0 {
		return 0
	}
	nf, meanf := float64(av.n), float64(av.sum)/float64(av.n)
	if v := (av.sumsq / nf) - (meanf * meanf); v > 0 {
		return v
	}
	return 0
}

// SD standard deviation of samples.
func (av *AverageInt64) SD() float64 {
	return math.Sqrt(av.Variance())
}

// Clone return a copy.
func (av *AverageInt64) Clone() *AverageInt64 {
	newav := *av
	return &newav
}

// Stats return samples, min, max, mean, variance and stddeviance.
func (av *AverageInt64) Stats() map[string]interface{} {
	return map[string]interface{}{
		"samples":     av.Samples(),
		"min":         av.Min(),
		"max":         av.Max(),
		"mean":        av.Mean(),
		"variance":    av.Variance(),
		"stddeviance": av.SD(),
	}
}
