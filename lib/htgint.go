package lib

import "fmt"
import "sort"
import "strconv"
import "strings"

// HistogramInt64 bucket int64 samples into fixed width bins between
// [from, till). Samples below `from` land in the first bin, samples at
// or above `till` land in the last bin, marked as "+".
type HistogramInt64 struct {
	AverageInt64
	from    int64
	till    int64
	width   int64
	buckets []int64
}

// NewhistorgramInt64 return a new histogram, `from` and `till` are
// rounded down to a multiple of `width`.
func NewhistorgramInt64(from, till, width int64) *HistogramInt64 {
	if width <= 0 {
		panicerr("histogram width %v must be > 0", width)
	}
	from, till = (from/width)*width, (till/width)*width
	if till < from {
		panicerr("histogram till %v < from %v", till, from)
	}
	h := &HistogramInt64{from: from, till: till, width: width}
	h.buckets = make([]int64, ((till-from)/width)+2)
	return h
}

// Add a sample to histogram.
func (h *HistogramInt64) Add(sample int64) {
	h.AverageInt64.Add(sample)
	h.buckets[h.bucket(sample)]++
}

func (h *HistogramInt64) bucket(sample int64) int {
	switch {
	case sample < h.from:
		return 0
	case sample >= h.till:
		return len(h.buckets) - 1
	}
	return int((sample-h.from)/h.width) + 1
}

// Variance return the integer variance, the embedded float variance is
// available via AverageInt64.
func (h *HistogramInt64) Variance() int64 {
	return int64(h.AverageInt64.Variance())
}

// SD return the integer standard deviation.
func (h *HistogramInt64) SD() int64 {
	return int64(h.AverageInt64.SD())
}

// Clone copies the entire instance.
func (h *HistogramInt64) Clone() *HistogramInt64 {
	newh := *h
	newh.buckets = append([]int64(nil), h.buckets...)
	return &newh
}

// Stats return the cumulative count of samples at each bucket
// boundary, upto the last non-empty bucket which is keyed as "+".
func (h *HistogramInt64) Stats() map[string]int64 {
	m := make(map[string]int64)
	last := -1
	for i := len(h.buckets) - 1; i >= 0; i-- {
		if h.buckets[i] > 0 {
			last = i
			break
		}
	}
	cumm := int64(0)
	for i := 0; i <= last; i++ {
		cumm += h.buckets[i]
		if i == last {
			m["+"] = cumm
			break
		}
		m[strconv.Itoa(int(h.from+int64(i)*h.width))] = cumm
	}
	return m
}

// Fullstats include samples, min, max, mean, variance, stddeviance
// along with the histogram.
func (h *HistogramInt64) Fullstats() map[string]interface{} {
	hmap := make(map[string]interface{})
	for k, v := range h.Stats() {
		hmap[k] = v
	}
	return map[string]interface{}{
		"samples":     h.Samples(),
		"min":         h.Min(),
		"max":         h.Max(),
		"mean":        h.Mean(),
		"variance":    h.Variance(),
		"stddeviance": h.SD(),
		"histogram":   hmap,
	}
}

// Logstring return Fullstats as json-like string with sorted keys.
func (h *HistogramInt64) Logstring() string {
	stats := h.Fullstats()
	keys := make([]string, 0, len(stats))
	for k := range stats {
		if k != "histogram" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	ss := make([]string, 0, len(keys)+1)
	for _, key := range keys {
		ss = append(ss, fmt.Sprintf(`"%v": %v`, key, stats[key]))
	}

	histogram := h.Stats()
	bins := make([]int, 0, len(histogram))
	for k := range histogram {
		if n, err := strconv.Atoi(k); err == nil {
			bins = append(bins, n)
		}
	}
	sort.Ints(bins)
	hs := make([]string, 0, len(bins)+1)
	for _, bin := range bins {
		key := strconv.Itoa(bin)
		hs = append(hs, fmt.Sprintf(`"%v": %v`, key, histogram[key]))
	}
	if plus, ok := histogram["+"]; ok {
		hs = append(hs, fmt.Sprintf(`"+": %v`, plus))
	}
	ss = append(ss, fmt.Sprintf(`"histogram": {%v}`, strings.Join(hs, ",")))
	return "{" + strings.Join(ss, ",") + "}"
}
