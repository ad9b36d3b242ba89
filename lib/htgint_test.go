package lib

import "testing"
import "reflect"
import "strings"

func TestHistogramInt(t *testing.T) {
	h := NewhistorgramInt64(3, 97, 3)
	for i := 1; i <= 100; i++ {
		h.Add(int64(i))
	}

	if x, y := int64(1), h.Min(); x != y {
		t.Errorf("Min() expected %v, got %v", x, y)
	} else if x, y := int64(100), h.Max(); x != y {
		t.Errorf("Max() expected %v, got %v", x, y)
	} else if x, y := int64(100), h.Samples(); x != y {
		t.Errorf("Samples() expected %v, got %v", x, y)
	} else if x, y := int64(100*101)/2, h.Sum(); x != y {
		t.Errorf("Sum() expected %v, got %v", x, y)
	} else if x, y := int64(50), h.Mean(); x != y {
		t.Errorf("Mean() expected %v, got %v", x, y)
	} else if x, y := int64(833), h.Variance(); x != y {
		t.Errorf("Variance() expected %v, got %v", x, y)
	} else if x, y := int64(28), h.SD(); x != y {
		t.Errorf("SD() expected %v, got %v", x, y)
	}

	samples := []int64{0, 1, 2, 3, 4, 5, 6, 7, 9, 10, 11, 12, 13, 14, 15, 16, 17}

	ref := map[string]int64{"12": 11, "15": 14, "+": 17, "6": 6, "9": 8}
	h = NewhistorgramInt64(6, 15, 3)
	for _, sample := range samples {
		h.Add(sample)
	}
	if data := h.Stats(); !reflect.DeepEqual(ref, data) {
		t.Errorf("expected %v, got %v", ref, data)
	}

	ref = map[string]int64{"9": 8, "12": 11, "0": 0, "3": 3, "6": 6, "+": 17}
	h = NewhistorgramInt64(2, 14, 3)
	for _, sample := range samples {
		h.Add(sample)
	}
	if data := h.Stats(); !reflect.DeepEqual(ref, data) {
		t.Errorf("expected %v, got %v", ref, data)
	}

	clone := h.Clone()
	clone.Add(100)
	if h.Samples() == clone.Samples() {
		t.Errorf("clone shares state with source")
	} else if x := h.Stats()["+"]; x != 17 {
		t.Errorf("expected %v, got %v", 17, x)
	}
}

func TestHistogramEmpty(t *testing.T) {
	h := NewhistorgramInt64(1, 256, 1)
	if x := len(h.Stats()); x != 0 {
		t.Errorf("unexpected %v", h.Stats())
	} else if x := h.Mean(); x != 0 {
		t.Errorf("unexpected %v", x)
	}
	s := h.Logstring()
	if !strings.Contains(s, `"samples": 0`) {
		t.Errorf("unexpected %v", s)
	}
}

func TestHistogramLogstring(t *testing.T) {
	h := NewhistorgramInt64(0, 10, 5)
	for _, sample := range []int64{1, 2, 6, 11} {
		h.Add(sample)
	}
	ref := `{"max": 11,"mean": 5,"min": 1,"samples": 4,"stddeviance": 3,` +
		`"variance": 15,"histogram": {"0": 0,"5": 2,"10": 3,"+": 4}}`
	if s := h.Logstring(); s != ref {
		t.Errorf("expected %v, got %v", ref, s)
	}
}

func TestAverageInt(t *testing.T) {
	av := &AverageInt64{}
	for i := 1; i <= 100; i++ {
		av.Add(int64(i))
	}
	if x := av.Variance(); x != 833.25 {
		t.Errorf("expected %v, got %v", 833.25, x)
	} else if x := av.Clone(); x.Sum() != av.Sum() {
		t.Errorf("expected %v, got %v", av.Sum(), x.Sum())
	}
	stats := av.Stats()
	if x := stats["min"].(int64); x != 1 {
		t.Errorf("expected %v, got %v", 1, x)
	} else if x := stats["max"].(int64); x != 100 {
		t.Errorf("expected %v, got %v", 100, x)
	}
}

func BenchmarkHtgintAdd(b *testing.B) {
	htg := NewhistorgramInt64(1, int64(b.N)+1, 5)
	for i := 0; i < b.N; i++ {
		htg.Add(int64(i))
	}
}
