// Package window derives the visible tail of a sample sequence.
package window

import (
	"math"

	"github.com/five82/pinmon/internal/category"
)

// MinSize is the floor applied to non-positive window sizes.
const MinSize = 1

// View is the most recent slice of one category's samples.
//
// Start and End are 0-based offsets into the full sequence with
// End = len(sequence) and End-Start = len(Values). Size is the effective
// window size after flooring.
type View struct {
	Category category.Category `json:"category"`
	Values   []float64         `json:"values"`
	Start    int               `json:"start"`
	End      int               `json:"end"`
	Size     int               `json:"size"`
}

// Select returns the last size samples of seq. Values is a copy.
func Select(seq []float64, size int) View {
	if size < MinSize {
		size = MinSize
	}
	end := len(seq)
	start := end - size
	if start < 0 {
		start = 0
	}
	values := make([]float64, end-start)
	copy(values, seq[start:end])
	return View{Values: values, Start: start, End: end, Size: size}
}

// Empty reports whether the view holds no samples.
func (v View) Empty() bool { return len(v.Values) == 0 }

// Range returns the 1-based inclusive ordinals to label the view with. An
// empty view spans [1, Size] so an empty chart keeps stable bounds.
func (v View) Range() (first, last int) {
	if v.Empty() {
		size := v.Size
		if size < MinSize {
			size = MinSize
		}
		return 1, size
	}
	return v.Start + 1, v.End
}

// Stats summarises the visible values.
type Stats struct {
	Min  float64
	Max  float64
	Mean float64
	Last float64
}

// Stats computes min, max, mean and last over Values. It returns the zero
// value for an empty view.
func (v View) Stats() Stats {
	if v.Empty() {
		return Stats{}
	}
	st := Stats{Min: math.Inf(1), Max: math.Inf(-1)}
	var sum float64
	for _, x := range v.Values {
		sum += x
		st.Min = math.Min(st.Min, x)
		st.Max = math.Max(st.Max, x)
	}
	st.Mean = sum / float64(len(v.Values))
	st.Last = v.Values[len(v.Values)-1]
	return st
}
