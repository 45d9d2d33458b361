// Package record parses single measurement lines of the form "key,value".
package record

import (
	"math"
	"strconv"
	"strings"
)

// Record is one accepted measurement.
type Record struct {
	Key   int
	Value float64
}

// Parse turns a raw line into a Record. Blank or malformed lines are
// rejected with ok=false; a partially written trailing line is just another
// malformed line. Fractional keys are truncated toward zero. Keys outside
// the int32 range and NaN or infinite fields are rejected rather than kept
// as orphan categories.
func Parse(line string) (rec Record, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Record{}, false
	}
	rawKey, rawValue, found := strings.Cut(line, ",")
	if !found || strings.Contains(rawValue, ",") {
		return Record{}, false
	}

	k, ok := parseReal(rawKey)
	if !ok {
		return Record{}, false
	}
	v, ok := parseReal(rawValue)
	if !ok {
		return Record{}, false
	}

	k = math.Trunc(k)
	if k < math.MinInt32 || k > math.MaxInt32 {
		return Record{}, false
	}
	return Record{Key: int(k), Value: v}, true
}

func parseReal(field string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
