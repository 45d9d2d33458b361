// Package series groups parsed records into per-category sample sequences.
//
// A Store is rebuilt from the complete contents of the measurement file on
// every change. It is never merged incrementally, which keeps it a pure
// function of the file and immune to half-written trailing lines.
package series

import (
	"sort"
	"strings"

	"github.com/five82/pinmon/internal/category"
	"github.com/five82/pinmon/internal/record"
)

// Store maps category keys to samples in file order. It is read-only once
// built and safe to share between goroutines.
type Store struct {
	samples  map[category.Key][]float64
	total    int
	rejected int
}

// Rebuild parses lines from scratch and returns a new Store.
func Rebuild(lines []string) *Store {
	s := &Store{samples: make(map[category.Key][]float64)}
	for _, line := range lines {
		rec, ok := record.Parse(line)
		if !ok {
			if strings.TrimSpace(line) != "" {
				s.rejected++
			}
			continue
		}
		k := category.Key(rec.Key)
		s.samples[k] = append(s.samples[k], rec.Value)
		s.total++
	}
	return s
}

// Samples returns the sequence stored under k. The slice must not be
// modified.
func (s *Store) Samples(k category.Key) []float64 {
	if s == nil {
		return nil
	}
	return s.samples[k]
}

// Keys returns every key with at least one sample, ascending.
func (s *Store) Keys() []category.Key {
	if s == nil {
		return nil
	}
	keys := make([]category.Key, 0, len(s.samples))
	for k := range s.samples {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Orphans returns keys that hold samples but are not part of the category
// enumeration. They are retained but can never be displayed.
func (s *Store) Orphans() []category.Key {
	var out []category.Key
	for _, k := range s.Keys() {
		if !k.Known() {
			out = append(out, k)
		}
	}
	return out
}

// Len returns the number of distinct keys.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.samples)
}

// Total returns the number of accepted samples across all keys.
func (s *Store) Total() int {
	if s == nil {
		return 0
	}
	return s.total
}

// Rejected returns how many non-blank lines failed to parse.
func (s *Store) Rejected() int {
	if s == nil {
		return 0
	}
	return s.rejected
}
