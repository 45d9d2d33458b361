package monitor

import (
	"time"

	"github.com/five82/pinmon/internal/category"
	"github.com/five82/pinmon/internal/series"
	"github.com/five82/pinmon/internal/source"
	"github.com/five82/pinmon/internal/window"
)

// Batch is the complete set of windows produced by one rebuild. Every slice
// in a Batch is freshly allocated, so consumers may keep or modify it.
type Batch struct {
	Views      []window.View  `json:"views"`
	WindowSize int            `json:"window_size"`
	MaxValue   float64        `json:"max_value"`
	SourceSize int64          `json:"source_size"`
	Total      int            `json:"total"`
	Rejected   int            `json:"rejected"`
	Orphans    []category.Key `json:"orphans,omitempty"`
	At         time.Time      `json:"at"`
}

// View returns the window for k, if k was selected.
func (b Batch) View(k category.Key) (window.View, bool) {
	for _, v := range b.Views {
		if v.Category.Key == k {
			return v, true
		}
	}
	return window.View{}, false
}

// Load reads the source once and returns its windows without starting a
// poller.
func Load(s Settings) (Batch, error) {
	if err := s.Validate(); err != nil {
		return Batch{}, err
	}
	s = s.normalized()
	if s.SourcePath == "" {
		return Batch{}, ErrNotConfigured
	}
	size, err := source.Size(s.SourcePath)
	if err != nil {
		return Batch{}, &LoadError{Path: s.SourcePath, Err: err}
	}
	batch, err := read(s, size)
	if err != nil {
		return Batch{}, &LoadError{Path: s.SourcePath, Err: err}
	}
	return batch, nil
}

// read rebuilds the store from the whole file. size is the length observed
// before reading; the file may have grown since, which the next poll picks up.
func read(s Settings, size int64) (Batch, error) {
	lines, err := source.ReadLines(s.SourcePath)
	if err != nil {
		return Batch{}, err
	}
	return newBatch(series.Rebuild(lines), s, size), nil
}

func newBatch(store *series.Store, s Settings, size int64) Batch {
	views := make([]window.View, 0, len(s.Categories))
	for _, k := range s.Categories {
		c, ok := category.ForKey(k)
		if !ok {
			continue
		}
		v := window.Select(store.Samples(k), s.WindowSize)
		v.Category = c
		views = append(views, v)
	}
	return Batch{
		Views:      views,
		WindowSize: s.WindowSize,
		MaxValue:   s.MaxValue,
		SourceSize: size,
		Total:      store.Total(),
		Rejected:   store.Rejected(),
		Orphans:    store.Orphans(),
		At:         time.Now(),
	}
}
