package source

// Detector decides whether the measurement file needs re-reading by
// comparing its byte length with the last observed length.
//
// Length is a cheap proxy for "new data appended". A rewrite that keeps the
// total length identical is not detected.
type Detector struct {
	last int64
	seen bool
}

// Changed reports whether size differs from the last observed size. Growth
// and shrinkage both count. Before any observation every size is a change.
func (d *Detector) Changed(size int64) bool {
	return !d.seen || size != d.last
}

// Observe records size as the last observed length.
func (d *Detector) Observe(size int64) {
	d.last = size
	d.seen = true
}

// Last returns the last observed size and whether one was recorded.
func (d *Detector) Last() (int64, bool) {
	return d.last, d.seen
}
