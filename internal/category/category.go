// Package category defines the fixed set of measurement buckets a pin test
// reports against and the integer keys they are stored under.
package category

import (
	"fmt"
	"strings"
)

// Key is the integer discriminator written in the first field of a record.
type Key int

// Category pairs a display label with its storage key.
type Category struct {
	Label string `json:"label"`
	Key   Key    `json:"key"`
}

func (c Category) String() string { return c.Label }

// known lists the buckets in display order.
var known = []Category{
	{Label: "0%", Key: 10},
	{Label: "25%", Key: 2},
	{Label: "50%", Key: 3},
	{Label: "75%", Key: 4},
	{Label: "100%", Key: 5},
	{Label: "-75%", Key: 6},
	{Label: "-50%", Key: 7},
	{Label: "-25%", Key: 8},
	{Label: "-0%", Key: 9},
}

var (
	byLabel = make(map[string]Category, len(known))
	byKey   = make(map[Key]Category, len(known))
)

func init() {
	for _, c := range known {
		byLabel[c.Label] = c
		byKey[c.Key] = c
	}
}

// All returns every known category in display order.
func All() []Category {
	out := make([]Category, len(known))
	copy(out, known)
	return out
}

// Lookup resolves a label such as "50%" to its category.
func Lookup(label string) (Category, bool) {
	c, ok := byLabel[strings.TrimSpace(label)]
	return c, ok
}

// ForKey resolves a storage key to its category.
func ForKey(k Key) (Category, bool) {
	c, ok := byKey[k]
	return c, ok
}

// Known reports whether k belongs to the enumeration.
func (k Key) Known() bool {
	_, ok := byKey[k]
	return ok
}

// Label returns the display label for k, or the bare number for orphans.
func (k Key) Label() string {
	if c, ok := byKey[k]; ok {
		return c.Label
	}
	return fmt.Sprintf("#%d", int(k))
}

// ParseLabels resolves labels to keys, preserving order and dropping
// duplicates. Unknown labels are an error.
func ParseLabels(labels []string) ([]Key, error) {
	keys := make([]Key, 0, len(labels))
	seen := make(map[Key]struct{}, len(labels))
	for _, label := range labels {
		c, ok := Lookup(label)
		if !ok {
			return nil, fmt.Errorf("unknown category %q", strings.TrimSpace(label))
		}
		if _, dup := seen[c.Key]; dup {
			continue
		}
		seen[c.Key] = struct{}{}
		keys = append(keys, c.Key)
	}
	return keys, nil
}

// Labels returns the display labels for keys.
func Labels(keys []Key) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.Label()
	}
	return out
}
