// Package stats provides the frequency counting shared by the line and block
// stages of the outline pipeline.
package stats

import "cmp"

// TieBreak decides between two values with equal counts. It returns true when
// a should win over b. firstA and firstB are the positions at which each value
// was first observed.
type TieBreak[K cmp.Ordered] func(a, b K, firstA, firstB int) bool

// FirstSeen prefers the value that was observed first
func FirstSeen[K cmp.Ordered](_, _ K, firstA, firstB int) bool {
	return firstA < firstB
}

// Larger prefers the larger value
func Larger[K cmp.Ordered](a, b K, _, _ int) bool {
	return a > b
}

// Frequency counts occurrences of values and remembers first-seen order
type Frequency[K cmp.Ordered] struct {
	counts map[K]int
	first  map[K]int
	order  []K
}

// NewFrequency creates an empty frequency table
func NewFrequency[K cmp.Ordered]() *Frequency[K] {
	return &Frequency[K]{
		counts: make(map[K]int),
		first:  make(map[K]int),
	}
}

// Add records one occurrence of v
func (f *Frequency[K]) Add(v K) {
	if _, ok := f.counts[v]; !ok {
		f.first[v] = len(f.order)
		f.order = append(f.order, v)
	}
	f.counts[v]++
}

// Count returns the number of occurrences of v
func (f *Frequency[K]) Count(v K) int {
	return f.counts[v]
}

// Len returns the number of distinct values
func (f *Frequency[K]) Len() int {
	return len(f.order)
}

// Values returns the distinct values in first-seen order
func (f *Frequency[K]) Values() []K {
	return append([]K(nil), f.order...)
}

// Mode returns the most frequent value, resolving ties with prefer.
// ok is false when the table is empty.
func (f *Frequency[K]) Mode(prefer TieBreak[K]) (mode K, ok bool) {
	best := -1
	for _, v := range f.order {
		c := f.counts[v]
		switch {
		case c > best:
			mode, best = v, c
		case c == best && prefer(v, mode, f.first[v], f.first[mode]):
			mode = v
		}
	}
	return mode, best >= 0
}

// Mode is a convenience for computing the mode of a slice in one call
func Mode[K cmp.Ordered](values []K, prefer TieBreak[K]) (K, bool) {
	f := NewFrequency[K]()
	for _, v := range values {
		f.Add(v)
	}
	return f.Mode(prefer)
}
