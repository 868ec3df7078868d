package mrutesting

import "fmt"

// Reference is the obvious slice backed MRU queue. Every fetch is O(N); it
// exists to cross check the decomposed implementation.
type Reference struct {
	values []int
}

func NewReference(upperLimit int) *Reference {
	r := &Reference{values: make([]int, upperLimit)}
	for i := range r.values {
		r.values[i] = i + 1
	}
	return r
}

func (r *Reference) Len() int { return len(r.values) }

// Fetch removes the value at oneBasedIndex, appends it and returns it.
func (r *Reference) Fetch(oneBasedIndex int) (int, error) {
	if oneBasedIndex < 1 || oneBasedIndex > len(r.values) {
		return 0, fmt.Errorf("reference: index %d out of range [1, %d]", oneBasedIndex, len(r.values))
	}
	i := oneBasedIndex - 1
	v := r.values[i]
	copy(r.values[i:], r.values[i+1:])
	r.values[len(r.values)-1] = v
	return v, nil
}

// Values returns a copy of the current order.
func (r *Reference) Values() []int {
	return append([]int(nil), r.values...)
}
