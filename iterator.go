package quat

// Iterator is a forward cursor over an Array, grounded on the simple
// pull-style node iterators of gonum.org/v1/gonum/graph (e.g. NodeIterator):
// repeated Next calls advance the cursor until it is exhausted.
type Iterator struct {
	arr *Array
	i   int
}

// NewIterator returns an Iterator positioned before the first element
// of a.
func NewIterator(a *Array) *Iterator {
	return &Iterator{arr: a}
}

// Next advances the iterator and reports whether a further element was
// available.
func (it *Iterator) Next() (Quat, bool) {
	if it.arr == nil || it.i >= it.arr.Len() {
		return Quat{}, false
	}
	v, _ := it.arr.Get(it.i)
	it.i++
	return v, true
}

// Reset returns the iterator to its initial, before-the-first-element
// position.
func (it *Iterator) Reset() {
	it.i = 0
}
