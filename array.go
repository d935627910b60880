package quat

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"math/bits"
	"os"
	"unsafe"

	"golang.org/x/exp/slices"
)

// arrayVersion is the current on-disk codec version for Array's binary
// ("pickle") form, grounded on gonum.org/v1/gonum/mat.Dense's
// MarshalBinary versioned fixed-header-plus-payload layout (mat/io.go).
const arrayVersion uint64 = 2

// slotSize is the byte width of one quaternion slot in the flat binary
// layout: four little-endian float64 components.
const slotSize = 4 * 8

// arrayHeaderSize is the width in bytes of the fixed header written
// ahead of an Array's flat payload by MarshalBinary/ToFile: version,
// reserved, and length, each an 8-byte field.
const arrayHeaderSize = 8 + 8 + 8 // version + reserved + length

// Array is a dense, growable, contiguous sequence of Quat values. The
// zero value is an empty, ready-to-use array. Besides its length N
// (len(data)) and allocated capacity C (cap(data)), an Array tracks a
// user-requested capacity floor, reserved R, set only by Reserve and
// carried through the pickle form, satisfying C >= max(N, R) at all
// times. Capacity grows by amortized doubling on append, mirroring the
// growth policy of Go's own append builtin and of gonum's preallocated
// slice idioms, but never below the reserved floor.
type Array struct {
	data     []Quat
	reserved int
}

// NewArray returns an Array holding a copy of vs.
func NewArray(vs ...Quat) *Array {
	a := &Array{data: make([]Quat, len(vs))}
	copy(a.data, vs)
	return a
}

// Len returns the number of elements in a.
func (a *Array) Len() int { return len(a.data) }

// Cap returns the number of elements a can hold before its next
// reallocation.
func (a *Array) Cap() int { return cap(a.data) }

// Reserved returns a's current capacity floor, the value set by the
// most recent call to Reserve (zero if Reserve has never been called).
func (a *Array) Reserved() int { return a.reserved }

// Reserve sets a's capacity floor to n. If n exceeds a's current
// capacity, a grows to hold exactly n elements. If n falls below a's
// current capacity, a shrinks to max(n, Len()): reserve never discards
// live elements, but unlike append-driven growth it may give back
// unused backing storage. Reserve is the only operation that shrinks
// a's physical capacity.
func (a *Array) Reserve(n int) {
	a.reserved = n
	target := n
	if target < len(a.data) {
		target = len(a.data)
	}
	if target == cap(a.data) {
		return
	}
	resized := make([]Quat, len(a.data), target)
	copy(resized, a.data)
	a.data = resized
}

// growFor ensures a can hold needed elements without a further
// reallocation, following the growth policy of §4.E: the new capacity
// is max(needed, max(2*C, 8, R)).
func (a *Array) growFor(needed int) {
	c := cap(a.data)
	if needed <= c {
		return
	}
	next := 2 * c
	if next < 8 {
		next = 8
	}
	if a.reserved > next {
		next = a.reserved
	}
	if needed > next {
		next = needed
	}
	grown := make([]Quat, len(a.data), next)
	copy(grown, a.data)
	a.data = grown
}

// Get returns the element at index i, following Python's negative-index
// convention (-1 is the last element). It fails with an *IndexError if i
// is out of range.
func (a *Array) Get(i int) (Quat, error) {
	j, err := a.resolveIndex(i)
	if err != nil {
		return Quat{}, err
	}
	return a.data[j], nil
}

// Set stores v at index i, following the same negative-index convention
// as Get. It fails with an *IndexError if i is out of range.
func (a *Array) Set(i int, v Quat) error {
	j, err := a.resolveIndex(i)
	if err != nil {
		return err
	}
	a.data[j] = v
	return nil
}

func (a *Array) resolveIndex(i int) (int, error) {
	n := len(a.data)
	j := i
	if j < 0 {
		j += n
	}
	if j < 0 || j >= n {
		return 0, &IndexError{Index: i, Len: n}
	}
	return j, nil
}

// Append adds v to the end of a.
func (a *Array) Append(v Quat) {
	a.growFor(len(a.data) + 1)
	a.data = append(a.data, v)
}

// Extend appends every element of vs to a, in order.
func (a *Array) Extend(vs ...Quat) {
	a.growFor(len(a.data) + len(vs))
	a.data = append(a.data, vs...)
}

// Insert inserts v before index i, following Python list.insert clamping
// semantics: i is clamped into [0, Len()] rather than erroring.
func (a *Array) Insert(i int, v Quat) {
	n := len(a.data)
	if i < 0 {
		i += n
		if i < 0 {
			i = 0
		}
	}
	if i > n {
		i = n
	}
	a.growFor(n + 1)
	a.data = slices.Insert(a.data, i, v)
}

// Pop removes and returns the element at index i (default -1, the last
// element, when called with no argument). It fails with an *IndexError
// if i is out of range or a is empty.
func (a *Array) Pop(i ...int) (Quat, error) {
	idx := -1
	if len(i) > 0 {
		idx = i[0]
	}
	j, err := a.resolveIndex(idx)
	if err != nil {
		return Quat{}, err
	}
	v := a.data[j]
	a.data = slices.Delete(a.data, j, j+1)
	return v, nil
}

// Delete removes the element at index i. It fails with an *IndexError if
// i is out of range.
func (a *Array) Delete(i int) error {
	_, err := a.Pop(i)
	return err
}

// Remove removes the first element equal to v. It fails with a
// *ValueError if a contains no such element.
func (a *Array) Remove(v Quat) error {
	idx := slices.IndexFunc(a.data, func(q Quat) bool { return Equal(q, v) })
	if idx < 0 {
		return &ValueError{Msg: "quat: value not found in array"}
	}
	a.data = slices.Delete(a.data, idx, idx+1)
	return nil
}

// Index returns the index of the first element equal to v. It fails
// with a *ValueError if a contains no such element.
func (a *Array) Index(v Quat) (int, error) {
	idx := slices.IndexFunc(a.data, func(q Quat) bool { return Equal(q, v) })
	if idx < 0 {
		return 0, &ValueError{Msg: "quat: value not found in array"}
	}
	return idx, nil
}

// Count returns the number of elements of a equal to v.
func (a *Array) Count(v Quat) int {
	n := 0
	for _, q := range a.data {
		if Equal(q, v) {
			n++
		}
	}
	return n
}

// Clear removes every element from a, retaining its allocated capacity.
func (a *Array) Clear() {
	a.data = a.data[:0]
}

// Reverse reverses a in place.
func (a *Array) Reverse() {
	slices.Reverse(a.data)
}

// Clone returns a new Array holding a copy of a's elements.
func (a *Array) Clone() *Array {
	return NewArray(a.data...)
}

// Slice resolves a Python-style start:stop:step slice (step defaulting
// to 1, and start/stop following Python's clamping and negative-index
// rules when step is positive or negative) and returns the selected
// elements as a new Array. It fails with a *ValueError if step is zero.
func (a *Array) Slice(start, stop, step int, hasStart, hasStop, hasStep bool) (*Array, error) {
	if !hasStep {
		step = 1
	}
	if step == 0 {
		return nil, &ValueError{Msg: "slice step cannot be zero"}
	}
	n := len(a.data)
	lo, hi := sliceBounds(n, start, stop, step, hasStart, hasStop)

	out := &Array{}
	if step > 0 {
		for i := lo; i < hi; i += step {
			out.data = append(out.data, a.data[i])
		}
	} else {
		for i := lo; i > hi; i += step {
			out.data = append(out.data, a.data[i])
		}
	}
	return out, nil
}

// sliceBounds reproduces CPython's PySlice_GetIndices clamping of
// start/stop for a sequence of length n under the given step and
// explicit-presence flags, returning a half-open [lo, hi) walked by
// step.
func sliceBounds(n, start, stop, step int, hasStart, hasStop bool) (lo, hi int) {
	if step > 0 {
		lo, hi = 0, n
	} else {
		lo, hi = n-1, -1
	}
	if hasStart {
		lo = clampIndex(start, n, step)
	}
	if hasStop {
		hi = clampIndex(stop, n, step)
	}
	return lo, hi
}

func clampIndex(i, n, step int) int {
	if i < 0 {
		i += n
		if i < 0 {
			if step < 0 {
				return -1
			}
			return 0
		}
	}
	if i >= n {
		if step < 0 {
			return n - 1
		}
		return n
	}
	return i
}

// Concat returns a new Array holding a's elements followed by b's.
func Concat(a, b *Array) *Array {
	out := &Array{data: make([]Quat, 0, a.Len()+b.Len())}
	out.data = append(out.data, a.data...)
	out.data = append(out.data, b.data...)
	return out
}

// ConcatInPlace appends b's elements onto a.
func (a *Array) ConcatInPlace(b *Array) {
	a.data = append(a.data, b.data...)
}

// Repeat returns a new Array holding a's elements repeated n times. It
// fails with a *ValueError if n is negative.
func Repeat(a *Array, n int) (*Array, error) {
	if n < 0 {
		return nil, &ValueError{Msg: "repeat count cannot be negative"}
	}
	out := &Array{data: make([]Quat, 0, a.Len()*n)}
	for i := 0; i < n; i++ {
		out.data = append(out.data, a.data...)
	}
	return out, nil
}

// RepeatInPlace replaces a's contents with n copies of its current
// elements. It fails with a *ValueError if n is negative.
func (a *Array) RepeatInPlace(n int) error {
	if n < 0 {
		return &ValueError{Msg: "repeat count cannot be negative"}
	}
	base := slices.Clone(a.data)
	a.data = a.data[:0]
	a.growFor(len(base) * n)
	for i := 0; i < n; i++ {
		a.data = append(a.data, base...)
	}
	return nil
}

// ToBytes returns a's elements encoded as 32-byte little-endian slots
// (W, X, Y, Z float64s each), with no header: the buffer-protocol raw
// form of §8, distinct from the versioned MarshalBinary pickle form.
func (a *Array) ToBytes() []byte {
	buf := make([]byte, len(a.data)*slotSize)
	for i, q := range a.data {
		putQuat(buf[i*slotSize:], q)
	}
	return buf
}

// FromBytes replaces a's contents with the quaternions encoded in buf,
// which must hold a whole number of 32-byte slots. It fails with a
// *ValueError otherwise.
func (a *Array) FromBytes(buf []byte) error {
	if len(buf)%slotSize != 0 {
		return &ValueError{Msg: fmt.Sprintf("byte length %d is not a multiple of %d", len(buf), slotSize)}
	}
	n := len(buf) / slotSize
	a.data = a.data[:0]
	a.growFor(n)
	for i := 0; i < n; i++ {
		a.data = append(a.data, getQuat(buf[i*slotSize:]))
	}
	return nil
}

func putQuat(b []byte, q Quat) {
	binary.LittleEndian.PutUint64(b[0:8], math.Float64bits(q.W))
	binary.LittleEndian.PutUint64(b[8:16], math.Float64bits(q.X))
	binary.LittleEndian.PutUint64(b[16:24], math.Float64bits(q.Y))
	binary.LittleEndian.PutUint64(b[24:32], math.Float64bits(q.Z))
}

func getQuat(b []byte) Quat {
	return Quat{
		W: math.Float64frombits(binary.LittleEndian.Uint64(b[0:8])),
		X: math.Float64frombits(binary.LittleEndian.Uint64(b[8:16])),
		Y: math.Float64frombits(binary.LittleEndian.Uint64(b[16:24])),
		Z: math.Float64frombits(binary.LittleEndian.Uint64(b[24:32])),
	}
}

// ByteSwap reverses the byte order of every component in place, useful
// when exchanging raw ToBytes/FromBytes buffers with a big-endian peer.
func (a *Array) ByteSwap() {
	for i, q := range a.data {
		a.data[i] = Quat{
			W: math.Float64frombits(bits.ReverseBytes64(math.Float64bits(q.W))),
			X: math.Float64frombits(bits.ReverseBytes64(math.Float64bits(q.X))),
			Y: math.Float64frombits(bits.ReverseBytes64(math.Float64bits(q.Y))),
			Z: math.Float64frombits(bits.ReverseBytes64(math.Float64bits(q.Z))),
		}
	}
}

// BufferInfo returns the length of a in elements and the length of its
// raw buffer-protocol view in bytes (4*Len() float64s), mirroring the
// (address, length) tuple of the spec's buffer protocol without exposing
// a raw pointer.
func (a *Array) BufferInfo() (length, nbytes int) {
	return len(a.data), len(a.data) * slotSize
}

// Float64View returns a's backing storage as a flat, contiguous slice of
// 4*Len() float64s in (W,X,Y,Z) order per element. The returned slice
// aliases a's storage: writes through it mutate a, and it is invalidated
// by any call that reallocates a's storage (Append, Insert, Reserve,
// etc. past current capacity). It relies on Quat's field layout being
// four consecutive float64s with no padding, the same trick mat64.offset
// (mat64/offset.go) uses to reason about []float64 addresses directly.
func (a *Array) Float64View() []float64 {
	if len(a.data) == 0 {
		return nil
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(&a.data[0])), len(a.data)*4)
}

// MarshalBinary encodes a into a versioned binary form: an 8-byte
// version, an 8-byte reserved capacity floor, an 8-byte element count,
// and the flat ToBytes payload. This is the pickle tag of §6/§4.E: the
// tuple (reserved, payload_bytes) with an explicit version prefixed.
// Grounded on gonum.org/v1/gonum/mat.Dense.MarshalBinary's fixed-header-
// plus-payload layout (mat/io.go).
func (a *Array) MarshalBinary() ([]byte, error) {
	buf := make([]byte, arrayHeaderSize+len(a.data)*slotSize)
	binary.LittleEndian.PutUint64(buf[0:8], arrayVersion)
	binary.LittleEndian.PutUint64(buf[8:16], uint64(a.reserved))
	binary.LittleEndian.PutUint64(buf[16:24], uint64(len(a.data)))
	for i, q := range a.data {
		putQuat(buf[arrayHeaderSize+i*slotSize:], q)
	}
	return buf, nil
}

// UnmarshalBinary decodes the form written by MarshalBinary into the
// receiver, replacing its contents and its reserved capacity floor. It
// fails with an *EOFError if data is shorter than its declared length
// demands. Reconstruction mirrors §6's new(payload, reserve=reserved):
// the decoded reserved floor is applied via Reserve, so
// pickle(unpickle(x)) == x holds for reserved as well as for elements.
func (a *Array) UnmarshalBinary(data []byte) error {
	if len(data) < arrayHeaderSize {
		return &EOFError{Want: 0, Got: 0}
	}
	reserved := int(binary.LittleEndian.Uint64(data[8:16]))
	n := int(binary.LittleEndian.Uint64(data[16:24]))
	want := arrayHeaderSize + n*slotSize
	if len(data) < want {
		got := (len(data) - arrayHeaderSize) / slotSize
		if got < 0 {
			got = 0
		}
		return &EOFError{Want: n, Got: got}
	}
	out := make([]Quat, n)
	for i := range out {
		out[i] = getQuat(data[arrayHeaderSize+i*slotSize:])
	}
	a.data = out
	a.reserved = 0
	a.Reserve(reserved)
	return nil
}

// ToFile writes a's MarshalBinary encoding to name, truncating any
// existing file.
func (a *Array) ToFile(name string) error {
	b, err := a.MarshalBinary()
	if err != nil {
		return err
	}
	return os.WriteFile(name, b, 0o644)
}

// FromFile replaces a's contents with the Array encoded in the file
// named name. It fails with an *EOFError if the file is truncated
// relative to its declared header, following the exact-byte-count EOF
// semantics of §8 rather than silently appending a partial element.
func (a *Array) FromFile(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, f); err != nil {
		return err
	}
	return a.UnmarshalBinary(buf.Bytes())
}

// ToSlice returns a plain []Quat view-independent copy of a's elements.
func (a *Array) ToSlice() []Quat {
	return slices.Clone(a.data)
}
