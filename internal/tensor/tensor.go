// Package tensor provides a small row-major k-dimensional integer tensor.
// It is the shared storage of the compact and modular table
// representations: extents are fixed at construction, the first axis is
// the slowest-varying, and offsets follow the explicit stride formula
// offset = Σ idx[k]·stride[k] with stride[k] = Π extents[k+1:].
package tensor

import "errors"

// MaxElems caps the total cell count; tensors are tiny lookup tables, not
// general numeric arrays.
const MaxElems = int64(1) << 24

// Sentinel errors for tensor construction and access.
var (
	// ErrEmptyExtents indicates a rank-0 shape.
	ErrEmptyExtents = errors.New("tensor: extents must be non-empty")
	// ErrBadExtent indicates a zero or negative axis length.
	ErrBadExtent = errors.New("tensor: every extent must be ≥ 1")
	// ErrTooLarge indicates the element count exceeds MaxElems.
	ErrTooLarge = errors.New("tensor: element count exceeds MaxElems")
	// ErrRankMismatch indicates an index tuple of the wrong length.
	ErrRankMismatch = errors.New("tensor: index rank does not match tensor rank")
	// ErrIndexOutOfRange indicates an index component outside its extent.
	ErrIndexOutOfRange = errors.New("tensor: index out of range")
)

// Dense is a row-major k-dimensional tensor of int values.
// Fill it once during construction; afterwards it is read-only by
// convention and safe for concurrent readers.
type Dense struct {
	extents []int64
	strides []int64
	data    []int
}

// New allocates a zero-filled tensor with the given axis extents.
// Complexity: O(Π extents) memory.
func New(extents []int64) (*Dense, error) {
	if len(extents) == 0 {
		return nil, ErrEmptyExtents
	}
	total := int64(1)
	for _, e := range extents {
		if e < 1 {
			return nil, ErrBadExtent
		}
		if total > MaxElems/e {
			return nil, ErrTooLarge
		}
		total *= e
	}

	// Row-major strides: last axis is contiguous.
	strides := make([]int64, len(extents))
	stride := int64(1)
	for k := len(extents) - 1; k >= 0; k-- {
		strides[k] = stride
		stride *= extents[k]
	}

	ext := make([]int64, len(extents))
	copy(ext, extents)

	return &Dense{
		extents: ext,
		strides: strides,
		data:    make([]int, total),
	}, nil
}

// Rank returns the number of axes.
func (d *Dense) Rank() int { return len(d.extents) }

// Len returns the total element count.
func (d *Dense) Len() int64 { return int64(len(d.data)) }

// Extents returns a copy of the axis lengths.
func (d *Dense) Extents() []int64 {
	cp := make([]int64, len(d.extents))
	copy(cp, d.extents)

	return cp
}

// Offset maps an index tuple to its flat row-major offset.
// Complexity: O(rank).
func (d *Dense) Offset(idx []int64) (int64, error) {
	if len(idx) != len(d.extents) {
		return 0, ErrRankMismatch
	}
	var off int64
	for k, i := range idx {
		if i < 0 || i >= d.extents[k] {
			return 0, ErrIndexOutOfRange
		}
		off += i * d.strides[k]
	}

	return off, nil
}

// At returns the element at the given index tuple.
func (d *Dense) At(idx ...int64) (int, error) {
	off, err := d.Offset(idx)
	if err != nil {
		return 0, err
	}

	return d.data[off], nil
}

// Set stores v at the given index tuple. Intended for the build phase only.
func (d *Dense) Set(v int, idx ...int64) error {
	off, err := d.Offset(idx)
	if err != nil {
		return err
	}
	d.data[off] = v

	return nil
}

// AtOffset returns the element at a precomputed flat offset.
// off must lie in [0, Len()).
func (d *Dense) AtOffset(off int64) int { return d.data[off] }
