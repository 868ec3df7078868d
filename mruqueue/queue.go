package mruqueue

import (
	"fmt"

	"github.com/forestrie/go-mruqueue/ring"
)

// Queue is a most-recently-used queue over the integers 1..Len().
//
// The blocks are carved out of a single arena allocated at construction,
// Fetch never allocates.
type Queue struct {
	opts       Options
	upperLimit int
	blockSize  int
	blocks     []ring.Block
}

// New creates a queue holding 1..upperLimit in ascending order.
func New(upperLimit int, opts ...Option) (*Queue, error) {
	q := &Queue{opts: NewOptions(opts...)}

	if upperLimit < 1 {
		q.debugf("mruqueue: rejected upper limit %d", upperLimit)
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, upperLimit)
	}

	q.upperLimit = upperLimit
	q.blockSize = CeilSqrt(upperLimit)
	q.blocks = make([]ring.Block, BlockCount(upperLimit, q.blockSize))

	arena := make([]int, upperLimit)
	for n := 1; n <= upperLimit; n++ {
		iBlock := (n - 1) / q.blockSize
		offset := (n - 1) % q.blockSize

		if offset == 0 {
			start := n - 1
			end := start + BlockCapacity(iBlock, upperLimit, q.blockSize)
			b, err := ring.Init(arena[start:end:end])
			if err != nil {
				return nil, err
			}
			q.blocks[iBlock] = b
		}
		q.blocks[iBlock].Set(offset, n)
	}

	q.debugf(
		"mruqueue: upperLimit=%d blockSize=%d blockCount=%d lastBlockCap=%d",
		upperLimit, q.blockSize, len(q.blocks), q.blocks[len(q.blocks)-1].Cap())
	return q, nil
}

// Len returns the number of values in the queue, the upper limit it was
// created with.
func (q *Queue) Len() int { return q.upperLimit }

func (q *Queue) BlockSize() int  { return q.blockSize }
func (q *Queue) BlockCount() int { return len(q.blocks) }

// Fetch returns the value at the 1-based position oneBasedIndex and makes it
// the most recently used, moving it to position Len(). The values after the
// original position each move one position earlier.
//
// An index outside [1, Len()] returns an error wrapping ErrInvalidIndex and
// leaves the queue unchanged.
func (q *Queue) Fetch(oneBasedIndex int) (int, error) {
	if oneBasedIndex < 1 || oneBasedIndex > q.upperLimit {
		q.debugf("mruqueue: rejected fetch index %d, len=%d", oneBasedIndex, q.upperLimit)
		return 0, fmt.Errorf("%w: %d is not in [1, %d]", ErrInvalidIndex, oneBasedIndex, q.upperLimit)
	}

	iBlock := (oneBasedIndex - 1) / q.blockSize
	owner := &q.blocks[iBlock]
	physical := owner.Physical((oneBasedIndex - 1) % q.blockSize)

	value := owner.At(physical)
	owner.CompactTowardTail(physical)

	last := len(q.blocks) - 1
	for i := iBlock; i < last; i++ {
		next := &q.blocks[i+1]
		q.blocks[i].SetBack(next.Front())
		next.AdvanceHead()
		next.AdvanceTail()
	}
	q.blocks[last].SetBack(value)

	return value, nil
}

// Values returns the queue content in most-recently-used order, least
// recently used first.
func (q *Queue) Values() []int {
	return q.AppendValues(make([]int, 0, q.upperLimit))
}

// AppendValues appends the queue content, in the same order as Values, to
// dst.
func (q *Queue) AppendValues(dst []int) []int {
	for i := range q.blocks {
		dst = q.blocks[i].AppendTo(dst)
	}
	return dst
}

func (q *Queue) debugf(format string, args ...any) {
	if q.opts.Log == nil {
		return
	}
	q.opts.Log.Debugf(format, args...)
}
