package ring

import "errors"

var ErrBadCapacity = errors.New("ring: block capacity must be at least 1")

// Block is an always-full circular buffer of ints.
type Block struct {
	slots []int
	head  int
	tail  int
}

// New allocates a block with capacity zero valued slots.
func New(capacity int) (*Block, error) {
	if capacity < 1 {
		return nil, ErrBadCapacity
	}
	b, err := Init(make([]int, capacity))
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Init returns a block over region. The region is used in place, its current
// content becomes the logical content of the block in natural order.
//
// The caller must not retain region for other purposes. Capacity is
// len(region), any spare capacity of the slice is ignored.
func Init(region []int) (Block, error) {
	if len(region) < 1 {
		return Block{}, ErrBadCapacity
	}
	return Block{
		slots: region[:len(region):len(region)],
		head:  0,
		tail:  len(region) - 1,
	}, nil
}

func (b *Block) Cap() int  { return len(b.slots) }
func (b *Block) Head() int { return b.head }
func (b *Block) Tail() int { return b.tail }

// At returns the value in physical slot i.
func (b *Block) At(i int) int { return b.slots[i] }

// Set writes v to physical slot i.
func (b *Block) Set(i int, v int) { b.slots[i] = v }

// Physical translates a zero based logical offset into a physical slot index.
func (b *Block) Physical(logical int) int {
	return (b.head + logical) % len(b.slots)
}

// Front returns the logically first value.
func (b *Block) Front() int { return b.slots[b.head] }

// SetBack overwrites the logically last value.
func (b *Block) SetBack(v int) { b.slots[b.tail] = v }

func (b *Block) AdvanceHead() {
	b.head = b.next(b.head)
}

func (b *Block) AdvanceTail() {
	b.tail = b.next(b.tail)
}

// CompactTowardTail closes the gap at physical slot from by copying every
// later value one slot earlier, stopping at the tail.
//
// On return the tail slot holds a copy of its predecessor. The caller is
// expected to overwrite it, either with SetBack or by cascading a value in
// from the next block.
func (b *Block) CompactTowardTail(from int) {
	for i := from; i != b.tail; {
		j := b.next(i)
		b.slots[i] = b.slots[j]
		i = j
	}
}

// AppendTo appends the logical content of the block to dst.
func (b *Block) AppendTo(dst []int) []int {
	dst = append(dst, b.slots[b.head:]...)
	return append(dst, b.slots[:b.head]...)
}

func (b *Block) next(i int) int {
	i++
	if i == len(b.slots) {
		return 0
	}
	return i
}
