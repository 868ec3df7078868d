package mruqueue

/*

# Most-recently-used queue over 1..N

A Queue holds the integers 1..N in most-recently-used order. Fetch(k) returns
the value at 1-based position k, moves it to the very end and shifts every
value that was after it one position earlier. Values before position k are
untouched.

A plain slice makes each fetch O(N). Here the sequence is split into
ceil(sqrt(N)) blocks of ceil(sqrt(N)) slots (the last block takes the
remainder) and each block is an always-full ring.Block, so a fetch costs
O(sqrt(N)): one in-block compaction plus a single value handed across each
later block boundary.

## Fetch

For N = 8 the block size is 3 and the blocks hold {3, 3, 2} values. Fetching
position 2:

	before      [1 2 3] [4 5 6] [7 8]
	compact     [1 3 _] [4 5 6] [7 8]      value 2 removed, gap moved to tail
	cascade     [1 3 4] [5 6 _] [7 8]      head of block 1 fills tail of block 0
	cascade     [1 3 4] [5 6 7] [8 _]      head of block 2 fills tail of block 1
	place       [1 3 4] [5 6 7] [8 2]      fetched value written to the last tail

Each cascade step advances the head and the tail of the block the value was
taken from, so no block ever moves more than one value except the block that
owned position k.

## Sizing

Block sizes are derived with exact integer arithmetic, see CeilSqrt,
BlockCount and BlockCapacity. Perfect squares produce equal blocks, other
values leave a shorter final block:

	N   blockSize  blockCount  capacities
	8   3          3           3 3 2
	9   3          3           3 3 3
	10  4          3           4 4 2
	16  4          4           4 4 4 4
	17  5          4           5 5 5 2

A Queue is not safe for concurrent use. Callers that share one must serialise
access to it.

*/
