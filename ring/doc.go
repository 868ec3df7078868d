package ring

/*

# Always-full circular blocks

A Block is a fixed capacity circular buffer that never has an empty or partly
filled state. It holds exactly Cap() live values at all times; "removing" a
value is always paired by the owner with writing a replacement into the tail
slot.

It follows the same conventions as the bloom package:

- the backing slots may be a caller allocated region (see Init), so many
  blocks can be carved out of a single arena
- index arithmetic is explicit, physical indices are always in [0, Cap())
- a burden of knowledge on the caller for the hot paths; the mutators do not
  re-validate their arguments

## Layout

	physical:   0    1    2    3    4
	          +----+----+----+----+----+
	          | d  | e  | a  | b  | c  |
	          +----+----+----+----+----+
	                 ^    ^
	               tail  head

	logical:  a b c d e

The logical sequence is read from Head(), wrapping, for Cap() slots, and ends
at Tail(). Tail() is always the slot immediately before Head().

*/
