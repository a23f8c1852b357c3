// Package writectx holds the interning state the writer builds while
// traversing an event log: every distinct attribute value and every distinct
// (key, value) pair, each assigned a stable index in first-seen order.
//
// value.Value is not always comparable with == (Artifact and Drivers carry
// slices), so a plain map[value.Value]uint32 is unusable. Context instead
// buckets candidates by hash and resolves collisions with a linear Equal
// scan within the bucket, the same shape as a hash-bucket collision tracker.
package writectx

import "github.com/PM-IDE/bxes/value"

type valueEntry struct {
	v     value.Value
	index uint32
}

type pairKey struct {
	key value.String
	val value.Value
}

type pairEntry struct {
	key   pairKey
	index uint32
}

// Context accumulates the value and (key,value) interning tables during the
// values pass and the pairs pass, in that order, over the same traversal.
type Context struct {
	valueBuckets map[uint64][]valueEntry
	values       []value.Value

	pairBuckets map[uint64][]pairEntry
	pairs       []pairKey
}

// New returns an empty interning context.
func New() *Context {
	return &Context{
		valueBuckets: make(map[uint64][]valueEntry),
		pairBuckets:  make(map[uint64][]pairEntry),
	}
}

// InternValue returns the existing index for v if an equal value was already
// seen, otherwise assigns and returns the next index.
func (c *Context) InternValue(v value.Value) uint32 {
	h := v.Hash()
	bucket := c.valueBuckets[h]
	for _, e := range bucket {
		if e.v.Equal(v) {
			return e.index
		}
	}

	idx := uint32(len(c.values))
	c.values = append(c.values, v)
	c.valueBuckets[h] = append(bucket, valueEntry{v: v, index: idx})

	return idx
}

// LookupValue returns the interned index for v and whether it was found.
func (c *Context) LookupValue(v value.Value) (uint32, bool) {
	bucket := c.valueBuckets[v.Hash()]
	for _, e := range bucket {
		if e.v.Equal(v) {
			return e.index, true
		}
	}

	return 0, false
}

// Values returns the interned values in first-seen order, the order they
// must be emitted in.
func (c *Context) Values() []value.Value { return c.values }

// ValueCount returns the number of distinct interned values.
func (c *Context) ValueCount() int { return len(c.values) }

func pairHash(key value.String, val value.Value) uint64 {
	h := key.Hash()
	vh := val.Hash()
	// Mix the two hashes so a (key,value) pair does not collide with its
	// bare key or bare value hash bucket.
	return h*31 + vh
}

// InternPair returns the existing index for (key,val) if an equal pair was
// already seen, otherwise assigns and returns the next index. Both key and
// val must already be interned as values before being interned as a pair.
func (c *Context) InternPair(key value.String, val value.Value) uint32 {
	h := pairHash(key, val)
	bucket := c.pairBuckets[h]
	for _, e := range bucket {
		if e.key.key == key && e.key.val.Equal(val) {
			return e.index
		}
	}

	idx := uint32(len(c.pairs))
	pk := pairKey{key: key, val: val}
	c.pairs = append(c.pairs, pk)
	c.pairBuckets[h] = append(bucket, pairEntry{key: pk, index: idx})

	return idx
}

// LookupPair returns the interned index for (key,val) and whether it was found.
func (c *Context) LookupPair(key value.String, val value.Value) (uint32, bool) {
	bucket := c.pairBuckets[pairHash(key, val)]
	for _, e := range bucket {
		if e.key.key == key && e.key.val.Equal(val) {
			return e.index, true
		}
	}

	return 0, false
}

// Pairs returns the interned (key,value) pairs in first-seen order.
func (c *Context) Pairs() []struct {
	Key value.String
	Val value.Value
} {
	out := make([]struct {
		Key value.String
		Val value.Value
	}, len(c.pairs))
	for i, p := range c.pairs {
		out[i].Key = p.key
		out[i].Val = p.val
	}

	return out
}

// PairCount returns the number of distinct interned pairs.
func (c *Context) PairCount() int { return len(c.pairs) }
