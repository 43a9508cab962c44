/*
Package treap offers a randomized, self-balancing ordered map.

Treaps

A treap is a binary search tree on keys which is at the same time a max-heap
on a per-node priority. When priorities are drawn at random, the shape of the
tree does not depend on insertion order and the expected height is O(log n),
without any explicit rebalancing. Treaps of this kind serve as the sorted index
underneath memory-region trackers, where lookups of the form "closest address
at or below X" are frequent and ranges are cut and joined all the time.

All mutating operations are expressed through two primitives, split and merge,
which are each other's inverse:

	split(t, k)     => (l, r)  with keys(l) <= k < keys(r)
	merge(l, r)     => t       given keys(l) <= keys(r)

Upsert splits the tree at the new key and merges a fresh node in between;
Remove splits out exactly the node for a key and merges the remainder.
Queries (Find, ClosestLEQ, traversals) walk the tree without restructuring it.

	Operation     |   Treap
	--------------+-----------------
	Upsert        |   O(log n)
	Remove        |   O(log n)
	Find          |   O(log n)
	ClosestLEQ    |   O(log n)
	Range         |   O(log n + m)
	Iterate       |   O(n)

Treaps are not safe for concurrent use. Mutating a treap while a traversal is
in progress is not detected and results are undefined.

Priorities are drawn from a small linear-congruential generator. Given a fixed
seed, the same sequence of operations always produces the same tree shape,
which is handy for reproducible tests.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package treap

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
