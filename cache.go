// Copyright 2021. Silvano DAL ZILIO.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package lbdd

// ************************************************************
// taskcache is used for caching the results of the tasks of an apply. It is a
// direct-mapped table: each task (a, b) has exactly one slot, given by the
// hasher, and writing a result overwrites whatever was stored in this slot. A
// lookup is a hit only if the key stored in the slot is exactly (a, b), so a
// collision can only cost a recomputation, never a wrong result.
type taskcache struct {
	hasher     TaskHasher
	table      []taskData
	hits       int // entries found in the cache
	misses     int // entries not found in the cache
	collisions int // writes that evicted a different task
}

// taskData is a unit of information stored in the task cache
type taskData struct {
	a   Addr
	b   Addr
	res Addr
}

func newtaskcache(size int, hasher TaskHasher) *taskcache {
	if size < 1 {
		size = 1
	}
	tc := &taskcache{
		hasher: hasher,
		table:  make([]taskData, size),
	}
	tc.reset()
	return tc
}

func (tc *taskcache) reset() {
	for k := range tc.table {
		tc.table[k] = taskData{a: undefined, b: undefined, res: undefined}
	}
}

// read returns the result stored for task (a, b), or undefined, together with
// the slot of the task, to be used in a later call to write.
func (tc *taskcache) read(a, b Addr) (Addr, int) {
	slot := tc.hasher.Slot(a, b, len(tc.table))
	entry := tc.table[slot]
	if entry.a == a && entry.b == b {
		tc.hits++
		return entry.res, slot
	}
	tc.misses++
	return undefined, slot
}

// write stores the result of task (a, b) in slot, evicting the previous entry.
func (tc *taskcache) write(slot int, a, b, res Addr) {
	entry := &tc.table[slot]
	if entry.a != undefined && (entry.a != a || entry.b != b) {
		tc.collisions++
	}
	entry.a, entry.b, entry.res = a, b, res
}

// cachesize returns the number of entries of the task cache used for the next
// apply. The size is either fixed, with option Cachesize, or computed from the
// number of nodes in the table and the cache ratio.
func (t *Table) cachesize() int {
	if t.cfg.Cachesize > 0 {
		return t.cfg.Cachesize
	}
	size := len(t.nodes)*t.cfg.Cacheratio/100 + _HASHBLOCK
	if size < _MINTASKCACHESIZE {
		size = _MINTASKCACHESIZE
	}
	return size
}
