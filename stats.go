// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package lbdd

import "fmt"

// Stats stores status information about a table and the operations computed on
// it. All the counters are cumulative, except for LastApply.
type Stats struct {
	Nodes        int        // number of nodes in the table, constants included
	IndexSize    int        // number of slots in the unique index
	Produced     int        // number of nodes created
	UniqueAccess int        // accesses to the unique index
	UniqueChain  int        // iterations through the probe sequences of the unique index
	UniqueHit    int        // entries actually found in the the unique index
	UniqueMiss   int        // entries not found in the the unique index
	Rehashes     int        // number of times the unique index was resized
	Applies      int        // number of successful apply operations
	OpHit        int        // entries found in the task caches
	OpMiss       int        // entries not found in the task caches
	Collisions   int        // writes that evicted another task in the task caches
	LastApply    ApplyStats // statistics of the last apply
}

// ApplyStats gives the statistics of a single apply operation.
type ApplyStats struct {
	Op         Operator
	Tasks      int // tasks expanded, that is tasks that created or found a node
	Shortcuts  int // tasks resolved by the truth table of the operator
	CacheHits  int // tasks resolved by the task cache
	CacheMiss  int // tasks missing from the task cache
	Collisions int // evictions in the task cache
	CacheSize  int // number of entries in the task cache
	MaxDepth   int // maximal depth of the traversal stack
	Created    int // nodes added to the table
}

func (s Stats) String() string {
	res := fmt.Sprintf("Nodes:          %d\n", s.Nodes)
	res += fmt.Sprintf("Index size:     %d\n", s.IndexSize)
	res += fmt.Sprintf("Produced:       %d\n", s.Produced)
	res += fmt.Sprintf("Unique Access:  %d\n", s.UniqueAccess)
	res += fmt.Sprintf("Unique Chain:   %d\n", s.UniqueChain)
	res += fmt.Sprintf("Unique Hit:     %d\n", s.UniqueHit)
	res += fmt.Sprintf("Unique Miss:    %d\n", s.UniqueMiss)
	res += fmt.Sprintf("Rehashes:       %d\n", s.Rehashes)
	res += fmt.Sprintf("Applies:        %d\n", s.Applies)
	res += fmt.Sprintf("Operator Hits:  %d\n", s.OpHit)
	res += fmt.Sprintf("Operator Miss:  %d\n", s.OpMiss)
	res += fmt.Sprintf("Collisions:     %d", s.Collisions)
	return res
}

func (s ApplyStats) String() string {
	return fmt.Sprintf("%s: %d tasks, %d shortcuts, %d hits, %d misses, %d collisions, cache %d, depth %d, %d new nodes",
		s.Op, s.Tasks, s.Shortcuts, s.CacheHits, s.CacheMiss, s.Collisions, s.CacheSize, s.MaxDepth, s.Created)
}
