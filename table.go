// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package lbdd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Table is an append-only arena of BDD nodes shared by a family of diagrams.
// Nodes are addressed by their index in the arena; the constants are always
// kept at index 0 (False) and 1 (True). A unique index, that associates each
// triplet (level, low, high) to a single address, ensures that two equal
// triplets are never stored twice, so that equivalent functions built in the
// same table have the same address.
//
// Addresses are never invalidated: growing the arena or rehashing the unique
// index does not change the meaning of an address. A Table is not safe for
// concurrent use; independent computations should use independent tables.
type Table struct {
	id         uuid.UUID   // Identity of the table, reported in errors and logs
	nodes      []Node      // List of all the BDD nodes. Constants are always kept at index 0 and 1
	index      []Addr      // Unique index with open addressing, 0 marks an empty slot
	maxnodes   int         // Maximum number of nodes in the arena
	loadfactor float64     // Load of the unique index that triggers a rehash
	cfg        Config      // Configuration used to create the table
	logger     *log.Logger // Destination of debug events
	stats      Stats       // Cumulative statistics
}

// New returns an empty table holding only the two constants. Options are
// applied in order; see Config for the available parameters.
func New(opts ...Option) (*Table, error) {
	cfg, err := makeconfig(opts...)
	if err != nil {
		return nil, err
	}
	t := newtable(cfg, cfg.Nodesize)
	t.nodes = append(t.nodes, nodeZero, nodeOne)
	t.logger.Debug("new table", "id", t.id, "nodesize", cfg.Nodesize, "index", len(t.index))
	return t, nil
}

func newtable(cfg Config, nodesize int) *Table {
	t := &Table{
		id:         uuid.New(),
		nodes:      make([]Node, 0, nodesize),
		maxnodes:   int(MaxAddr) + 1,
		loadfactor: cfg.Loadfactor,
		cfg:        cfg,
		logger:     cfg.Logger,
	}
	if cfg.Maxnodesize > 0 && cfg.Maxnodesize < t.maxnodes {
		t.maxnodes = cfg.Maxnodesize
	}
	t.index = make([]Addr, primeGte(int(float64(nodesize)/t.loadfactor)+1))
	return t
}

// ID returns the identity of the table.
func (t *Table) ID() uuid.UUID {
	return t.id
}

// Config returns the configuration of the table.
func (t *Table) Config() Config {
	return t.cfg
}

// Len returns the number of nodes in the table, constants included.
func (t *Table) Len() int {
	return len(t.nodes)
}

// Contains reports whether a is a valid address in t.
func (t *Table) Contains(a Addr) bool {
	return a < Addr(len(t.nodes))
}

// Node returns the packed node stored at address a.
func (t *Table) Node(a Addr) (Node, error) {
	if !t.Contains(a) {
		return Node{}, t.operror("node", a, undefined, fmt.Errorf("%w: address out of range", ErrPrecondition))
	}
	return t.nodes[a], nil
}

// Level returns the variable of the node at address a, or one of the sentinels
// VarZero and VarOne for constants. The address must be valid.
func (t *Table) Level(a Addr) Var {
	return t.nodes[a].Level()
}

// Low returns the false branch of the node at address a. The address must be
// valid.
func (t *Table) Low(a Addr) Addr {
	return t.nodes[a].Low()
}

// High returns the true branch of the node at address a. The address must be
// valid.
func (t *Table) High(a Addr) Addr {
	return t.nodes[a].High()
}

// True returns the constant true BDD
func (t *Table) True() BDD {
	return BDD{True, t}
}

// False returns the constant false BDD
func (t *Table) False() BDD {
	return BDD{False, t}
}

// From returns a (constant) BDD from a boolean value.
func (t *Table) From(v bool) BDD {
	return BDD{b2a(v), t}
}

// BDD returns the handle for the diagram rooted at a.
func (t *Table) BDD(a Addr) BDD {
	return BDD{a, t}
}

// Stats returns a snapshot of the statistics of the table.
func (t *Table) Stats() Stats {
	s := t.stats
	s.Nodes = len(t.nodes)
	s.IndexSize = len(t.index)
	return s
}

func (t *Table) checkaddr(op string, a Addr) error {
	if !t.Contains(a) {
		return t.operror(op, a, undefined, fmt.Errorf("%w: address %d not in table", ErrPrecondition, a))
	}
	return nil
}
