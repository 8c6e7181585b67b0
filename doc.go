// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package lbdd defines a concrete type for Binary Decision Diagrams (BDD), a data
structure used to efficiently represent Boolean functions, together with an
implementation of the binary Apply operation designed for cache locality.

# Basics

Diagrams are stored in a Table, an append-only arena of nodes. Each node is a
triplet (level, low, high) packed in two machine words: a 32 bits variable and
two 48 bits addresses. We use the index of a node in the arena as its address,
with the convention that 1 (respectively 0) is the address of the constant
function True (respectively False). Nodes are reduced and unique: a table never
holds a node whose two children are equal, nor two nodes with the same triplet.
Variables are used in their natural order, meaning that the children of a node
always have a larger variable than the node itself. As a consequence, two
equivalent functions built in the same table have the same address.

Variables need not be declared in advance. Any value between 0 and MaxVar can
be used with Ithvar, NIthvar or Makeset.

# Apply

The Apply method computes the combination of two diagrams with one of the ten
binary operators of type Operator. It explores the pairs of nodes reachable from
the two operands with an explicit stack, so the depth of a diagram is only
bounded by memory, and stores the result of each pair in a task cache. The task
cache is direct-mapped and lossy: a new entry can evict an older one, which only
costs a recomputation since a hit requires an exact match on the key. The slot
of a task is given by a TaskHasher; the default LocalityHash keeps the tasks
sharing their left operand close together.

The Reorder method copies the nodes reachable from a set of roots into a fresh
table laid out in pre-order or post-order, which improves the locality of later
traversals.

# Errors

Operations return errors instead of panicking. Errors are wrapped in an
*OpError with the context of the failure and match one of the sentinels
ErrCapacityExceeded, ErrInvariantViolation, ErrPrecondition or ErrConfig with
errors.Is. Option Maxnodesize sets a limit on the size of a table, which is the
way to stop a computation on inputs that would otherwise exhaust memory.

# Use of build tags

To check the structural invariants on every node created by the library, you
can compile your executable with the build tag `debug`.

# Concurrency

A Table is not safe for concurrent use. Computations on distinct tables are
independent and can run in parallel.

# Statistics

Method Stats returns the counters of a table, including those of the last
apply. Package lbdd/metrics exports them as Prometheus metrics.
*/
package lbdd
