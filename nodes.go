// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package lbdd

import (
	"fmt"
	"math"
)

// Var is the index of a decision variable. Variables are compared using their
// natural order: a node labelled with variable v can only have children
// labelled with variables strictly greater than v. The two largest values are
// reserved for the labels of the constants.
type Var uint32

const (
	// VarZero is the label of the constant False.
	VarZero Var = math.MaxUint32 - 1
	// VarOne is the label of the constant True.
	VarOne Var = math.MaxUint32
	// MaxVar is the largest variable that can label a decision node.
	MaxVar Var = math.MaxUint32 - 2
)

// IsTerminal reports whether v is one of the two sentinel labels.
func (v Var) IsTerminal() bool {
	return v >= VarZero
}

// Addr is the address of a node inside a Table. Only the 48 least significant
// bits are used.
type Addr uint64

const (
	// False is the address of the constant function false.
	False Addr = 0
	// True is the address of the constant function true.
	True Addr = 1
	// MaxAddr is the largest address that can be stored in a Node.
	MaxAddr Addr = addrMask - 1
	// undefined is never a valid address; it marks empty slots in caches and
	// pending results on the traversal stack.
	undefined Addr = addrMask
)

const addrMask = 1<<48 - 1

// IsTerminal reports whether a is the address of a constant.
func (a Addr) IsTerminal() bool {
	return a < 2
}

// Node is the packed encoding of a BDD node: a 32 bits variable and two 48
// bits addresses spread over two machine words. The low child and the lower
// half of the variable share the first word, the high child and the upper half
// share the second, so each access costs one mask or one shift.
type Node [2]uint64

var (
	nodeZero = Node{uint64(VarZero&0xFFFF)<<48 | uint64(False), uint64(VarZero>>16)<<48 | uint64(False)}
	nodeOne  = Node{uint64(VarOne&0xFFFF)<<48 | uint64(True), uint64(VarOne>>16)<<48 | uint64(True)}
)

// Pack builds the Node for the triplet (v, low, high). We return an error
// wrapping ErrCapacityExceeded if one of the addresses does not fit in 48
// bits. Pack does not check the reduction or ordering rules; see MakeNode.
func Pack(v Var, low, high Addr) (Node, error) {
	if low > MaxAddr || high > MaxAddr {
		return Node{}, fmt.Errorf("%w: node (%d, %d, %d) has an address above %d", ErrCapacityExceeded, v, low, high, MaxAddr)
	}
	return pack(v, low, high), nil
}

// pack is the unchecked version of Pack, used when addresses are already known
// to be in range.
func pack(v Var, low, high Addr) Node {
	return Node{
		uint64(v&0xFFFF)<<48 | uint64(low),
		uint64(v>>16)<<48 | uint64(high),
	}
}

// Unpack returns the variable and the two children of n. Callers are expected
// to unpack a node once per visit and keep the results in local variables.
func (n Node) Unpack() (Var, Addr, Addr) {
	return Var(n[0]>>48) | Var(n[1]>>48)<<16, Addr(n[0] & addrMask), Addr(n[1] & addrMask)
}

// Level returns the variable labelling n.
func (n Node) Level() Var {
	return Var(n[0]>>48) | Var(n[1]>>48)<<16
}

// Low returns the address of the false branch of n.
func (n Node) Low() Addr {
	return Addr(n[0] & addrMask)
}

// High returns the address of the true branch of n.
func (n Node) High() Addr {
	return Addr(n[1] & addrMask)
}

func (n Node) String() string {
	v, low, high := n.Unpack()
	switch v {
	case VarZero:
		return "False"
	case VarOne:
		return "True"
	}
	return fmt.Sprintf("(%d ? %d : %d)", v, high, low)
}
