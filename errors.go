// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package lbdd

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Errors returned by the library. They are usually wrapped in an *OpError that
// gives the context of the failure; use errors.Is to test for them.
var (
	// ErrCapacityExceeded means an address would not fit in 48 bits, or the
	// node table reached the limit set with Maxnodesize.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrInvariantViolation signals a defect in the node table: a redundant
	// node, a duplicate triplet, or an edge breaking the variable order.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrPrecondition is returned when the caller breaks the contract of an
	// operation, for instance by combining diagrams from two different tables.
	ErrPrecondition = errors.New("precondition violation")

	// ErrUnknownOperator is returned when an operation receives an operator
	// outside of the closed set defined in this package. It also matches
	// ErrPrecondition.
	ErrUnknownOperator = fmt.Errorf("%w: unknown operator", ErrPrecondition)

	// ErrConfig is returned when a configuration does not validate.
	ErrConfig = errors.New("invalid configuration")
)

// OpError records the operation and operands that caused an error, together
// with the size and identity of the table at the time of the failure.
type OpError struct {
	Op        string    // Name of the operation, e.g. "apply(and)"
	Left      Addr      // First operand, or the root of a unary operation
	Right     Addr      // Second operand; undefined for unary operations
	TableSize int       // Number of nodes in the table when the error occurred
	Table     uuid.UUID // Identity of the table
	Err       error     // Underlying error
}

func (e *OpError) Error() string {
	if e.Right == undefined {
		return fmt.Sprintf("%s(%d) on table %s (%d nodes): %v", e.Op, e.Left, e.Table, e.TableSize, e.Err)
	}
	return fmt.Sprintf("%s(%d, %d) on table %s (%d nodes): %v", e.Op, e.Left, e.Right, e.Table, e.TableSize, e.Err)
}

// Unwrap returns the underlying error for errors.Is and errors.As.
func (e *OpError) Unwrap() error {
	return e.Err
}

func (t *Table) operror(op string, left, right Addr, err error) error {
	e := &OpError{
		Op:        op,
		Left:      left,
		Right:     right,
		TableSize: len(t.nodes),
		Table:     t.id,
		Err:       err,
	}
	t.logger.Debug("operation failed", "op", op, "left", left, "right", right, "err", err)
	return e
}
