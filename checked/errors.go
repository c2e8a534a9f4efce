package checked

import "fmt"

// OverflowError describes an add, sub, mul, pow or signed-division result
// that left the range of the operand type. The operands are captured as
// display strings at the point of failure, so the message reconstructs the
// failing expression regardless of the operand type.
type OverflowError struct {
	Left  string
	Op    string
	Right string
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("operation %s %s %s overflowed", e.Left, e.Op, e.Right)
}

// DivisionByZeroError describes a division or remainder whose divisor was
// zero. It records the dividend that was about to be divided.
type DivisionByZeroError struct {
	Dividend string
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("attempted to divide %s by zero", e.Dividend)
}

// ShiftError describes a shift by at least the bit width of the left operand.
// Type carries the left operand's type name, since the offending amount only
// makes sense relative to that type's width.
type ShiftError struct {
	Left   string
	Op     string
	Amount uint
	Type   string
}

func (e *ShiftError) Error() string {
	return fmt.Sprintf("operation %s %s %d attempted to shift too much (the type of LHS is %s)",
		e.Left, e.Op, e.Amount, e.Type)
}

// TypeName returns the stable human-readable name of T, the form %T prints.
// It is the naming capability consumed by ShiftError messages; defined types
// report the name they were declared with.
func TypeName[T Integer]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

func overflowError[L, R Integer](left L, op string, right R) error {
	return &OverflowError{
		Left:  fmt.Sprint(left),
		Op:    op,
		Right: fmt.Sprint(right),
	}
}

func divisionByZeroError[T Integer](dividend T) error {
	return &DivisionByZeroError{Dividend: fmt.Sprint(dividend)}
}

func shiftError[T Integer](left T, op string, amount uint) error {
	return &ShiftError{
		Left:   fmt.Sprint(left),
		Op:     op,
		Amount: amount,
		Type:   TypeName[T](),
	}
}
