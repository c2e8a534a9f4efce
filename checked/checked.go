// Copyright 2024-2026 The strict Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in the
// LICENSE file

// Package checked implements the basic integer arithmetic operations with
// overflow, division-by-zero and shift checks. Every operation returns a typed,
// descriptive error instead of wrapping silently or panicking, so the failing
// expression can be reconstructed from the error message alone.

package checked

// Signed is the constraint satisfied by the signed fixed-width integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the constraint satisfied by the unsigned fixed-width integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is the constraint satisfied by all fixed-width integer types.
type Integer interface {
	Signed | Unsigned
}

// BitWidth returns the number of bits in T.
func BitWidth[T Integer]() int {
	w := 1
	for v := T(1); v<<1 != 0; v <<= 1 {
		w++
	}
	return w
}

// MinOf returns the smallest value representable by T.
func MinOf[T Integer]() T {
	var zero T
	if ^zero > zero {
		// unsigned
		return zero
	}
	return T(1) << (BitWidth[T]() - 1)
}

// MaxOf returns the largest value representable by T.
func MaxOf[T Integer]() T {
	return ^MinOf[T]()
}

// Add returns a + b, or an *OverflowError if the exact sum is not
// representable by T. Go defines integer overflow as two's-complement
// wraparound, so the wrapped sum itself tells us whether it happened.
func Add[T Integer](a, b T) (T, error) {
	s := a + b
	if (s < a) != (b < 0) {
		return 0, overflowError(a, "+", b)
	}
	return s, nil
}

// Sub returns a - b, or an *OverflowError if the exact difference is not
// representable by T.
func Sub[T Integer](a, b T) (T, error) {
	d := a - b
	if (d > a) != (b < 0) {
		return 0, overflowError(a, "-", b)
	}
	return d, nil
}

// Mul returns a * b, or an *OverflowError if the exact product is not
// representable by T.
func Mul[T Integer](a, b T) (T, error) {
	if mulOverflows(a, b) {
		return 0, overflowError(a, "*", b)
	}
	return a * b, nil
}

// mulOverflows reports whether a * b wraps. The product cannot be inspected
// after the fact the way a sum can, so the check divides the range limit by
// one operand instead.
func mulOverflows[T Integer](a, b T) bool {
	if a == 0 || b == 0 {
		return false
	}
	min, max := MinOf[T](), MaxOf[T]()
	switch {
	case a > 0 && b > 0:
		return a > max/b
	case a > 0:
		return b < min/a
	case b > 0:
		return a < min/b
	default:
		return b < max/a
	}
}

// Pow returns a raised to exp, or an *OverflowError if any step of the
// exponentiation leaves T's range. The exponent is always an unsigned count,
// independent of T's signedness, and the error records it as such.
// Pow(a, 0) is 1 for every a, including 0.
func Pow[T Integer](a T, exp uint) (T, error) {
	if exp == 0 {
		return 1, nil
	}
	// Exponentiation by squaring; each multiplication is checked so the
	// first unrepresentable intermediate aborts the whole operation.
	base, acc, rest := a, T(1), exp
	for rest > 1 {
		if rest&1 == 1 {
			if mulOverflows(acc, base) {
				return 0, overflowError(a, "**", exp)
			}
			acc *= base
		}
		rest >>= 1
		if mulOverflows(base, base) {
			return 0, overflowError(a, "**", exp)
		}
		base *= base
	}
	if mulOverflows(acc, base) {
		return 0, overflowError(a, "**", exp)
	}
	return acc * base, nil
}

// Div returns a / b truncated toward zero. It fails with a
// *DivisionByZeroError when b is zero and with an *OverflowError when a is
// T's minimum and b is -1: Go would silently evaluate that quotient to a
// (two's-complement wraparound), never trapping, so the guard has to be
// explicit here.
func Div[T Integer](a, b T) (T, error) {
	if b == 0 {
		return 0, divisionByZeroError(a)
	}
	if divOverflows(a, b) {
		return 0, overflowError(a, "/", b)
	}
	return a / b, nil
}

// DivEuclid returns the Euclidean quotient of a and b: the quotient paired
// with a remainder that is never negative. Same failure conditions as Div.
func DivEuclid[T Integer](a, b T) (T, error) {
	if b == 0 {
		return 0, divisionByZeroError(a)
	}
	if divOverflows(a, b) {
		return 0, overflowError(a, "/", b)
	}
	q := a / b
	if r := a % b; r < 0 {
		if b > 0 {
			q--
		} else {
			q++
		}
	}
	return q, nil
}

// Rem returns a % b with the sign of a (the companion of Div). Same failure
// conditions as Div; a remainder of T's minimum by -1 is rejected even though
// the mathematical result would be zero, because the implied division is out
// of range.
func Rem[T Integer](a, b T) (T, error) {
	if b == 0 {
		return 0, divisionByZeroError(a)
	}
	if divOverflows(a, b) {
		return 0, overflowError(a, "%", b)
	}
	return a % b, nil
}

// RemEuclid returns the Euclidean remainder of a and b, which is non-negative
// for every valid input (the companion of DivEuclid). Same failure conditions
// as Div.
func RemEuclid[T Integer](a, b T) (T, error) {
	if b == 0 {
		return 0, divisionByZeroError(a)
	}
	if divOverflows(a, b) {
		return 0, overflowError(a, "%", b)
	}
	r := a % b
	if r < 0 {
		if b > 0 {
			r += b
		} else {
			r -= b
		}
	}
	return r, nil
}

// divOverflows reports the lone in-range failure of signed division: the
// type's minimum divided by -1. Unreachable for unsigned types.
func divOverflows[T Integer](a, b T) bool {
	min := MinOf[T]()
	return min != 0 && a == min && b == ^T(0)
}

// Shl returns a << amount, or a *ShiftError when amount is at least T's bit
// width. Smaller amounts always succeed and match the unchecked shift, even
// when high bits fall off.
func Shl[T Integer](a T, amount uint) (T, error) {
	if amount >= uint(BitWidth[T]()) {
		return 0, shiftError(a, "<<", amount)
	}
	return a << amount, nil
}

// Shr returns a >> amount, or a *ShiftError when amount is at least T's bit
// width. The shift is arithmetic for signed T and logical for unsigned T,
// exactly as the unchecked operator behaves.
func Shr[T Integer](a T, amount uint) (T, error) {
	if amount >= uint(BitWidth[T]()) {
		return 0, shiftError(a, ">>", amount)
	}
	return a >> amount, nil
}
