package checked

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUint8Ops(t *testing.T) {
	cases := []struct {
		name string
		f    func(a, b uint8) (uint8, error)
		a, b uint8
		want uint8
		ok   bool
	}{
		{"add", Add[uint8], 2, 3, 5, true},
		{"add-to-max", Add[uint8], 254, 1, 255, true},
		{"add-overflow", Add[uint8], 255, 1, 0, false},
		{"add-both-max", Add[uint8], 255, 255, 0, false},
		{"sub", Sub[uint8], 3, 2, 1, true},
		{"sub-to-zero", Sub[uint8], 3, 3, 0, true},
		{"sub-underflow", Sub[uint8], 2, 3, 0, false},
		{"mul", Mul[uint8], 2, 3, 6, true},
		{"mul-to-max", Mul[uint8], 85, 3, 255, true},
		{"mul-overflow", Mul[uint8], 128, 2, 0, false},
		{"div", Div[uint8], 7, 2, 3, true},
		{"div-zero", Div[uint8], 7, 0, 0, false},
		{"div-euclid", DivEuclid[uint8], 7, 2, 3, true},
		{"rem", Rem[uint8], 7, 2, 1, true},
		{"rem-zero", Rem[uint8], 7, 0, 0, false},
		{"rem-euclid", RemEuclid[uint8], 7, 2, 1, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.f(c.a, c.b)
			require.Equal(t, c.want, got)
			if c.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestInt8Ops(t *testing.T) {
	cases := []struct {
		name string
		f    func(a, b int8) (int8, error)
		a, b int8
		want int8
		ok   bool
	}{
		{"add", Add[int8], 2, 3, 5, true},
		{"add-negative", Add[int8], 2, -3, -1, true},
		{"add-both-negative", Add[int8], -2, -3, -5, true},
		{"add-max-min", Add[int8], math.MaxInt8, math.MinInt8, -1, true},
		{"add-overflow", Add[int8], math.MaxInt8, 1, 0, false},
		{"add-underflow", Add[int8], math.MinInt8, -1, 0, false},
		{"sub", Sub[int8], 3, 2, 1, true},
		{"sub-negative", Sub[int8], 2, 3, -1, true},
		{"sub-both-negative", Sub[int8], -2, -3, 1, true},
		{"sub-min-from-minus-one", Sub[int8], -1, math.MinInt8, math.MaxInt8, true},
		{"sub-underflow", Sub[int8], math.MinInt8, 1, 0, false},
		{"sub-overflow", Sub[int8], 0, math.MinInt8, 0, false},
		{"mul", Mul[int8], 2, 3, 6, true},
		{"mul-negatives", Mul[int8], -2, -3, 6, true},
		{"mul-mixed", Mul[int8], -2, 3, -6, true},
		{"mul-max-by-minus-one", Mul[int8], math.MaxInt8, -1, math.MinInt8 + 1, true},
		{"mul-to-min", Mul[int8], -64, 2, math.MinInt8, true},
		{"mul-overflow", Mul[int8], math.MaxInt8, 2, 0, false},
		{"mul-underflow", Mul[int8], math.MinInt8, 2, 0, false},
		{"mul-min-by-minus-one", Mul[int8], math.MinInt8, -1, 0, false},
		{"mul-minus-one-by-min", Mul[int8], -1, math.MinInt8, 0, false},
		{"div", Div[int8], -2, 2, -1, true},
		{"div-truncates", Div[int8], -7, 2, -3, true},
		{"div-zero", Div[int8], 1, 0, 0, false},
		{"div-min-by-minus-one", Div[int8], math.MinInt8, -1, 0, false},
		{"rem", Rem[int8], -3, 2, -1, true},
		{"rem-zero", Rem[int8], 1, 0, 0, false},
		{"rem-min-by-minus-one", Rem[int8], math.MinInt8, -1, 0, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.f(c.a, c.b)
			require.Equal(t, c.want, got)
			if c.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestInt64Ops(t *testing.T) {
	cases := []struct {
		name string
		f    func(a, b int64) (int64, error)
		a, b int64
		want int64
		ok   bool
	}{
		{"add", Add[int64], 2, 3, 5, true},
		{"add-overflow", Add[int64], math.MaxInt64, 1, 0, false},
		{"add-underflow", Add[int64], math.MinInt64, math.MinInt64, 0, false},
		{"sub-underflow", Sub[int64], math.MinInt64, 1, 0, false},
		{"sub-overflow", Sub[int64], -2, math.MaxInt64, 0, false},
		{"mul", Mul[int64], -2, 3, -6, true},
		{"mul-overflow", Mul[int64], math.MaxInt64, 2, 0, false},
		{"mul-underflow", Mul[int64], 2, math.MinInt64, 0, false},
		{"div", Div[int64], -2, -2, 1, true},
		{"div-zero", Div[int64], 1, 0, 0, false},
		{"div-min-by-minus-one", Div[int64], math.MinInt64, -1, 0, false},
		{"rem", Rem[int64], -3, -2, -1, true},
		{"rem-min-by-minus-one", Rem[int64], math.MinInt64, -1, 0, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.f(c.a, c.b)
			require.Equal(t, c.want, got)
			if c.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestUint64Ops(t *testing.T) {
	cases := []struct {
		name string
		f    func(a, b uint64) (uint64, error)
		a, b uint64
		want uint64
		ok   bool
	}{
		{"add", Add[uint64], 2, 3, 5, true},
		{"add-overflow", Add[uint64], math.MaxUint64, 1, 0, false},
		{"sub", Sub[uint64], 3, 2, 1, true},
		{"sub-underflow", Sub[uint64], 2, 3, 0, false},
		{"mul", Mul[uint64], 2, 3, 6, true},
		{"mul-overflow", Mul[uint64], math.MaxUint64, 2, 0, false},
		{"div", Div[uint64], 2, 2, 1, true},
		{"div-zero", Div[uint64], 1, 0, 0, false},
		{"rem", Rem[uint64], 3, 2, 1, true},
		{"rem-zero", Rem[uint64], 1, 0, 0, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.f(c.a, c.b)
			require.Equal(t, c.want, got)
			if c.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestEuclideanSemantics(t *testing.T) {
	// Quotient rounds so that the remainder is never negative, whatever the
	// sign mix; plain Div/Rem truncate toward zero instead.
	cases := []struct {
		name     string
		a, b     int32
		quotient int32
		rem      int32
	}{
		{"positive-positive", 7, 2, 3, 1},
		{"negative-dividend", -7, 2, -4, 1},
		{"negative-divisor", 7, -2, -3, 1},
		{"both-negative", -7, -2, 4, 1},
		{"exact", -8, 2, -4, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			q, err := DivEuclid(c.a, c.b)
			require.NoError(t, err)
			require.Equal(t, c.quotient, q)

			r, err := RemEuclid(c.a, c.b)
			require.NoError(t, err)
			require.Equal(t, c.rem, r)

			// q*b + r must reproduce the dividend.
			require.Equal(t, c.a, q*c.b+r)
		})
	}
}

func TestTruncatedRemainderSign(t *testing.T) {
	r, err := Rem[int16](-7, 2)
	require.NoError(t, err)
	require.Equal(t, int16(-1), r)

	r, err = Rem[int16](7, -2)
	require.NoError(t, err)
	require.Equal(t, int16(1), r)
}

func TestDivisionMinByMinusOne(t *testing.T) {
	checkMinDivision[int8](t)
	checkMinDivision[int16](t)
	checkMinDivision[int32](t)
	checkMinDivision[int64](t)
	checkMinDivision[int](t)
}

// checkMinDivision verifies that the minimum of every signed width divided by
// -1 is rejected as an overflow by the whole division family instead of
// wrapping back to the minimum.
func checkMinDivision[T Signed](t *testing.T) {
	t.Helper()

	min := MinOf[T]()
	ops := map[string]func(a, b T) (T, error){
		"div":        Div[T],
		"div-euclid": DivEuclid[T],
		"rem":        Rem[T],
		"rem-euclid": RemEuclid[T],
	}
	for name, f := range ops {
		got, err := f(min, T(-1))
		require.Error(t, err, "%s(%v, -1) of %s", name, min, TypeName[T]())
		require.Equal(t, T(0), got)

		var overflow *OverflowError
		require.ErrorAs(t, err, &overflow)
	}

	// The guard must not reject the neighboring cases.
	got, err := Div(min+1, T(-1))
	require.NoError(t, err)
	require.Equal(t, -(min + 1), got)

	got, err = Div(min, T(1))
	require.NoError(t, err)
	require.Equal(t, min, got)
}

func TestPow(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		cases := []struct {
			name string
			a    int
			exp  uint
			want int
			ok   bool
		}{
			{"square", 12, 2, 144, true},
			{"cube-negative", -2, 3, -8, true},
			{"zero-exponent", 99, 0, 1, true},
			{"zero-base-zero-exponent", 0, 0, 1, true},
			{"zero-base", 0, 5, 0, true},
			{"one-base", 1, 200, 1, true},
			{"minus-one-even", -1, 1000, 1, true},
			{"minus-one-odd", -1, 1001, -1, true},
			{"large", 2, 62, 1 << 62, true},
			{"overflow", 2, 63, 0, false},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				got, err := Pow(c.a, c.exp)
				require.Equal(t, c.want, got)
				if c.ok {
					require.NoError(t, err)
				} else {
					require.Error(t, err)
				}
			})
		}
	})

	t.Run("uint8", func(t *testing.T) {
		got, err := Pow[uint8](3, 5)
		require.NoError(t, err)
		require.Equal(t, uint8(243), got)

		_, err = Pow[uint8](2, 8)
		require.Error(t, err)

		got, err = Pow[uint8](2, 7)
		require.NoError(t, err)
		require.Equal(t, uint8(128), got)
	})

	t.Run("int8-reaches-min", func(t *testing.T) {
		got, err := Pow[int8](-2, 7)
		require.NoError(t, err)
		require.Equal(t, int8(math.MinInt8), got)

		_, err = Pow[int8](-2, 8)
		require.Error(t, err)
	})

	t.Run("identity-exponent", func(t *testing.T) {
		got, err := Pow[int16](math.MinInt16, 1)
		require.NoError(t, err)
		require.Equal(t, int16(math.MinInt16), got)
	})

	t.Run("error-keeps-original-operands", func(t *testing.T) {
		_, err := Pow[uint8](4, 9)
		require.Error(t, err)

		var overflow *OverflowError
		require.ErrorAs(t, err, &overflow)
		require.Equal(t, "4", overflow.Left)
		require.Equal(t, "**", overflow.Op)
		require.Equal(t, "9", overflow.Right)
	})
}

func TestShifts(t *testing.T) {
	t.Run("uint8", func(t *testing.T) {
		got, err := Shl[uint8](1, 2)
		require.NoError(t, err)
		require.Equal(t, uint8(4), got)

		// Bits falling off the top are not an error, only the amount is
		// checked against the width.
		got, err = Shl[uint8](0xff, 7)
		require.NoError(t, err)
		require.Equal(t, uint8(0x80), got)

		_, err = Shl[uint8](1, 8)
		require.Error(t, err)

		got, err = Shr[uint8](128, 1)
		require.NoError(t, err)
		require.Equal(t, uint8(64), got)

		_, err = Shr[uint8](1, 8)
		require.Error(t, err)
	})

	t.Run("int64", func(t *testing.T) {
		got, err := Shl[int64](1, 63)
		require.NoError(t, err)
		require.Equal(t, int64(math.MinInt64), got)

		_, err = Shl[int64](1, 64)
		require.Error(t, err)

		// Right shift of a negative value stays arithmetic.
		got, err = Shr[int64](-8, 1)
		require.NoError(t, err)
		require.Equal(t, int64(-4), got)
	})

	t.Run("boundary-of-every-width", func(t *testing.T) {
		checkShiftBoundary[uint8](t)
		checkShiftBoundary[uint16](t)
		checkShiftBoundary[uint32](t)
		checkShiftBoundary[uint64](t)
		checkShiftBoundary[int8](t)
		checkShiftBoundary[int16](t)
		checkShiftBoundary[int32](t)
		checkShiftBoundary[int64](t)
	})
}

func checkShiftBoundary[T Integer](t *testing.T) {
	t.Helper()

	width := uint(BitWidth[T]())
	_, err := Shl[T](1, width-1)
	require.NoError(t, err)
	_, err = Shl[T](1, width)
	require.Error(t, err)

	_, err = Shr[T](1, width-1)
	require.NoError(t, err)
	_, err = Shr[T](1, width)
	require.Error(t, err)
}

func TestBitWidth(t *testing.T) {
	require.Equal(t, 8, BitWidth[uint8]())
	require.Equal(t, 8, BitWidth[int8]())
	require.Equal(t, 16, BitWidth[int16]())
	require.Equal(t, 32, BitWidth[uint32]())
	require.Equal(t, 64, BitWidth[int64]())
	require.Equal(t, 64, BitWidth[uint64]())
}

func TestLimits(t *testing.T) {
	require.Equal(t, uint8(0), MinOf[uint8]())
	require.Equal(t, uint8(math.MaxUint8), MaxOf[uint8]())
	require.Equal(t, int8(math.MinInt8), MinOf[int8]())
	require.Equal(t, int8(math.MaxInt8), MaxOf[int8]())
	require.Equal(t, int16(math.MinInt16), MinOf[int16]())
	require.Equal(t, int16(math.MaxInt16), MaxOf[int16]())
	require.Equal(t, int64(math.MinInt64), MinOf[int64]())
	require.Equal(t, int64(math.MaxInt64), MaxOf[int64]())
	require.Equal(t, uint64(math.MaxUint64), MaxOf[uint64]())
}

type centimeters int8

func TestDefinedTypes(t *testing.T) {
	// Operations and limits follow the underlying type of a defined type.
	got, err := Add(centimeters(100), centimeters(27))
	require.NoError(t, err)
	require.Equal(t, centimeters(127), got)

	_, err = Add(centimeters(100), centimeters(28))
	require.Error(t, err)

	require.Equal(t, centimeters(math.MinInt8), MinOf[centimeters]())
	require.Equal(t, 8, BitWidth[centimeters]())
}
