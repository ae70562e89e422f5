package rational

import (
	"fmt"
	"strconv"
)

// Rational is an exact fraction held as a signed numerator/denominator
// pair. Operations return new values reduced to lowest terms. The
// denominator's sign is left as computed; it is not forced positive.
type Rational struct {
	num int64
	den int64
}

// FromInt converts an integer to a rational with denominator 1.
func FromInt(n int64) Rational {
	return Rational{num: n, den: 1}
}

// Add returns a + o, reduced.
func (r Rational) Add(o Rational) Rational {
	return Rational{num: r.num*o.den + o.num*r.den, den: r.den * o.den}.normalize()
}

// Sub returns r - o, reduced.
func (r Rational) Sub(o Rational) Rational {
	return Rational{num: r.num*o.den - o.num*r.den, den: r.den * o.den}.normalize()
}

// Mul returns r * o, reduced.
func (r Rational) Mul(o Rational) Rational {
	return Rational{num: r.num * o.num, den: r.den * o.den}.normalize()
}

// Div returns r / o, reduced. A divisor with a zero denominator is a
// precondition violation and panics; callers that need to reject a
// zero-valued divisor use CheckedDiv instead.
func (r Rational) Div(o Rational) Rational {
	if o.den == 0 {
		panic("cannot divide by zero")
	}
	return Rational{num: r.num * o.den, den: r.den * o.num}.normalize()
}

// CheckedDiv returns r / o, or ErrDivisionByZero when the divisor holds a
// zero value (detected by its numerator).
func (r Rational) CheckedDiv(o Rational) (Rational, error) {
	if o.num == 0 {
		return Rational{}, ErrDivisionByZero
	}
	return r.Div(o), nil
}

// Neg returns the rational with its numerator's sign flipped.
func (r Rational) Neg() Rational {
	return Rational{num: -r.num, den: r.den}
}

// AddInt returns r + n, reduced.
func (r Rational) AddInt(n int64) Rational {
	return Rational{num: r.num + n*r.den, den: r.den}.normalize()
}

// SubInt returns r - n, reduced.
func (r Rational) SubInt(n int64) Rational {
	return Rational{num: r.num - n*r.den, den: r.den}.normalize()
}

// MulInt returns r * n, reduced.
func (r Rational) MulInt(n int64) Rational {
	return Rational{num: r.num * n, den: r.den}.normalize()
}

// DivInt returns r / n by scaling the denominator directly. There is no
// zero check here: DivInt(0) produces a denominator-zero value, and using
// that value as a Div divisor later panics.
func (r Rational) DivInt(n int64) Rational {
	return Rational{num: r.num, den: r.den * n}.normalize()
}

// normalize reduces the pair by the unsigned GCD of its components.
func (r Rational) normalize() Rational {
	g := int64(gcd(unsignedAbs(r.num), unsignedAbs(r.den)))
	return Rational{num: r.num / g, den: r.den / g}
}

// String renders the rational. A denominator of 1 or -1 collapses to a
// plain integer; anything else renders as the truncated quotient followed
// by the remainder over the denominator, e.g. 7/2 -> "31/2".
func (r Rational) String() string {
	switch r.den {
	case 1:
		return strconv.FormatInt(r.num, 10)
	case -1:
		return strconv.FormatInt(-r.num, 10)
	default:
		return fmt.Sprintf("%d%d/%d", r.num/r.den, r.num%r.den, r.den)
	}
}

func unsignedAbs(n int64) uint64 {
	if n < 0 {
		return uint64(-n)
	}
	return uint64(n)
}
