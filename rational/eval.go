package rational

// op is one of the four operator kinds recognized by the tokenizer.
type op int

const (
	opMul op = iota
	opAdd
	opSub
	opDiv
)

// precedence groups operators into tiers reduced in order: division and
// multiplication first, then addition and subtraction. Operators within a
// tier apply left to right.
var precedence = [][]op{
	{opDiv, opMul},
	{opAdd, opSub},
}

func opFor(c rune) op {
	switch c {
	case '+':
		return opAdd
	case '-':
		return opSub
	case '*':
		return opMul
	default:
		return opDiv
	}
}

// compute applies the operator to its two operands. Only division can
// fail.
func (o op) compute(a, b Rational) (Rational, error) {
	switch o {
	case opMul:
		return a.Mul(b), nil
	case opAdd:
		return a.Add(b), nil
	case opSub:
		return a.Sub(b), nil
	default:
		return a.CheckedDiv(b)
	}
}

func tierHas(tier []op, o op) bool {
	for _, t := range tier {
		if t == o {
			return true
		}
	}
	return false
}

// Run evaluates one arithmetic expression and returns the reduced result.
// Each call is independent; only the prime cache used by normalization is
// shared across calls.
func Run(expr string) (Rational, error) {
	var parts []Rational
	var ops []op

	// Phase 1: single left-to-right scan. Digits fold into the pending
	// operand by addition, not by place value, so "23" accumulates to 5.
	var cur *Rational
	for index, c := range []rune(expr) {
		switch {
		case c >= '0' && c <= '9':
			if cur == nil {
				acc := FromInt(0)
				cur = &acc
			}
			*cur = cur.AddInt(int64(c - '0'))
		case c == '+' || c == '-' || c == '*' || c == '/':
			if cur != nil {
				parts = append(parts, *cur)
				cur = nil
			}
			ops = append(ops, opFor(c))
		case c == ' ':
		default:
			return Rational{}, &SyntaxError{Index: index}
		}
	}
	if cur == nil {
		return Rational{}, ErrInvalidExpr
	}
	parts = append(parts, *cur)

	// Phase 2: reduce tier by tier. An operator in the current tier is
	// removed along with its left operand; the computed result replaces
	// the right operand in place. Operators outside the tier are skipped.
	for _, tier := range precedence {
		index := 0
		for index < len(ops) {
			if !tierHas(tier, ops[index]) {
				index++
				continue
			}
			o := ops[index]
			ops = append(ops[:index], ops[index+1:]...)
			a := parts[index]
			parts = append(parts[:index], parts[index+1:]...)
			res, err := o.compute(a, parts[index])
			if err != nil {
				return Rational{}, err
			}
			parts[index] = res
		}
	}

	return parts[0], nil
}
