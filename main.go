package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"ratcalc/rational"
)

func main() {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() { // use `for scanner.Scan()` to keep reading
		res, err := rational.Run(scanner.Text())
		fmt.Println(format(res, err))
	}
}

// format renders an evaluation outcome in the debug style: Ok(<value>)
// on success, Err(<Variant>) on a recoverable failure.
func format(res rational.Rational, err error) string {
	if err == nil {
		return fmt.Sprintf("Ok(%s)", res)
	}
	var syn *rational.SyntaxError
	switch {
	case errors.Is(err, rational.ErrDivisionByZero):
		return "Err(DivisionByZero)"
	case errors.As(err, &syn):
		return fmt.Sprintf("Err(InvalidSyntax(%d))", syn.Index)
	default:
		return "Err(InvalidExpr)"
	}
}
