package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/victorpoughon/not-so-float/elementary"
	"github.com/victorpoughon/not-so-float/interval"
)

var ErrUsage = errors.New("invalid usage")

// evaluator computes an operation from its command line arguments.
type evaluator struct {
	usage string
	eval  func(args []string) (string, error)
}

func unaryOp(f func(a interval.Operand) interval.Union) evaluator {
	return evaluator{
		usage: "<union>",
		eval: func(args []string) (string, error) {
			u, err := parseOperands(args, 1)
			if err != nil {
				return "", err
			}
			return f(u[0]).String(), nil
		},
	}
}

func binaryOp(f func(a, b interval.Operand) interval.Union) evaluator {
	return evaluator{
		usage: "<union> <union>",
		eval: func(args []string) (string, error) {
			u, err := parseOperands(args, 2)
			if err != nil {
				return "", err
			}
			return f(u[0], u[1]).String(), nil
		},
	}
}

func predicateOp(f func(a, b interval.Operand) bool) evaluator {
	return evaluator{
		usage: "<union> <union>",
		eval: func(args []string) (string, error) {
			u, err := parseOperands(args, 2)
			if err != nil {
				return "", err
			}
			return strconv.FormatBool(f(u[0], u[1])), nil
		},
	}
}

func powerOp(f func(a interval.Operand, n int) interval.Union) evaluator {
	return evaluator{
		usage: "<union> <integer>",
		eval: func(args []string) (string, error) {
			if len(args) != 2 {
				return "", errors.Wrapf(ErrUsage, "expected 2 arguments, got %d", len(args))
			}
			u, err := parseOperands(args[:1], 1)
			if err != nil {
				return "", err
			}
			n, err := strconv.Atoi(strings.TrimSpace(args[1]))
			if err != nil {
				return "", errors.Wrapf(ErrUsage, "exponent %q is not an integer", args[1])
			}
			return f(u[0], n).String(), nil
		},
	}
}

var evaluators = map[string]evaluator{
	"add":          binaryOp(interval.Add),
	"sub":          binaryOp(interval.Sub),
	"mul":          binaryOp(interval.Mul),
	"div":          binaryOp(interval.Div),
	"neg":          unaryOp(interval.Neg),
	"intersection": binaryOp(interval.Intersection),
	"complement":   unaryOp(interval.Complement),
	"overlap":      predicateOp(interval.Overlap),
	"disjoint":     predicateOp(interval.Disjoint),
	"hull": unaryOp(func(a interval.Operand) interval.Union {
		return a.ToUnion().Hull()
	}),
	"abs":       unaryOp(elementary.Abs),
	"min":       binaryOp(elementary.Min),
	"max":       binaryOp(elementary.Max),
	"exp":       unaryOp(elementary.Exp),
	"log":       unaryOp(elementary.Log),
	"pow":       binaryOp(elementary.Pow),
	"powint":    powerOp(elementary.PowInt),
	"powintinv": powerOp(elementary.PowIntInv),
	"sqrt":      unaryOp(elementary.Sqrt),
	"sqinv":     unaryOp(elementary.SqInv),
	"cos":       unaryOp(elementary.Cos),
	"sin":       unaryOp(elementary.Sin),
	"tan":       unaryOp(elementary.Tan),
	"acos":      unaryOp(elementary.Acos),
	"asin":      unaryOp(elementary.Asin),
	"atan":      unaryOp(elementary.Atan),
}

// operations returns the sorted names of the supported operations.
func operations() []string {
	names := lo.Keys(evaluators)
	slices.Sort(names)
	return names
}

// usage lists every operation with its arguments, one per line.
func usage() string {
	var b strings.Builder
	for _, name := range operations() {
		fmt.Fprintf(&b, "   %-13s %s\n", name, evaluators[name].usage)
	}
	return b.String()
}

func parseOperands(args []string, n int) ([]interval.Union, error) {
	if len(args) != n {
		return nil, errors.Wrapf(ErrUsage, "expected %d arguments, got %d", n, len(args))
	}
	operands := make([]interval.Union, n)
	for i, arg := range args {
		u, err := interval.Parse(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i+1)
		}
		operands[i] = u
	}
	return operands, nil
}

// evaluate applies the operation named op to args.
func evaluate(op string, args []string) (string, error) {
	e, ok := evaluators[strings.ToLower(op)]
	if !ok {
		return "", errors.Wrapf(ErrUsage, "unknown operation %q, expected one of %s", op, strings.Join(operations(), ", "))
	}
	return e.eval(args)
}
