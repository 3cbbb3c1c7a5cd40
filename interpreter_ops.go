// interpreter_ops.go — binary operator dispatch.
//
// Dispatch order for the five arithmetic operators:
//
//  1. lsit op scalar — BROADCAST: the operator is applied elementwise, each
//     element standing as the left operand against the scalar. The result is
//     a list of the per-element results (which keep their own kinds, so
//     `[1, "4"] + 2` yields `[3, "42"]`).
//  2. scalar op lsit — broadcast symmetrically, but only for `+` and `*`.
//     For `-`, `/`, `%` the list is coerced to the scalar's kind as a whole.
//  3. Otherwise the right operand is coerced to the LEFT operand's kind and
//     the scalar table for that kind applies:
//     obol : + OR, - XOR, * AND, / XNOR, % NAND
//     nmu  : IEEE arithmetic; / by zero is a runtime error; % truncates
//     sting: + concat, - drop first occurrence, * repeat |trunc(n)| times,
//     / drop every occurrence, % format (see formatString)
//     lsit : + concat, - drop first equal element, * repeat, / drop every
//     equal element, % count of not-equal elements
//
// Comparisons never broadcast: `==`/`!=` coerce the right side to the left
// side's kind and compare structurally; `===`/`!==` compare kind and content
// without coercion; the orderings coerce both sides to nmu.
package mornington

import (
	"fmt"
	"math"
	"strings"
)

func isArith(op string) bool {
	switch op {
	case "+", "-", "*", "/", "%":
		return true
	}
	return false
}

func applyBinary(op string, lhs, rhs Value) (Value, error) {
	if isArith(op) {
		if lhs.Tag == VTList && rhs.Tag != VTList {
			src := lhs.Data.([]Value)
			out := make([]Value, 0, len(src))
			for _, elem := range src {
				v, err := applyBinary(op, elem, rhs)
				if err != nil {
					return Value{}, err
				}
				out = append(out, v)
			}
			return List(out), nil
		}
		if rhs.Tag == VTList && lhs.Tag != VTList && (op == "+" || op == "*") {
			src := rhs.Data.([]Value)
			out := make([]Value, 0, len(src))
			for _, elem := range src {
				v, err := applyBinary(op, lhs, elem)
				if err != nil {
					return Value{}, err
				}
				out = append(out, v)
			}
			return List(out), nil
		}
		return applyScalar(op, lhs, rhs)
	}

	switch op {
	case "==":
		return Bool(looseEqual(lhs, rhs)), nil
	case "!=":
		return Bool(!looseEqual(lhs, rhs)), nil
	case "===":
		return Bool(deepEqual(lhs, rhs)), nil
	case "!==":
		return Bool(!deepEqual(lhs, rhs)), nil
	case "<":
		return Bool(toNum(lhs) < toNum(rhs)), nil
	case ">":
		return Bool(toNum(lhs) > toNum(rhs)), nil
	case "<=":
		return Bool(toNum(lhs) <= toNum(rhs)), nil
	case ">=":
		return Bool(toNum(lhs) >= toNum(rhs)), nil
	}
	return Value{}, &RuntimeError{Msg: fmt.Sprintf("internal: unknown operator %q", op)}
}

// looseEqual is `==`: the right side is coerced to the left side's kind.
func looseEqual(lhs, rhs Value) bool {
	switch lhs.Tag {
	case VTBool:
		return lhs.Data.(bool) == toBool(rhs)
	case VTNum:
		return lhs.Data.(float64) == toNum(rhs)
	case VTStr:
		return lhs.Data.(string) == toStr(rhs)
	case VTList:
		return listsEqual(lhs.Data.([]Value), toList(rhs))
	}
	return false
}

// applyScalar applies op with the right operand coerced to the left
// operand's kind.
func applyScalar(op string, lhs, rhs Value) (Value, error) {
	switch lhs.Tag {
	case VTBool:
		l, r := lhs.Data.(bool), toBool(rhs)
		switch op {
		case "+":
			return Bool(l || r), nil
		case "-":
			return Bool(l != r), nil
		case "*":
			return Bool(l && r), nil
		case "/":
			return Bool(l == r), nil
		case "%":
			return Bool(!(l && r)), nil
		}

	case VTNum:
		l, r := lhs.Data.(float64), toNum(rhs)
		switch op {
		case "+":
			return Num(l + r), nil
		case "-":
			return Num(l - r), nil
		case "*":
			return Num(l * r), nil
		case "/":
			if r == 0 {
				return Value{}, &RuntimeError{Msg: fmt.Sprintf("division of %s by zero", FormatValue(lhs))}
			}
			return Num(l / r), nil
		case "%":
			return Num(math.Mod(l, r)), nil
		}

	case VTStr:
		l := lhs.Data.(string)
		switch op {
		case "+":
			return Str(l + toStr(rhs)), nil
		case "-":
			return Str(strings.Replace(l, toStr(rhs), "", 1)), nil
		case "*":
			return Str(strings.Repeat(l, repeatCount(rhs))), nil
		case "/":
			return Str(strings.ReplaceAll(l, toStr(rhs), "")), nil
		case "%":
			out, err := formatString(l, toList(rhs))
			if err != nil {
				return Value{}, err
			}
			return Str(out), nil
		}

	case VTList:
		l := lhs.Data.([]Value)
		switch op {
		case "+":
			out := make([]Value, 0, len(l)+len(toList(rhs)))
			out = append(out, l...)
			out = append(out, toList(rhs)...)
			return List(out), nil
		case "-":
			// drop the first element equal to rhs, taken as a whole value
			out := make([]Value, 0, len(l))
			dropped := false
			for _, elem := range l {
				if !dropped && deepEqual(elem, rhs) {
					dropped = true
					continue
				}
				out = append(out, elem)
			}
			return List(out), nil
		case "*":
			n := repeatCount(rhs)
			out := make([]Value, 0, len(l)*n)
			for i := 0; i < n; i++ {
				out = append(out, l...)
			}
			return List(out), nil
		case "/":
			// drop every element equal to rhs
			out := make([]Value, 0, len(l))
			for _, elem := range l {
				if !deepEqual(elem, rhs) {
					out = append(out, elem)
				}
			}
			return List(out), nil
		case "%":
			// count the elements not equal to rhs
			n := 0
			for _, elem := range l {
				if !deepEqual(elem, rhs) {
					n++
				}
			}
			return Num(float64(n)), nil
		}
	}
	return Value{}, &RuntimeError{Msg: fmt.Sprintf("internal: unknown operator %q", op)}
}

// repeatCount is the repetition factor for `*` on strings and lists:
// |trunc(nmu coercion)|.
func repeatCount(v Value) int {
	n := math.Trunc(toNum(v))
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return int(math.Abs(n))
}

// ─────────────────────────── format mini-language ───────────────────────────

// formatString implements `sting % lsit`. The template is scanned left to
// right: `\%` emits a literal percent; `%n`, `%o`, `%s`, `%l` consume the
// next argument, coerce it to the indicated kind, and emit its string form.
// Running out of arguments is a runtime error; surplus arguments are
// ignored; any other `%x` passes through untouched.
func formatString(tpl string, args []Value) (string, error) {
	var b strings.Builder
	argi := 0
	for i := 0; i < len(tpl); {
		c := tpl[i]
		if c == '\\' && i+1 < len(tpl) && tpl[i+1] == '%' {
			b.WriteByte('%')
			i += 2
			continue
		}
		if c == '%' && i+1 < len(tpl) {
			var insert string
			switch tpl[i+1] {
			case 'n':
				insert = "n"
			case 'o':
				insert = "o"
			case 's':
				insert = "s"
			case 'l':
				insert = "l"
			default:
				b.WriteByte('%')
				i++
				continue
			}
			if argi >= len(args) {
				return "", &RuntimeError{Msg: fmt.Sprintf(
					"format string needs at least %d argument(s), %d supplied", argi+1, len(args))}
			}
			arg := args[argi]
			argi++
			switch insert {
			case "n":
				b.WriteString(FormatValue(Num(toNum(arg))))
			case "o":
				b.WriteString(FormatValue(Bool(toBool(arg))))
			case "s":
				b.WriteString(toStr(arg))
			case "l":
				b.WriteString(FormatValue(List(toList(arg))))
			}
			i += 2
			continue
		}
		b.WriteByte(c)
		i++
	}
	return b.String(), nil
}
