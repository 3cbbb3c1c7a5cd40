// interpreter_exec.go — statement execution, control signals, and calls.
//
// Statement execution threads an explicit control signal upward instead of
// abusing errors: `brek`/`cnotineu` stop at the nearest enclosing loop,
// `retrun` at the function boundary, and a signal that escapes its legal
// context surfaces as a RuntimeError in RunProgram (or at the call site).
//
// Function definitions are hoisted: hoistFuncs registers every `fnuc` in the
// tree (at any nesting depth) into the global namespace before execution
// starts, so calls may precede definitions textually. Executing the `fnuc`
// statement later re-registers the same definition, which is idempotent.
package mornington

import "fmt"

// control signals

type sigKind int

const (
	sigNone sigKind = iota
	sigBreak
	sigContinue
	sigReturn
)

type signal struct {
	kind sigKind
	val  Value // return value, valid for sigReturn
}

var noSignal = signal{kind: sigNone}

// maxCallDepth bounds recursion so that runaway programs get a diagnostic
// instead of a host stack fault.
const maxCallDepth = 5000

// ─────────────────────────────── hoisting ───────────────────────────────────

// hoistFuncs walks the tree and registers every function definition found.
func (ip *Interpreter) hoistFuncs(node S) {
	if len(node) == 0 {
		return
	}
	tag, ok := node[0].(string)
	if !ok {
		return
	}
	if tag == "fun" {
		ip.registerFun(node)
	}
	for _, child := range node[1:] {
		if sub, ok := child.(S); ok {
			ip.hoistFuncs(sub)
		}
	}
}

func (ip *Interpreter) registerFun(node S) {
	name := node[1].(string)
	paramsNode := node[2].(S)
	params := make([]string, 0, len(paramsNode)-1)
	for _, p := range paramsNode[1:] {
		params = append(params, p.(string))
	}
	ip.funcs[name] = &Fun{Name: name, Params: params, Body: node[3].(S)}
}

// ─────────────────────────────── statements ─────────────────────────────────

func (ip *Interpreter) execBlock(blk S, env *Env) (signal, error) {
	for _, raw := range blk[1:] {
		sig, err := ip.execStmt(raw.(S), env)
		if err != nil {
			return noSignal, err
		}
		if sig.kind != sigNone {
			return sig, nil
		}
	}
	return noSignal, nil
}

func (ip *Interpreter) execStmt(stmt S, env *Env) (signal, error) {
	switch stmt[0].(string) {
	case "assign":
		v, err := ip.eval(stmt[2].(S), env)
		if err != nil {
			return noSignal, err
		}
		env.Assign(stmt[1].(string), v)
		return noSignal, nil

	case "expr":
		_, err := ip.eval(stmt[1].(S), env)
		return noSignal, err

	case "if":
		for _, raw := range stmt[1:] {
			arm := raw.(S)
			if arm[0].(string) != "pair" {
				// trailing sele block
				return ip.execBlock(arm, env)
			}
			cond, err := ip.eval(arm[1].(S), env)
			if err != nil {
				return noSignal, err
			}
			if toBool(cond) {
				return ip.execBlock(arm[2].(S), env)
			}
		}
		return noSignal, nil

	case "for":
		// the iterable is evaluated once; iteration runs over that snapshot
		iter, err := ip.eval(stmt[2].(S), env)
		if err != nil {
			return noSignal, err
		}
		name := stmt[1].(string)
		body := stmt[3].(S)
		for _, elem := range toList(iter) {
			env.Assign(name, elem)
			sig, err := ip.execBlock(body, env)
			if err != nil {
				return noSignal, err
			}
			switch sig.kind {
			case sigBreak:
				return noSignal, nil
			case sigReturn:
				return sig, nil
			}
			// sigContinue and sigNone both advance the loop
		}
		return noSignal, nil

	case "while":
		cond := stmt[1].(S)
		body := stmt[2].(S)
		for {
			c, err := ip.eval(cond, env)
			if err != nil {
				return noSignal, err
			}
			if !toBool(c) {
				return noSignal, nil
			}
			sig, err := ip.execBlock(body, env)
			if err != nil {
				return noSignal, err
			}
			switch sig.kind {
			case sigBreak:
				return noSignal, nil
			case sigReturn:
				return sig, nil
			}
		}

	case "break":
		return signal{kind: sigBreak}, nil

	case "continue":
		return signal{kind: sigContinue}, nil

	case "return":
		if len(stmt) == 1 {
			return signal{kind: sigReturn, val: EmptyList()}, nil
		}
		v, err := ip.eval(stmt[1].(S), env)
		if err != nil {
			return noSignal, err
		}
		return signal{kind: sigReturn, val: v}, nil

	case "fun":
		// already hoisted; re-registration keeps the last definition current
		ip.registerFun(stmt)
		return noSignal, nil

	default:
		return noSignal, &RuntimeError{Msg: fmt.Sprintf("internal: unknown statement %q", stmt[0])}
	}
}

// ─────────────────────────────── expressions ────────────────────────────────

func (ip *Interpreter) eval(expr S, env *Env) (Value, error) {
	switch expr[0].(string) {
	case "num":
		return Num(expr[1].(float64)), nil
	case "bool":
		return Bool(expr[1].(bool)), nil
	case "str":
		return Str(expr[1].(string)), nil

	case "id":
		name := expr[1].(string)
		v, ok := env.Get(name)
		if !ok {
			return Value{}, &RuntimeError{Msg: fmt.Sprintf("name %q is not defined", name)}
		}
		return v, nil

	case "list":
		elems := make([]Value, 0, len(expr)-1)
		for _, raw := range expr[1:] {
			v, err := ip.eval(raw.(S), env)
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, v)
		}
		return List(elems), nil

	case "unop":
		v, err := ip.eval(expr[2].(S), env)
		if err != nil {
			return Value{}, err
		}
		return Num(-toNum(v)), nil

	case "binop":
		lhs, err := ip.eval(expr[2].(S), env)
		if err != nil {
			return Value{}, err
		}
		rhs, err := ip.eval(expr[3].(S), env)
		if err != nil {
			return Value{}, err
		}
		return applyBinary(expr[1].(string), lhs, rhs)

	case "call":
		name := expr[1].(string)
		args := make([]Value, 0, len(expr)-2)
		for _, raw := range expr[2:] {
			v, err := ip.eval(raw.(S), env)
			if err != nil {
				return Value{}, err
			}
			args = append(args, v)
		}
		return ip.call(name, args)

	default:
		return Value{}, &RuntimeError{Msg: fmt.Sprintf("internal: unknown expression %q", expr[0])}
	}
}

// call resolves name in the global function namespace — user definitions
// first, then natives — and applies it.
func (ip *Interpreter) call(name string, args []Value) (Value, error) {
	if fn, ok := ip.funcs[name]; ok {
		return ip.apply(fn, args)
	}
	if impl, ok := ip.natives[name]; ok {
		return impl(ip, args)
	}
	return Value{}, &RuntimeError{Msg: fmt.Sprintf("function %q is not defined", name)}
}

func (ip *Interpreter) apply(fn *Fun, args []Value) (Value, error) {
	if len(args) != len(fn.Params) {
		return Value{}, &RuntimeError{Msg: fmt.Sprintf(
			"%s takes %d argument(s), %d passed", fn.Name, len(fn.Params), len(args))}
	}
	if ip.depth >= maxCallDepth {
		return Value{}, &RuntimeError{Msg: fmt.Sprintf(
			"stack overflow: call depth exceeded %d in %s", maxCallDepth, fn.Name)}
	}

	frame := NewEnv(ip.Global)
	for i, p := range fn.Params {
		frame.Define(p, args[i])
	}

	ip.depth++
	sig, err := ip.execBlock(fn.Body, frame)
	ip.depth--
	if err != nil {
		return Value{}, err
	}
	switch sig.kind {
	case sigReturn:
		return sig.val, nil
	case sigBreak:
		return Value{}, &RuntimeError{Msg: fmt.Sprintf("'brek' outside a loop in %s", fn.Name)}
	case sigContinue:
		return Value{}, &RuntimeError{Msg: fmt.Sprintf("'cnotineu' outside a loop in %s", fn.Name)}
	}
	return EmptyList(), nil
}
