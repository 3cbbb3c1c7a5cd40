// errors.go: user-facing error wrapping and caret-snippet rendering
//
// What this file does
// -------------------
// This module turns low-level lexer/parser/runtime diagnostics into readable
// error snippets with a caret pointing at the offending column. The primary
// entry point is `WrapErrorWithSource`, which recognizes the four Mornington
// error kinds, formats them, and returns a new `error` containing a
// multi-line snippet:
//
//	PARSE ERROR at 3:12: balanced wrappers: "(" opened and ")" closed (delimiter counts must differ)
//
//	   2 | x = 3
//	   3 |  y = (x + 1)
//	     |            ^
//	   4 | prointl((y)
//
// The snippet includes up to one line of context before and after the error,
// numbers the lines, and places a caret under the 1-based column.
//
// Error kinds
// -----------
//   - *LexError     — bad comment/string balance, unterminated literals,
//     unknown characters (lexer.go).
//   - *IndentError  — repeated leading-space count within a block, or lines
//     indented past any open block (parser.go).
//   - *ParseError   — balanced wrappers, unexpected tokens, malformed
//     statements (parser.go).
//   - *RuntimeError — name/arity faults, control flow out of context,
//     division by zero, input at EOF, format argument exhaustion, stack
//     overflow (interpreter*.go).
//
// All four carry 1-based Line and 0-based Col coordinates. Anything else is
// returned unchanged by the wrappers.
package mornington

import (
	"fmt"
	"strings"
)

type LexError struct {
	Line int
	Col  int
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("LEXICAL ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

type IndentError struct {
	Line int
	Col  int
	Msg  string
}

func (e *IndentError) Error() string {
	return fmt.Sprintf("INDENTATION ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

type ParseError struct {
	Line int
	Col  int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("PARSE ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

type RuntimeError struct {
	Line int
	Col  int
	Msg  string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("RUNTIME ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

/* ===========================
   PUBLIC API
   =========================== */

// WrapErrorWithSource returns an error augmented with a caret-annotated
// snippet of the provided source. It recognizes the four Mornington error
// kinds and leaves other errors untouched.
func WrapErrorWithSource(err error, src string) error {
	// Fall back to a name-less header (won't show "in <src>").
	return WrapErrorWithName(err, "", src)
}

func WrapErrorWithName(err error, srcName string, src string) error {
	switch e := err.(type) {
	case *LexError:
		// Col is 0-based; render as 1-based.
		return fmt.Errorf("%s", prettyErrorStringLabeled(src, "LEXICAL ERROR", srcName, e.Line, e.Col+1, e.Msg))
	case *IndentError:
		return fmt.Errorf("%s", prettyErrorStringLabeled(src, "INDENTATION ERROR", srcName, e.Line, e.Col+1, e.Msg))
	case *ParseError:
		return fmt.Errorf("%s", prettyErrorStringLabeled(src, "PARSE ERROR", srcName, e.Line, e.Col+1, e.Msg))
	case *RuntimeError:
		return fmt.Errorf("%s", prettyErrorStringLabeled(src, "RUNTIME ERROR", srcName, e.Line, e.Col+1, e.Msg))
	default:
		return err
	}
}

//// END_OF_PUBLIC

/* ===========================
   PRIVATE: snippet rendering
   =========================== */

// prettyErrorStringLabeled builds a snippet with a header and a caret.
// It shows at most one previous and one next line when available.
// Coordinates are treated as 1-based and clamped to the source bounds.
func prettyErrorStringLabeled(src, header, name string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line > len(lines) {
		line = len(lines)
	}
	lineTxt := lines[line-1]

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s in %s at %d:%d: %s\n\n", header, name, line, col, msg)
	} else {
		fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lineTxt)
	caretPad := col - 1
	if caretPad > len(lineTxt) {
		caretPad = len(lineTxt)
	}
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", caretPad))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
