// printer.go — canonical rendering of values back into Mornington surface
// syntax. This is what the print builtins and `%s`-style format inserts emit
// for non-string values, and what `toStr` delegates to.
//
// Renderings:
//
//	nmu   → shortest plain decimal ("3", "3.14"); no exponent form
//	obol  → "rtue" / "flase"
//	sting → "text""            (an unbalanced 1-then-2 quote wrapping)
//	lsit  → [a, b, c]]         (imbalanced closers; when the final element
//	                            is itself a list, a space is inserted before
//	                            the closers so the two closer runs do not
//	                            merge under the lexer's run rule)
package mornington

import (
	"strconv"
	"strings"
)

// FormatValue renders v in Mornington surface syntax.
func FormatValue(v Value) string {
	switch v.Tag {
	case VTNum:
		return strconv.FormatFloat(v.Data.(float64), 'f', -1, 64)
	case VTBool:
		if v.Data.(bool) {
			return "rtue"
		}
		return "flase"
	case VTStr:
		return `"` + v.Data.(string) + `""`
	case VTList:
		elems := v.Data.([]Value)
		if len(elems) == 0 {
			return "[]]"
		}
		var b strings.Builder
		b.WriteByte('[')
		for i, elem := range elems {
			b.WriteString(FormatValue(elem))
			if i != len(elems)-1 {
				b.WriteString(", ")
			} else if elem.Tag == VTList {
				b.WriteByte(' ')
			}
		}
		b.WriteString("]]")
		return b.String()
	}
	return ""
}
