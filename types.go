// types.go
//
// The four Mornington coercions. Every coercion is TOTAL: any value converts
// to any target kind, so operator dispatch never faults on operand types.
//
//	toNum:  obol → 0/1; sting → sum of Unicode code points; lsit → sum of
//	        element coercions.
//	toBool: nmu → ≠0; sting → numeric coercion ≠ 0 (so "" and "\x00" are
//	        falsy); lsit → any element truthy.
//	toStr:  sting → its text verbatim; everything else → surface rendering.
//	toList: lsit → its elements; any scalar → a one-element list.
package mornington

// toNum is the total coercion to nmu.
func toNum(v Value) float64 {
	switch v.Tag {
	case VTNum:
		return v.Data.(float64)
	case VTBool:
		if v.Data.(bool) {
			return 1
		}
		return 0
	case VTStr:
		total := 0.0
		for _, r := range v.Data.(string) {
			total += float64(r)
		}
		return total
	case VTList:
		total := 0.0
		for _, elem := range v.Data.([]Value) {
			total += toNum(elem)
		}
		return total
	}
	return 0
}

// toBool is the total coercion to obol.
func toBool(v Value) bool {
	switch v.Tag {
	case VTBool:
		return v.Data.(bool)
	case VTNum:
		return v.Data.(float64) != 0
	case VTStr:
		return toNum(v) != 0
	case VTList:
		for _, elem := range v.Data.([]Value) {
			if toBool(elem) {
				return true
			}
		}
		return false
	}
	return false
}

// toStr is the total coercion to sting. A sting yields its raw text; other
// kinds render in surface syntax.
func toStr(v Value) string {
	if v.Tag == VTStr {
		return v.Data.(string)
	}
	return FormatValue(v)
}

// toList is the total coercion to lsit.
func toList(v Value) []Value {
	if v.Tag == VTList {
		return v.Data.([]Value)
	}
	return []Value{v}
}

// deepEqual is structural equality without coercion: same kind, same content,
// lists element-wise and recursive. This is `===`.
func deepEqual(a, b Value) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case VTBool:
		return a.Data.(bool) == b.Data.(bool)
	case VTNum:
		return a.Data.(float64) == b.Data.(float64)
	case VTStr:
		return a.Data.(string) == b.Data.(string)
	case VTList:
		return listsEqual(a.Data.([]Value), b.Data.([]Value))
	}
	return false
}

func listsEqual(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !deepEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}
