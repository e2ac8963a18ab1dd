package braciole

import "strconv"

// formatDisplayData renders a KindDisplay entry's data cell as text. The
// second return value reports an error state (unknown type or a Data cell
// that does not match DisplayType); the row is then drawn in error colors.
func formatDisplayData(e *Entry) (string, bool) {
	switch e.DisplayType {
	case TypeString:
		if p, ok := e.Data.(*string); ok {
			return *p, false
		}
	case TypeInt32:
		if p, ok := e.Data.(*int32); ok {
			return strconv.FormatInt(int64(*p), 10), false
		}
	case TypeUInt32:
		if p, ok := e.Data.(*uint32); ok {
			return strconv.FormatUint(uint64(*p), 10), false
		}
	case TypeInt64:
		// strconv handles the int64 minimum, which cannot be negated.
		if p, ok := e.Data.(*int64); ok {
			return strconv.FormatInt(*p, 10), false
		}
	case TypeUInt64:
		if p, ok := e.Data.(*uint64); ok {
			return strconv.FormatUint(*p, 10), false
		}
	}
	return "Unknown type", true
}
