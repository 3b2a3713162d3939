package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToInt converts loosely typed input, such as query parameters, to an int.
// Unparseable input yields 0 and floats are truncated.
func ToInt(val any) int {
	switch v := val.(type) {
	case int:
		return v
	case int8, int16, int32, int64:
		return int(asInt64(v))
	case uint, uint8, uint16, uint32, uint64:
		return int(asUint64(v))
	case float32:
		return int(v)
	case float64:
		return int(v)
	case string:
		return atoi(v)
	case []byte:
		return atoi(string(v))
	case nil:
		return 0
	default:
		return atoi(fmt.Sprint(v))
	}
}

// ToString renders a value the way list filters compare it. Stringers are asked
// directly so catalog items match on their display text.
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToBool accepts true, 1, "1" and "true" in any case. Everything else is false.
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case string:
		return truthy(v)
	case []byte:
		return truthy(string(v))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return ToInt(v) == 1
	}
	return false
}

// ContainsFold reports whether sub is within s, ignoring case. An empty sub
// matches everything.
func ContainsFold(s, sub string) bool {
	if sub == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func atoi(s string) int {
	i, _ := strconv.Atoi(strings.TrimSpace(s))
	return i
}

func truthy(s string) bool {
	s = strings.TrimSpace(s)
	return s == "1" || strings.EqualFold(s, "true")
}

func asInt64(v any) int64 {
	switch n := v.(type) {
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	}
	return 0
}

func asUint64(v any) uint64 {
	switch n := v.(type) {
	case uint:
		return uint64(n)
	case uint8:
		return uint64(n)
	case uint16:
		return uint64(n)
	case uint32:
		return uint64(n)
	case uint64:
		return n
	}
	return 0
}
