package asset

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Condition constants for search filters.
const (
	ConditionEqual              = "eq"
	ConditionNotEqual           = "ne"
	ConditionContains           = "contains"
	ConditionNotContains        = "not_contains"
	ConditionStartsWith         = "starts_with"
	ConditionEndsWith           = "ends_with"
	ConditionGreaterThan        = "gt"
	ConditionLessThan           = "lt"
	ConditionGreaterThanOrEqual = "gte"
	ConditionLessThanOrEqual    = "lte"
)

// Filter narrows a search to assets whose field satisfies a condition.
// Fields: "name", "path", "type", "size".
type Filter struct {
	Field     string
	Condition string
	Value     interface{}
}

func matchesAll(a Info, filters []Filter) bool {
	for _, f := range filters {
		if !matches(a, f) {
			return false
		}
	}
	return true
}

func matches(a Info, f Filter) bool {
	var actual interface{}
	switch strings.ToLower(f.Field) {
	case "name":
		actual = a.Name
	case "path":
		actual = a.Path
	case "type":
		actual = string(a.Type)
	case "size":
		actual = a.Size
	default:
		return false
	}
	return evaluateCondition(actual, f.Condition, f.Value)
}

// evaluateCondition compares actual and expected according to the provided
// condition constant. It supports numeric comparisons, string comparisons
// (including contains/prefix/suffix) and equality/non-equality.
func evaluateCondition(actual interface{}, condition string, expected interface{}) bool {
	switch condition {
	case ConditionEqual:
		return valuesEqual(actual, expected)
	case ConditionNotEqual:
		return !valuesEqual(actual, expected)
	case ConditionGreaterThan:
		return compareNumbers(actual, expected, func(a, b float64) bool { return a > b })
	case ConditionLessThan:
		return compareNumbers(actual, expected, func(a, b float64) bool { return a < b })
	case ConditionGreaterThanOrEqual:
		return compareNumbers(actual, expected, func(a, b float64) bool { return a >= b })
	case ConditionLessThanOrEqual:
		return compareNumbers(actual, expected, func(a, b float64) bool { return a <= b })
	case ConditionContains:
		return stringCompare(actual, expected, func(a, b string) bool { return strings.Contains(a, b) })
	case ConditionNotContains:
		return stringCompare(actual, expected, func(a, b string) bool { return !strings.Contains(a, b) })
	case ConditionStartsWith:
		return stringCompare(actual, expected, func(a, b string) bool { return strings.HasPrefix(a, b) })
	case ConditionEndsWith:
		return stringCompare(actual, expected, func(a, b string) bool { return strings.HasSuffix(a, b) })
	default:
		return false
	}
}

func valuesEqual(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if isNumber(a) && isNumber(b) {
		return toFloat64(a) == toFloat64(b)
	}
	return reflect.DeepEqual(a, b)
}

func compareNumbers(a, b interface{}, cmp func(float64, float64) bool) bool {
	if a == nil || b == nil {
		return false
	}
	if isNumber(a) && isNumber(b) {
		return cmp(toFloat64(a), toFloat64(b))
	}
	return false
}

func stringCompare(a, b interface{}, cmp func(string, string) bool) bool {
	if a == nil || b == nil {
		return false
	}
	return cmp(fmt.Sprintf("%v", a), fmt.Sprintf("%v", b))
}

func isNumber(v interface{}) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	case string:
		_, err := strconv.ParseFloat(v.(string), 64)
		return err == nil
	}
	return false
}

func toFloat64(v interface{}) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case float32:
		return float64(n)
	case float64:
		return n
	case string:
		f, _ := strconv.ParseFloat(n, 64)
		return f
	}
	return 0
}
