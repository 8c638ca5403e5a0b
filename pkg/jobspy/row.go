package jobspy

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Row is one untyped result row. Columns may be absent, null, NaN or "nan".
type Row map[string]any

// has reports whether the column holds a usable value
func (r Row) has(key string) bool {
	v, ok := r[key]
	return ok && !missing(v)
}

// String returns the column as text, or "" when missing
func (r Row) String(key string) string {
	if !r.has(key) {
		return ""
	}
	v := r[key]

	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1e15 {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// Float returns the column as a number
func (r Row) Float(key string) (float64, bool) {
	if !r.has(key) {
		return 0, false
	}
	v := r[key]

	switch t := v.(type) {
	case float64:
		return t, true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil && !math.IsNaN(f)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil && !math.IsNaN(f)
	default:
		return 0, false
	}
}

// Bool returns the column as a boolean
func (r Row) Bool(key string) (bool, bool) {
	if !r.has(key) {
		return false, false
	}
	v := r[key]

	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		return b, err == nil
	case float64:
		return t != 0, true
	default:
		return false, false
	}
}

// Date returns the column as an ISO date: ISO strings are cut to the date,
// numbers are read as epoch milliseconds, anything else is returned verbatim
func (r Row) Date(key string) string {
	if f, ok := r[key].(float64); ok && !math.IsNaN(f) {
		return time.UnixMilli(int64(f)).UTC().Format(time.DateOnly)
	}

	s := r.String(key)
	if len(s) >= len(time.DateOnly) {
		if t, err := time.Parse(time.DateOnly, s[:len(time.DateOnly)]); err == nil {
			return t.Format(time.DateOnly)
		}
	}
	return s
}

func missing(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(t)
	case string:
		s := strings.TrimSpace(t)
		return s == "" || strings.EqualFold(s, "nan") || strings.EqualFold(s, "none")
	default:
		return false
	}
}
