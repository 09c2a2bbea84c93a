package audit

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// DefaultSensitiveFields are the built-in sensitive field name markers.
// Matching is substring and case-insensitive.
var DefaultSensitiveFields = []string{
	"password", "token", "secret", "key", "hash", "salt",
	"credit_card", "ssn", "social_security", "bank_account",
}

// IsSensitiveField reports whether a field name matches any marker in the
// sensitive list. Matching fields are excluded from change tracking and
// emitted metadata entirely.
func IsSensitiveField(name string, sensitive []string) bool {
	lower := strings.ToLower(name)
	for _, marker := range sensitive {
		if strings.Contains(lower, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}

// Sanitize converts a metadata document into a fully serializable form:
// maps and slices are walked recursively, timestamps render as RFC 3339
// text, fmt.Stringer values render via String(), primitives pass through,
// and anything else renders as its display string. The input is never
// mutated. A nil input yields nil.
func Sanitize(metadata map[string]any) map[string]any {
	if metadata == nil {
		return nil
	}
	out := make(map[string]any, len(metadata))
	for k, v := range metadata {
		out[k] = sanitizeValue(v)
	}
	return out
}

func sanitizeValue(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return val
	case time.Time:
		return val.UTC().Format(time.RFC3339)
	case *time.Time:
		if val == nil {
			return nil
		}
		return val.UTC().Format(time.RFC3339)
	case time.Duration:
		return val.String()
	case map[string]any:
		return Sanitize(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = sanitizeValue(item)
		}
		return out
	case []string:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = item
		}
		return out
	case fmt.Stringer:
		return val.String()
	case error:
		return val.Error()
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Stringify renders one field value as display text for change diffs:
// the value is sanitized first, so timestamps come out as RFC 3339 and
// Stringer values via String(). A nil input stays nil, preserving the
// distinction between "absent" and "empty".
func Stringify(v any) *string {
	if v == nil {
		return nil
	}
	sanitized := sanitizeValue(v)
	if sanitized == nil {
		return nil
	}
	var s string
	if str, ok := sanitized.(string); ok {
		s = str
	} else {
		s = fmt.Sprintf("%v", sanitized)
	}
	return &s
}

// largeFields are removed first when a document exceeds the size bound.
var largeFields = []string{"user_agent", "request_headers", "response_data"}

const truncatedStringLimit = 100

// Truncate size-bounds a sanitized metadata document. If the serialized
// form fits within maxSize characters the document is returned unchanged.
// Otherwise known large fields are replaced with a truncation marker, then
// remaining long string values are cut to 100 characters plus an ellipsis.
// Individual fields are truncated rather than the whole record dropped, so
// the record stays useful.
func Truncate(metadata map[string]any, maxSize int) map[string]any {
	if metadata == nil {
		return nil
	}
	if serializedLen(metadata) <= maxSize {
		return metadata
	}

	truncated := make(map[string]any, len(metadata))
	for k, v := range metadata {
		truncated[k] = v
	}

	for _, field := range largeFields {
		if serializedLen(truncated) <= maxSize {
			break
		}
		if v, ok := truncated[field]; ok {
			truncated[field] = fmt.Sprintf("[TRUNCATED - was %d chars]", len(fmt.Sprintf("%v", v)))
		}
	}

	if serializedLen(truncated) > maxSize {
		for k, v := range truncated {
			if s, ok := v.(string); ok && len(s) > truncatedStringLimit {
				truncated[k] = cutString(s, truncatedStringLimit) + "..."
			}
		}
	}

	return truncated
}

// cutString truncates s to at most limit bytes without splitting a
// multi-byte rune, so the result stays valid UTF-8.
func cutString(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}

func serializedLen(metadata map[string]any) int {
	b, err := json.Marshal(metadata)
	if err != nil {
		// Sanitize runs first, so this should not happen; treat the
		// document as oversized to force field truncation.
		return int(^uint(0) >> 1)
	}
	return len(b)
}
