package feedback

import (
	"strconv"
	"strings"
)

const (
	DefaultLimit = 5
	MaxLimit     = 25
	MinLimit     = 1
)

// ClampLimit resolves a raw limit parameter to the inclusive range
// [MinLimit, MaxLimit]. Missing or non-numeric input resolves to
// DefaultLimit; out-of-range values clamp to the nearest bound.
func ClampLimit(raw string) int {
	if raw == "" {
		return DefaultLimit
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return DefaultLimit
	}
	if n < MinLimit {
		return MinLimit
	}
	if n > MaxLimit {
		return MaxLimit
	}
	return n
}

// BuildListQuery composes the parameterized read query for a sanitized
// FilterSet. Present attributes become equality predicates bound to
// placeholders, combined as a strict conjunction; absent attributes match
// everything. Results are always newest first and always bounded by limit.
// The projection is fixed so schema additions never leak into responses.
func BuildListQuery(filters FilterSet, limit int) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, submitter, channel, urgency, theme, value, sentiment, message, created_at FROM feedback`)

	args := make([]interface{}, 0, len(Attributes)+1)
	var predicates []string
	for _, attribute := range Attributes {
		if v, ok := filters.Get(attribute); ok {
			predicates = append(predicates, attribute+" = ?")
			args = append(args, v)
		}
	}

	if len(predicates) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(predicates, " AND "))
	}

	sb.WriteString(" ORDER BY created_at DESC, id DESC LIMIT ?")
	args = append(args, limit)

	return sb.String(), args
}
