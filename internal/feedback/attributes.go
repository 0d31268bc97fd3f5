package feedback

import "strings"

// The four categorical attributes a feedback record carries. Each is
// restricted to a small closed enumeration; the first member is the
// default every invalid or missing value degrades to.
const (
	AttrUrgency   = "urgency"
	AttrTheme     = "theme"
	AttrValue     = "value"
	AttrSentiment = "sentiment"
)

var Attributes = []string{AttrUrgency, AttrTheme, AttrValue, AttrSentiment}

var enumerations = map[string][]string{
	AttrUrgency:   {"medium", "low", "high", "critical"},
	AttrTheme:     {"product", "support", "pricing", "performance", "other"},
	AttrValue:     {"retention", "acquisition", "expansion", "advocacy"},
	AttrSentiment: {"neutral", "positive", "negative", "mixed"},
}

// Members returns the allowed values for an attribute, default first.
// Unknown attributes return nil.
func Members(attribute string) []string {
	return enumerations[attribute]
}

// Default returns the designated default member for an attribute.
func Default(attribute string) string {
	members := enumerations[attribute]
	if len(members) == 0 {
		return ""
	}
	return members[0]
}

// Sanitize normalizes a raw filter or submission value against the
// attribute's enumeration. Matching is case-insensitive; anything that is
// not a member, including empty or hostile input, silently degrades to the
// attribute's default. Sanitize never fails: malformed input selects a
// default slice instead of breaking the request.
func Sanitize(attribute, raw string) string {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	for _, member := range enumerations[attribute] {
		if normalized == member {
			return member
		}
	}
	return Default(attribute)
}
