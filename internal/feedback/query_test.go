package feedback

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampLimit(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 5},
		{"abc", 5},
		{"3.5", 5},
		{"0", 1},
		{"-5", 1},
		{"1", 1},
		{"10", 10},
		{"25", 25},
		{"1000", 25},
		{" 7 ", 7},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampLimit(tt.raw), "raw %q", tt.raw)
	}
}

func TestBuildListQueryEmptyFilterSet(t *testing.T) {
	query, args := BuildListQuery(NewFilterSet(), 5)

	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, "ORDER BY created_at DESC")
	assert.Contains(t, query, "LIMIT ?")
	assert.Equal(t, []interface{}{5}, args)
}

func TestBuildListQueryPredicateCount(t *testing.T) {
	combos := []struct {
		attributes []string
	}{
		{[]string{AttrUrgency}},
		{[]string{AttrUrgency, AttrSentiment}},
		{[]string{AttrTheme, AttrValue, AttrSentiment}},
		{[]string{AttrUrgency, AttrTheme, AttrValue, AttrSentiment}},
	}

	for _, combo := range combos {
		filters := NewFilterSet()
		for _, attribute := range combo.attributes {
			filters.Set(attribute, Members(attribute)[1])
		}

		query, args := BuildListQuery(filters, 10)

		assert.Equal(t, len(combo.attributes), strings.Count(query, "= ?"))
		assert.Equal(t, len(combo.attributes)-1, strings.Count(query, " AND "))
		assert.Contains(t, query, "ORDER BY created_at DESC")
		assert.Len(t, args, len(combo.attributes)+1)
		assert.Equal(t, 10, args[len(args)-1])
	}
}

func TestBuildListQueryFixedProjection(t *testing.T) {
	query, _ := BuildListQuery(NewFilterSet(), 5)

	assert.True(t, strings.HasPrefix(query, "SELECT id, submitter, channel, urgency, theme, value, sentiment, message, created_at FROM feedback"))
	assert.NotContains(t, query, "*")
}

func TestFilterSetNeverHoldsInvalidValues(t *testing.T) {
	filters := NewFilterSet()
	filters.Set(AttrUrgency, "'; DROP TABLE feedback; --")
	filters.Set(AttrTheme, "")

	v, ok := filters.Get(AttrUrgency)
	assert.True(t, ok)
	assert.Equal(t, Default(AttrUrgency), v)

	_, ok = filters.Get(AttrTheme)
	assert.False(t, ok)
	assert.Equal(t, 1, filters.Len())
}
