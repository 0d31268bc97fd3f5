package feedback

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeValidMembers(t *testing.T) {
	for _, attribute := range Attributes {
		for _, member := range Members(attribute) {
			assert.Equal(t, member, Sanitize(attribute, member))
			assert.Equal(t, member, Sanitize(attribute, strings.ToUpper(member)))
			assert.Equal(t, member, Sanitize(attribute, "  "+strings.ToUpper(member[:1])+member[1:]+"  "))
		}
	}
}

func TestSanitizeInvalidInputDegradesToDefault(t *testing.T) {
	hostile := []string{
		"",
		"   ",
		"not-a-member",
		"HIGHEST",
		"'; DROP TABLE feedback; --",
		"<script>alert(1)</script>",
		strings.Repeat("x", 100000),
	}

	for _, attribute := range Attributes {
		for _, raw := range hostile {
			assert.Equal(t, Default(attribute), Sanitize(attribute, raw),
				"attribute %s raw %q", attribute, raw)
		}
	}
}

func TestDefaultsMatchDocumentedLiterals(t *testing.T) {
	assert.Equal(t, "medium", Default(AttrUrgency))
	assert.Equal(t, "product", Default(AttrTheme))
	assert.Equal(t, "retention", Default(AttrValue))
	assert.Equal(t, "neutral", Default(AttrSentiment))
}

func TestDefaultUnknownAttribute(t *testing.T) {
	assert.Equal(t, "", Default("flavor"))
	assert.Nil(t, Members("flavor"))
}
