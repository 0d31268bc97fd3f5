package feedback

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubmissionRejectsEmptyMessage(t *testing.T) {
	for _, message := range []string{"", "   ", "\n\t "} {
		_, err := NewSubmission("Ada", "Web", "high", "product", "retention", "positive", message)
		assert.ErrorIs(t, err, ErrEmptyMessage)
	}
}

func TestNewSubmissionDefaults(t *testing.T) {
	sub, err := NewSubmission("", "", "", "", "", "", "The export button is broken")
	require.NoError(t, err)

	assert.Equal(t, "Anonymous", sub.Submitter)
	assert.Equal(t, "Web", sub.Channel)
	assert.Equal(t, "medium", sub.Urgency)
	assert.Equal(t, "product", sub.Theme)
	assert.Equal(t, "retention", sub.Value)
	assert.Equal(t, "neutral", sub.Sentiment)
	assert.Equal(t, "The export button is broken", sub.Message)
}

func TestNewSubmissionSanitizesCategoricals(t *testing.T) {
	sub, err := NewSubmission("Ada", "Email", "CRITICAL", "bogus", "Expansion", "<script>", "Love the new dashboard")
	require.NoError(t, err)

	assert.Equal(t, "critical", sub.Urgency)
	assert.Equal(t, "product", sub.Theme)
	assert.Equal(t, "expansion", sub.Value)
	assert.Equal(t, "neutral", sub.Sentiment)
}

func TestNewSubmissionTruncatesLongFields(t *testing.T) {
	sub, err := NewSubmission(strings.Repeat("a", 200), strings.Repeat("b", 100), "", "", "", "", "msg")
	require.NoError(t, err)

	assert.Len(t, sub.Submitter, 80)
	assert.Len(t, sub.Channel, 40)
}

func TestNewSubmissionTrimsMessage(t *testing.T) {
	sub, err := NewSubmission("", "", "", "", "", "", "  needs work  ")
	require.NoError(t, err)
	assert.Equal(t, "needs work", sub.Message)
}
