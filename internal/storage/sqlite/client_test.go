package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedback-pulse/backend/internal/feedback"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	client, err := NewClient(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	require.NoError(t, client.InitSchema())
	return client
}

func mustInsert(t *testing.T, client *Client, urgency, sentiment, message string) int64 {
	t.Helper()

	sub, err := feedback.NewSubmission("Ada", "Web", urgency, "product", "retention", sentiment, message)
	require.NoError(t, err)

	record, err := client.InsertFeedback(sub)
	require.NoError(t, err)
	return record.ID
}

func TestInsertAssignsIDAndTimestamp(t *testing.T) {
	client := newTestClient(t)

	sub, err := feedback.NewSubmission("Ada", "Email", "high", "support", "expansion", "negative", "Response times are too slow")
	require.NoError(t, err)

	record, err := client.InsertFeedback(sub)
	require.NoError(t, err)

	assert.Greater(t, record.ID, int64(0))
	assert.False(t, record.CreatedAt.IsZero())
	assert.Equal(t, "Ada", record.Submitter)
	assert.Equal(t, "high", record.Urgency)
}

func TestListFeedbackNewestFirst(t *testing.T) {
	client := newTestClient(t)

	first := mustInsert(t, client, "low", "neutral", "first")
	second := mustInsert(t, client, "high", "negative", "second")
	third := mustInsert(t, client, "medium", "positive", "third")

	records, err := client.ListFeedback(feedback.NewFilterSet(), 25)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, third, records[0].ID)
	assert.Equal(t, second, records[1].ID)
	assert.Equal(t, first, records[2].ID)
}

func TestListFeedbackAppliesFilters(t *testing.T) {
	client := newTestClient(t)

	mustInsert(t, client, "high", "negative", "angry about pricing")
	mustInsert(t, client, "high", "positive", "happy about pricing")
	mustInsert(t, client, "low", "negative", "mildly annoyed")

	filters := feedback.NewFilterSet()
	filters.Set(feedback.AttrUrgency, "high")
	filters.Set(feedback.AttrSentiment, "negative")

	records, err := client.ListFeedback(filters, 25)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "angry about pricing", records[0].Message)
}

func TestListFeedbackRespectsLimit(t *testing.T) {
	client := newTestClient(t)

	for i := 0; i < 10; i++ {
		mustInsert(t, client, "medium", "neutral", "entry")
	}

	records, err := client.ListFeedback(feedback.NewFilterSet(), 5)
	require.NoError(t, err)
	assert.Len(t, records, 5)
}

func TestListFeedbackNoMatchReturnsEmptySlice(t *testing.T) {
	client := newTestClient(t)

	mustInsert(t, client, "low", "positive", "all good")

	filters := feedback.NewFilterSet()
	filters.Set(feedback.AttrUrgency, "critical")

	records, err := client.ListFeedback(filters, 5)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}
