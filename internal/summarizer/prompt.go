package summarizer

import (
	"fmt"
	"strings"

	"github.com/feedback-pulse/backend/internal/storage/models"
)

const systemPrompt = `You are a product operations analyst. You summarize raw customer feedback into a short executive rollup.

Respond with JSON only, in exactly this shape:
{"summary": "2-4 sentence prose summary", "recommendations": ["action 1", "action 2", "action 3"]}

Base the summary strictly on the feedback provided. Recommendations must be concrete next actions.`

// BuildPrompt enumerates each record's categorical attributes and message
// so the model sees the full window, newest first.
func BuildPrompt(records []models.FeedbackRecord) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Summarize the following %d feedback entries (newest first):\n", len(records)))

	for i, r := range records {
		sb.WriteString(fmt.Sprintf("\n[%d] urgency=%s theme=%s value=%s sentiment=%s\n%s\n",
			i+1, r.Urgency, r.Theme, r.Value, r.Sentiment, r.Message))
	}

	sb.WriteString("\nReturn JSON only.")
	return sb.String()
}
