package insights

import (
	"sort"
	"strings"

	"github.com/jdkato/prose/v2"

	"github.com/feedback-pulse/backend/internal/feedback"
	"github.com/feedback-pulse/backend/internal/storage/models"
	"github.com/feedback-pulse/backend/pkg/logger"

	"go.uber.org/zap"
)

// Report aggregates the recent feedback window: per-attribute value counts
// plus the most frequent noun terms across the message texts.
type Report struct {
	Total    int                       `json:"total"`
	Counts   map[string]map[string]int `json:"counts"`
	Keywords []Keyword                 `json:"keywords"`
}

type Keyword struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

const maxKeywords = 10

// Build computes a Report from an already-read feedback window. An empty
// window yields zero counts and no keywords, never an error.
func Build(records []models.FeedbackRecord) *Report {
	report := &Report{
		Total:  len(records),
		Counts: make(map[string]map[string]int, len(feedback.Attributes)),
	}

	for _, attribute := range feedback.Attributes {
		counts := make(map[string]int, len(feedback.Members(attribute)))
		for _, member := range feedback.Members(attribute) {
			counts[member] = 0
		}
		report.Counts[attribute] = counts
	}

	var messages []string
	for _, r := range records {
		report.Counts[feedback.AttrUrgency][r.Urgency]++
		report.Counts[feedback.AttrTheme][r.Theme]++
		report.Counts[feedback.AttrValue][r.Value]++
		report.Counts[feedback.AttrSentiment][r.Sentiment]++
		messages = append(messages, r.Message)
	}

	report.Keywords = extractKeywords(messages)
	return report
}

// extractKeywords POS-tags the combined message text and keeps the most
// frequent noun terms. Tagging failures degrade to no keywords rather than
// failing the report.
func extractKeywords(messages []string) []Keyword {
	if len(messages) == 0 {
		return []Keyword{}
	}

	doc, err := prose.NewDocument(strings.Join(messages, "\n"))
	if err != nil {
		logger.Warn("Keyword extraction failed", zap.Error(err))
		return []Keyword{}
	}

	counts := make(map[string]int)
	for _, tok := range doc.Tokens() {
		if !strings.HasPrefix(tok.Tag, "NN") {
			continue
		}
		term := strings.ToLower(tok.Text)
		if len(term) < 3 {
			continue
		}
		counts[term]++
	}

	keywords := make([]Keyword, 0, len(counts))
	for term, count := range counts {
		keywords = append(keywords, Keyword{Term: term, Count: count})
	}

	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Count != keywords[j].Count {
			return keywords[i].Count > keywords[j].Count
		}
		return keywords[i].Term < keywords[j].Term
	})

	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}

	return keywords
}
