package feedback

import (
	"errors"
	"strings"
)

var ErrEmptyMessage = errors.New("message is required")

const (
	DefaultSubmitter = "Anonymous"
	DefaultChannel   = "Web"

	maxSubmitterLen = 80
	maxChannelLen   = 40
)

// Submission is a validated, normalized feedback write. Every field except
// the message degrades to a documented default rather than rejecting.
type Submission struct {
	Submitter string
	Channel   string
	Urgency   string
	Theme     string
	Value     string
	Sentiment string
	Message   string
}

// NewSubmission normalizes raw write input. The message is the only field
// that can reject: empty or whitespace-only returns ErrEmptyMessage.
func NewSubmission(submitter, channel, urgency, theme, value, sentiment, message string) (Submission, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return Submission{}, ErrEmptyMessage
	}

	return Submission{
		Submitter: defaultString(truncate(strings.TrimSpace(submitter), maxSubmitterLen), DefaultSubmitter),
		Channel:   defaultString(truncate(strings.TrimSpace(channel), maxChannelLen), DefaultChannel),
		Urgency:   Sanitize(AttrUrgency, urgency),
		Theme:     Sanitize(AttrTheme, theme),
		Value:     Sanitize(AttrValue, value),
		Sentiment: Sanitize(AttrSentiment, sentiment),
		Message:   message,
	}, nil
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
