package models

import "time"

// FeedbackRecord is immutable once created; the id and creation time are
// assigned by storage at write time.
type FeedbackRecord struct {
	ID        int64     `json:"id"`
	Submitter string    `json:"submitter"`
	Channel   string    `json:"channel"`
	Urgency   string    `json:"urgency"`
	Theme     string    `json:"theme"`
	Value     string    `json:"value"`
	Sentiment string    `json:"sentiment"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
