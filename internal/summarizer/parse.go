package summarizer

import (
	"encoding/json"
	"fmt"
	"strings"
)

type rawResult struct {
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
}

// ParseResult extracts the JSON object from a model response. Models often
// wrap JSON in markdown fences or surrounding prose, so parsing is anchored
// on the outermost braces. A response with no parseable object is an error;
// a parseable object with missing fields is not.
func ParseResult(content string) (*Result, error) {
	content = strings.TrimSpace(content)

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON object in response")
	}

	var raw rawResult
	if err := json.Unmarshal([]byte(content[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("malformed JSON in response: %w", err)
	}

	return &Result{
		Summary:         strings.TrimSpace(raw.Summary),
		Recommendations: raw.Recommendations,
	}, nil
}
