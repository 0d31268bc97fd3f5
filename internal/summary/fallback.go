package summary

// FallbackSummary is served when the feedback window is empty or the
// summarizer is unavailable. It is well-shaped output, not an error page.
const FallbackSummary = "Not enough feedback has been analyzed yet to produce an AI summary. " +
	"Recent submissions are still being collected; check back shortly or trigger a manual refresh."

func FallbackRecommendations() []string {
	return []string{
		"Encourage customers to submit feedback through the web form.",
		"Review the most recent feedback entries manually for urgent items.",
		"Re-run the summary once more feedback has been collected.",
	}
}
