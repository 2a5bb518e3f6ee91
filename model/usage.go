package model

// UsageMetrics records the token counts of the last completed request.
// Only OpenAI reports them; other backends report zero.
type UsageMetrics struct {
	PromptTokens   int
	ResponseTokens int
}

// Total returns the combined token count of the last query.
func (u UsageMetrics) Total() int {
	return u.PromptTokens + u.ResponseTokens
}

// TokenDetails is the data behind the token details view.
type TokenDetails struct {
	Selection      Selection
	ModelLimit     string
	LastQueryCount int
}
