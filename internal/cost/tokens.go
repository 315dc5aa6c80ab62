package cost

// charsPerToken is the usual rough estimate for English prose.
const charsPerToken = 4

// EstimateTokens approximates how many tokens text would consume, for
// providers that do not report exact usage.
func EstimateTokens(text string) int {
	return len(text) / charsPerToken
}
