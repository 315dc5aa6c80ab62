package sentiment

import (
	"regexp"
	"strings"
)

// Categories produced by Extract.
const (
	Positive = "positive"
	Negative = "negative"
	Neutral  = "neutral"
	Mixed    = "mixed"
	Unknown  = "unknown"
)

var sentimentPattern = regexp.MustCompile(`(?:overall\s+)?sentiment[:\s]+\*{0,2}(positive|negative|neutral|mixed)`)

// Keyword fallback order is fixed; the first match wins.
var keywords = []string{Positive, Negative, Neutral, Mixed}

// Extract pulls a sentiment category out of free-text LLM output. Best
// effort: an explicit "overall sentiment: X" phrase wins, then the first
// matching keyword, then Unknown.
func Extract(text string) string {
	if text == "" {
		return Unknown
	}
	lower := strings.ToLower(text)

	if m := sentimentPattern.FindStringSubmatch(lower); m != nil {
		return m[1]
	}

	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return k
		}
	}

	return Unknown
}
