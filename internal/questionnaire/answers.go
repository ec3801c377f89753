package questionnaire

import (
	"strconv"
	"strings"
)

// Answers accumulates raw responses keyed by question id. Values are strings,
// float64 numbers, or label lists; after a JSON round trip a label list may
// arrive as []any, which the accessors normalize.
type Answers map[string]any

func (a Answers) Has(id string) bool {
	_, ok := a[id]
	return ok
}

// Text returns the answer as a trimmed string, or "" when absent or not
// text-like.
func (a Answers) Text(id string) string {
	switch v := a[id].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

// Number parses the answer as a number; ok is false when the answer is absent
// or not numeric.
func (a Answers) Number(id string) (float64, bool) {
	switch v := a[id].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// Labels returns the selected labels of a multi-choice answer.
func (a Answers) Labels(id string) []string {
	switch v := a[id].(type) {
	case []string:
		return v
	case []any:
		labels := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				labels = append(labels, s)
			}
		}
		return labels
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		return []string{strings.TrimSpace(v)}
	default:
		return nil
	}
}
