package domain

import "strings"

// Classification is a single label/confidence pair as returned by the hosted API. Score is in [0, 1].
type Classification struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// TopClassification returns the entry with the highest score. Ties are resolved in favor of the entry which comes
// first in `classifications`: the order of the remote API is kept as is and never re-sorted locally.
// Returns false if `classifications` is empty.
func TopClassification(classifications []Classification) (Classification, bool) {
	if len(classifications) == 0 {
		return Classification{}, false
	}
	top := classifications[0]
	for _, classification := range classifications[1:] {
		if classification.Score > top.Score {
			top = classification
		}
	}
	return top, true
}

// LabelOrPlaceholder the API is not strict about labels, so a missing one is rendered as "?".
func (c Classification) LabelOrPlaceholder() string {
	if strings.TrimSpace(c.Label) == "" {
		return "?"
	}
	return c.Label
}
