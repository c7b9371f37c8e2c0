package domain

import (
	"math"
	"time"
)

// Result is the only thing a caller gets out of a successful run.
type Result struct {
	// Output a human-readable summary of the prediction
	Output string `json:"output"`
	// LatencyMS how long the remote call took, rounded to 2 decimals
	LatencyMS float64 `json:"latency_ms"`
	ModelID   string  `json:"model_id"`
	Task      Task    `json:"task"`
}

func latencyMS(elapsed time.Duration) float64 {
	if elapsed < 0 {
		return 0
	}
	ms := float64(elapsed) / float64(time.Millisecond)
	return math.Round(ms*100) / 100
}
