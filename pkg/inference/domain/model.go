package domain

import "context"

// Model is the task-specific part of a pipeline. Pipeline owns the sequence of the stages, the load guard
// and the timing; a Model only fills in the stages.
type Model interface {
	Task() Task
	// Preprocess validates and converts raw caller input into what Predict expects. Fails with ErrValidation
	// on malformed input.
	Preprocess(input any) (any, error)
	// Predict makes the remote call. Never called before the pipeline is loaded.
	Predict(ctx context.Context, client InferenceClient, processed any) ([]Classification, error)
	// Postprocess renders the raw prediction. Must not fail: an empty prediction yields a placeholder.
	Postprocess(raw []Classification) string
}
