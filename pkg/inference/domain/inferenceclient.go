package domain

import "context"

// InferenceClient is a handle to the hosted inference API bound to a single model and a single access token.
type InferenceClient interface {
	// ClassifyImage sends encoded image bytes (PNG, JPEG etc.) and returns label/score pairs in the order the API
	// returned them. The result can be empty.
	ClassifyImage(ctx context.Context, data []byte) ([]Classification, error)
	// ClassifyText see ClassifyImage
	ClassifyText(ctx context.Context, text string) ([]Classification, error)
}

// InferenceClientFactory binds a new client to the model and the access token.
type InferenceClientFactory func(modelID, token string) InferenceClient
