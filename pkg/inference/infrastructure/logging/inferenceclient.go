package logging

import (
	"context"
	"fmt"
	"time"

	"kgeyst.com/hfdemo/pkg/common"
	"kgeyst.com/hfdemo/pkg/inference/domain"
)

type inferenceClientDecorator struct {
	wrappedClient domain.InferenceClient
	modelID       string
	logger        common.Logger
}

// NewInferenceClientFactoryDecorator makes every client created by `wrappedFactory` log its raw remote calls.
func NewInferenceClientFactoryDecorator(wrappedFactory domain.InferenceClientFactory, logger common.Logger) domain.InferenceClientFactory {
	return func(modelID, token string) domain.InferenceClient {
		return NewInferenceClientDecorator(wrappedFactory(modelID, token), modelID, logger)
	}
}

func NewInferenceClientDecorator(wrappedClient domain.InferenceClient, modelID string, logger common.Logger) domain.InferenceClient {
	return &inferenceClientDecorator{
		wrappedClient: wrappedClient,
		modelID:       modelID,
		logger:        logger,
	}
}

func (i *inferenceClientDecorator) ClassifyImage(ctx context.Context, data []byte) ([]domain.Classification, error) {
	i.logger.Log(fmt.Sprintf("raw request (using '%s'): image, %d bytes", i.modelID, len(data)))
	t := time.Now()
	classifications, err := i.wrappedClient.ClassifyImage(ctx, data)
	i.logResponse(classifications, err, t)
	return classifications, err
}

func (i *inferenceClientDecorator) ClassifyText(ctx context.Context, text string) ([]domain.Classification, error) {
	i.logger.Log(fmt.Sprintf("raw request (using '%s'): %q", i.modelID, text))
	t := time.Now()
	classifications, err := i.wrappedClient.ClassifyText(ctx, text)
	i.logResponse(classifications, err, t)
	return classifications, err
}

func (i *inferenceClientDecorator) logResponse(classifications []domain.Classification, err error, t time.Time) {
	took := time.Since(t).Milliseconds()
	if err != nil {
		i.logger.Log(fmt.Sprintf("raw response from '%s': error: %s (took %d ms)", i.modelID, err, took))
		return
	}
	i.logger.Log(fmt.Sprintf("raw response from '%s': %v (took %d ms)", i.modelID, classifications, took))
}
