package sentiment

import (
	"context"
	"fmt"
	"strings"

	"kgeyst.com/hfdemo/pkg/common"
	"kgeyst.com/hfdemo/pkg/inference/domain"
)

const DefaultModelID = "distilbert-base-uncased-finetuned-sst-2-english"

const noResultMessage = "no result"

type model struct {
	logger common.Logger
}

// NewModel classifies the sentiment of a piece of text (positive/negative).
func NewModel(logger common.Logger) domain.Model {
	return &model{
		logger: logger,
	}
}

func (m *model) Task() domain.Task {
	return domain.TaskTextClassification
}

func (m *model) Preprocess(input any) (any, error) {
	text, ok := input.(string)
	if !ok {
		return nil, fmt.Errorf("%w: expected text, got %T", domain.ErrValidation, input)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: type some text first", domain.ErrValidation)
	}
	m.logger.Log(fmt.Sprintf("got text len=%d", len(text)))
	return text, nil
}

func (m *model) Predict(ctx context.Context, client domain.InferenceClient, processed any) ([]domain.Classification, error) {
	text, ok := processed.(string)
	if !ok {
		return nil, fmt.Errorf("%w: expected preprocessed text, got %T", domain.ErrValidation, processed)
	}
	m.logger.Log("sending to the hosted API (text-classification)")
	return client.ClassifyText(ctx, text)
}

func (m *model) Postprocess(raw []domain.Classification) string {
	top, ok := domain.TopClassification(raw)
	if !ok {
		return noResultMessage
	}
	return fmt.Sprintf("guess: %s (score %.3f)", top.LabelOrPlaceholder(), top.Score)
}
