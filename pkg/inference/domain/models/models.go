package models

import (
	"kgeyst.com/hfdemo/pkg/common"
	"kgeyst.com/hfdemo/pkg/inference/domain"
	"kgeyst.com/hfdemo/pkg/inference/domain/models/sentiment"
	"kgeyst.com/hfdemo/pkg/inference/domain/models/vision"
)

// The display names are shown to users as is.
const (
	NameTextSentiment       = "Text: Sentiment (easy one)"
	NameImageClassification = "Vision: Image Classifier (the picture one)"
)

// NewRegistry returns the registry of all the built-in models. Model IDs can be overridden with
// domain.ConfigKeyTextModelID/domain.ConfigKeyImageModelID.
func NewRegistry(clientFactory domain.InferenceClientFactory, config *common.Config, logger common.Logger) (*domain.Registry, error) {
	textModelID := config.GetStringOrDefault(domain.ConfigKeyTextModelID, sentiment.DefaultModelID)
	imageModelID := config.GetStringOrDefault(domain.ConfigKeyImageModelID, vision.DefaultModelID)
	imageMaxDimension := config.GetIntOrDefault(domain.ConfigKeyImageMaxDimension, 0)
	return domain.NewRegistry([]domain.RegistryEntry{
		{
			Name:        NameTextSentiment,
			Category:    domain.ModelCategoryText,
			Description: "does sentiment analysis: tells positive from negative.",
			New: func() *domain.Pipeline {
				return domain.NewPipeline(textModelID, sentiment.NewModel(logger), clientFactory, logger)
			},
		},
		{
			Name:        NameImageClassification,
			Category:    domain.ModelCategoryVision,
			Description: "guesses what's in the picture (ImageNet classes).",
			New: func() *domain.Pipeline {
				return domain.NewPipeline(imageModelID, vision.NewModel(imageMaxDimension, logger), clientFactory, logger)
			},
		},
	})
}
