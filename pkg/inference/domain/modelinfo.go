package domain

type ModelCategory string

const (
	ModelCategoryText   ModelCategory = "Text"
	ModelCategoryVision ModelCategory = "Vision"
)

// ModelInfo is what front ends show about a model next to its output.
type ModelInfo struct {
	Name        string        `json:"name"`
	Category    ModelCategory `json:"category"`
	ModelID     string        `json:"model_id"`
	Description string        `json:"description"`
}
