package vision

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"

	"kgeyst.com/hfdemo/pkg/common"
	"kgeyst.com/hfdemo/pkg/inference/domain"
)

const DefaultModelID = "google/vit-base-patch16-224"

const noClassesMessage = "no classes"

type model struct {
	logger       common.Logger
	maxDimension int
}

// NewModel classifies what's in a picture. Images with a side bigger than `maxDimension` are scaled down before
// they're uploaded; zero disables scaling.
func NewModel(maxDimension int, logger common.Logger) domain.Model {
	return &model{
		logger:       logger,
		maxDimension: maxDimension,
	}
}

func (m *model) Task() domain.Task {
	return domain.TaskImageClassification
}

// Preprocess accepts either encoded image bytes (passed through untouched) or a path to an image file
// (PNG, JPEG, GIF or BMP) which is normalized to an RGB PNG.
func (m *model) Preprocess(input any) (any, error) {
	var data []byte
	switch v := input.(type) {
	case []byte:
		data = v
	case string:
		var err error
		data, err = m.encodeFile(v)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: expected an image path (png/jpg/gif/bmp) or encoded image bytes, got %T", domain.ErrValidation, input)
	}
	m.logger.Log(fmt.Sprintf("image bytes = %d", len(data)))
	return data, nil
}

func (m *model) Predict(ctx context.Context, client domain.InferenceClient, processed any) ([]domain.Classification, error) {
	data, ok := processed.([]byte)
	if !ok {
		return nil, fmt.Errorf("%w: expected encoded image bytes, got %T", domain.ErrValidation, processed)
	}
	m.logger.Log("sending to the hosted API (image-classification)")
	return client.ClassifyImage(ctx, data)
}

func (m *model) Postprocess(raw []domain.Classification) string {
	top, ok := domain.TopClassification(raw)
	if !ok {
		return noClassesMessage
	}
	return fmt.Sprintf("top: %s (%.3f)", top.LabelOrPlaceholder(), top.Score)
}

func (m *model) encodeFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}
	defer func() {
		_ = file.Close()
	}()
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not a supported image: %s", domain.ErrValidation, path, err)
	}
	img = m.scaleDown(img)
	var buf bytes.Buffer
	err = png.Encode(&buf, toRGB(img))
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (m *model) scaleDown(img image.Image) image.Image {
	if m.maxDimension <= 0 {
		return img
	}
	bounds := img.Bounds()
	if bounds.Dx() <= m.maxDimension && bounds.Dy() <= m.maxDimension {
		return img
	}
	return resize.Thumbnail(uint(m.maxDimension), uint(m.maxDimension), img, resize.Lanczos3)
}

// toRGB drops the alpha channel (without blending), so the PNG encoder writes 3-channel truecolor.
func toRGB(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	result := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			c.A = 255
			result.SetNRGBA(x-bounds.Min.X, y-bounds.Min.Y, c)
		}
	}
	return result
}
