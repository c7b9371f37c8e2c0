package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"kgeyst.com/hfdemo/pkg/inference/domain"
)

// DefaultBaseURL serverless inference provided by Hugging Face itself.
const DefaultBaseURL = "https://router.huggingface.co/hf-inference/models"

// Error responses are short JSON objects; no need to read more than that.
const maxErrorBodySize = 64 << 10

var errUnexpectedResponse = errors.New("unexpected response format")

type client struct {
	httpClient *http.Client
	endpoint   string
	token      string
}

// NewClientFactory creates clients of the hosted inference API located at `baseURL`. A zero `timeout` means no
// timeout; a hung call then blocks until the caller's context is cancelled.
func NewClientFactory(baseURL string, timeout time.Duration) domain.InferenceClientFactory {
	httpClient := &http.Client{Timeout: timeout}
	baseURL = strings.TrimSuffix(baseURL, "/")
	return func(modelID, token string) domain.InferenceClient {
		return &client{
			httpClient: httpClient,
			endpoint:   baseURL + "/" + modelID,
			token:      token,
		}
	}
}

func (c *client) ClassifyImage(ctx context.Context, data []byte) ([]domain.Classification, error) {
	return c.post(ctx, bytes.NewReader(data), http.DetectContentType(data))
}

func (c *client) ClassifyText(ctx context.Context, text string) ([]domain.Classification, error) {
	body, err := json.Marshal(struct {
		Inputs string `json:"inputs"`
	}{
		Inputs: text,
	})
	if err != nil {
		return nil, err
	}
	return c.post(ctx, bytes.NewReader(body), "application/json")
}

func (c *client) post(ctx context.Context, body io.Reader, contentType string) ([]domain.Classification, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrRemote, err)
	}
	defer func() {
		_ = res.Body.Close()
	}()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		content, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBodySize))
		return nil, fmt.Errorf("%w: %s (status %d)", domain.ErrRemote, errorMessage(content, res.Status), res.StatusCode)
	}
	content, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrRemote, err)
	}
	classifications, err := parseClassifications(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrRemote, err)
	}
	return classifications, nil
}

// parseClassifications image endpoints return a flat list of label/score pairs, while text endpoints wrap it in
// another list (one per input). Both are flattened, and the order is kept.
func parseClassifications(content []byte) ([]domain.Classification, error) {
	var flat []domain.Classification
	if err := json.Unmarshal(content, &flat); err == nil {
		return flat, nil
	}
	var nested [][]domain.Classification
	if err := json.Unmarshal(content, &nested); err != nil {
		return nil, fmt.Errorf("%w: %s", errUnexpectedResponse, truncate(string(content)))
	}
	var result []domain.Classification
	for _, classifications := range nested {
		result = append(result, classifications...)
	}
	return result, nil
}

// errorMessage the API reports errors as {"error": "..."}, sometimes as {"error": ["...", "..."]}.
func errorMessage(content []byte, status string) string {
	var output struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(content, &output); err != nil || len(output.Error) == 0 {
		if text := strings.TrimSpace(string(content)); text != "" {
			return truncate(text)
		}
		return status
	}
	var message string
	if err := json.Unmarshal(output.Error, &message); err == nil {
		return message
	}
	var messages []string
	if err := json.Unmarshal(output.Error, &messages); err == nil {
		return strings.Join(messages, "; ")
	}
	return truncate(string(output.Error))
}

func truncate(s string) string {
	const maxLength = 200
	if len(s) > maxLength {
		return s[:maxLength] + "..."
	}
	return s
}
