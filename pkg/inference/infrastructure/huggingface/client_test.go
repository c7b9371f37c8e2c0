package huggingface

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"kgeyst.com/hfdemo/pkg/inference/domain"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestClassifyImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/models/google/vit-base-patch16-224", r.URL.Path)
		require.Equal(t, "Bearer hf_secret", r.Header.Get("Authorization"))
		require.Equal(t, "image/png", r.Header.Get("Content-Type"))
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.Equal(t, pngHeader, body)
		_, _ = w.Write([]byte(`[{"label":"tabby, tabby cat","score":0.6},{"label":"tiger cat","score":0.3}]`))
	}))
	defer server.Close()

	client := NewClientFactory(server.URL+"/models/", time.Second)("google/vit-base-patch16-224", "hf_secret")
	classifications, err := client.ClassifyImage(context.Background(), pngHeader)
	require.NoError(t, err)
	require.Equal(t, []domain.Classification{
		{Label: "tabby, tabby cat", Score: 0.6},
		{Label: "tiger cat", Score: 0.3},
	}, classifications)
}

func TestClassifyTextFlattensNestedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var input struct {
			Inputs string `json:"inputs"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		require.Equal(t, "I love this", input.Inputs)
		_, _ = w.Write([]byte(`[[{"label":"POSITIVE","score":0.9998},{"label":"NEGATIVE","score":0.0002}]]`))
	}))
	defer server.Close()

	client := NewClientFactory(server.URL, 0)("distilbert-base-uncased-finetuned-sst-2-english", "hf_secret")
	classifications, err := client.ClassifyText(context.Background(), "I love this")
	require.NoError(t, err)
	require.Equal(t, []domain.Classification{
		{Label: "POSITIVE", Score: 0.9998},
		{Label: "NEGATIVE", Score: 0.0002},
	}, classifications)
}

func TestEmptyResponse(t *testing.T) {
	for _, body := range []string{`[]`, `[[]]`} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}))
		classifications, err := NewClientFactory(server.URL, 0)("m", "t").ClassifyText(context.Background(), "hi")
		server.Close()
		require.NoError(t, err)
		require.Empty(t, classifications)
	}
}

func TestRemoteErrors(t *testing.T) {
	tests := []struct {
		name            string
		status          int
		body            string
		expectedMessage string
	}{
		{
			name:            "error string",
			status:          http.StatusServiceUnavailable,
			body:            `{"error":"Model is currently loading","estimated_time":20.0}`,
			expectedMessage: "Model is currently loading (status 503)",
		},
		{
			name:            "error list",
			status:          http.StatusBadRequest,
			body:            `{"error":["bad input","try again"]}`,
			expectedMessage: "bad input; try again (status 400)",
		},
		{
			name:            "plain text",
			status:          http.StatusUnauthorized,
			body:            `Invalid credentials in Authorization header`,
			expectedMessage: "Invalid credentials in Authorization header (status 401)",
		},
		{
			name:            "no body",
			status:          http.StatusTooManyRequests,
			expectedMessage: "429 Too Many Requests (status 429)",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(test.status)
				_, _ = w.Write([]byte(test.body))
			}))
			defer server.Close()
			_, err := NewClientFactory(server.URL, 0)("m", "t").ClassifyText(context.Background(), "hi")
			require.ErrorIs(t, err, domain.ErrRemote)
			require.ErrorContains(t, err, test.expectedMessage)
		})
	}
}

func TestUnexpectedResponseFormat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"generated_text":"hi"}`))
	}))
	defer server.Close()
	_, err := NewClientFactory(server.URL, 0)("m", "t").ClassifyImage(context.Background(), pngHeader)
	require.ErrorIs(t, err, domain.ErrRemote)
	require.ErrorIs(t, err, errUnexpectedResponse)
}

func TestTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)
	_, err := NewClientFactory(server.URL, 50*time.Millisecond)("m", "t").ClassifyText(context.Background(), "hi")
	require.ErrorIs(t, err, domain.ErrRemote)
}

func TestTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()
	_, err := NewClientFactory(url, time.Second)("m", "t").ClassifyText(context.Background(), "hi")
	require.ErrorIs(t, err, domain.ErrRemote)
}
