package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

type recordingLogger struct {
	mutex    sync.Mutex
	messages []string
}

func (r *recordingLogger) Log(message string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.messages = append(r.messages, message)
}

type fakeClient struct {
	modelID         string
	token           string
	classifications []Classification
	err             error
	calls           int
}

func (f *fakeClient) ClassifyImage(_ context.Context, _ []byte) ([]Classification, error) {
	f.calls++
	return f.classifications, f.err
}

func (f *fakeClient) ClassifyText(_ context.Context, _ string) ([]Classification, error) {
	f.calls++
	return f.classifications, f.err
}

// echoModel is a minimal text model: it upper-cases the input and reports the top label.
type echoModel struct {
	postprocessed [][]Classification
}

func (e *echoModel) Task() Task {
	return TaskTextClassification
}

func (e *echoModel) Preprocess(input any) (any, error) {
	text, ok := input.(string)
	if !ok || text == "" {
		return nil, fmt.Errorf("%w: want text", ErrValidation)
	}
	return strings.ToUpper(text), nil
}

func (e *echoModel) Predict(ctx context.Context, client InferenceClient, processed any) ([]Classification, error) {
	return client.ClassifyText(ctx, processed.(string))
}

func (e *echoModel) Postprocess(raw []Classification) string {
	e.postprocessed = append(e.postprocessed, raw)
	top, ok := TopClassification(raw)
	if !ok {
		return "nothing"
	}
	return top.Label
}

func newFakeFactory(client *fakeClient) InferenceClientFactory {
	return func(modelID, token string) InferenceClient {
		client.modelID = modelID
		client.token = token
		return client
	}
}

var errFakeRemote = errors.New("503 model is loading")
