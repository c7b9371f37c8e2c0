package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"kgeyst.com/hfdemo/pkg/common"
)

// Pipeline wraps one remote model: Load binds the client, then every Run goes through
// preprocess -> predict (guarded and timed) -> postprocess.
// Not safe for concurrent use: callers must serialize calls to the same Pipeline or create one per caller.
type Pipeline struct {
	modelID       string
	model         Model
	clientFactory InferenceClientFactory
	logger        common.Logger
	client        InferenceClient
	loaded        bool
}

func NewPipeline(modelID string, model Model, clientFactory InferenceClientFactory, logger common.Logger) *Pipeline {
	return &Pipeline{
		modelID:       modelID,
		model:         model,
		clientFactory: clientFactory,
		logger:        logger,
	}
}

func (p *Pipeline) ModelID() string {
	return p.modelID
}

func (p *Pipeline) Task() Task {
	return p.model.Task()
}

func (p *Pipeline) IsLoaded() bool {
	return p.loaded
}

// Load binds the remote client to the model using `token`. An empty token is a configuration error, and the pipeline
// stays unloaded.
func (p *Pipeline) Load(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("%w: no Hugging Face access token set; create one at https://huggingface.co/settings/tokens and export HF_TOKEN (or set hfToken in config.yaml)", ErrConfiguration)
	}
	p.client = p.clientFactory(p.modelID, token)
	p.loaded = true
	p.logger.Log(fmt.Sprintf("loaded %s", p.modelID))
	return nil
}

// Run feeds `input` through all the stages. Errors from the stages are returned as is. Log lines of one run share
// a run id.
func (p *Pipeline) Run(ctx context.Context, input any) (Result, error) {
	runID := uuid.NewString()
	processed, err := p.model.Preprocess(input)
	if err != nil {
		return Result{}, err
	}
	raw, elapsed, err := p.predict(ctx, runID, processed)
	if err != nil {
		return Result{}, err
	}
	output := p.model.Postprocess(raw)
	result := Result{
		Output:    output,
		LatencyMS: latencyMS(elapsed),
		ModelID:   p.modelID,
		Task:      p.model.Task(),
	}
	p.logger.Log(fmt.Sprintf("run %s (%s): %q in %.2f ms", runID, p.modelID, result.Output, result.LatencyMS))
	return result, nil
}

// Predict checks that the pipeline is loaded and only then measures the remote call. The elapsed time is
// reported on failure as well; it's zero if the guard failed because no call was made.
func (p *Pipeline) Predict(ctx context.Context, processed any) ([]Classification, time.Duration, error) {
	return p.predict(ctx, uuid.NewString(), processed)
}

func (p *Pipeline) predict(ctx context.Context, runID string, processed any) ([]Classification, time.Duration, error) {
	if !p.loaded {
		return nil, 0, fmt.Errorf("%w: %s", ErrNotLoaded, p.modelID)
	}
	t := time.Now()
	raw, err := p.model.Predict(ctx, p.client, processed)
	elapsed := time.Since(t)
	if err != nil {
		p.logger.Log(fmt.Sprintf("run %s (%s): prediction failed after %d ms: %s", runID, p.modelID, elapsed.Milliseconds(), err))
		return nil, elapsed, err
	}
	return raw, elapsed, nil
}
