package api

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"kgeyst.com/hfdemo/pkg/common"
	"kgeyst.com/hfdemo/pkg/inference/domain"
	"kgeyst.com/hfdemo/pkg/inference/domain/models"
	"kgeyst.com/hfdemo/pkg/inference/infrastructure/huggingface"
	"kgeyst.com/hfdemo/pkg/inference/infrastructure/logging"
)

// See domain/config.go
const (
	ConfigKeyLogPath = domain.ConfigKeyLogPath
	ConfigKeyHFToken = domain.ConfigKeyHFToken
)

// EnvHFToken the environment variable the access token is read from if the config doesn't have one.
const EnvHFToken = "HF_TOKEN"

const defaultRequestTimeout = 2 * time.Minute

type Result = domain.Result

type ModelInfo = domain.ModelInfo

// API is the entrypoint for front ends (console, IRC, CLI). It shouldn't contain any logic of its own; it glues
// the components together and keeps track of the currently loaded model.
// All methods are serialized: a model never processes two inputs at once.
type API interface {
	// ModelNames returns display names of all the models, in display order.
	ModelNames() []string
	// ModelInfo describes the model without loading it.
	ModelInfo(name string) (ModelInfo, error)
	// LoadModel creates and loads the model with the given display name and makes it current. If loading fails,
	// the previously loaded model (if any) stays current.
	LoadModel(name string) (ModelInfo, error)
	// CurrentModel returns the display name of the current model, or an empty string if nothing is loaded yet.
	CurrentModel() string
	// Run feeds the input to the current model: text for text models, an image path or encoded image bytes
	// for vision models.
	Run(ctx context.Context, input any) (Result, error)
	// RunModel loads a fresh instance of the given model just for this input. The current model isn't changed.
	RunModel(ctx context.Context, name string, input any) (Result, error)
}

type api struct {
	mutex       sync.Mutex
	config      *common.Config
	registry    *domain.Registry
	currentName string
	current     *domain.Pipeline
}

func NewAPI(config *common.Config, logger common.Logger) (API, error) {
	clientFactory := huggingface.NewClientFactory(
		config.GetStringOrDefault(domain.ConfigKeyInferenceBaseURL, huggingface.DefaultBaseURL),
		config.GetDurationOrDefault(domain.ConfigKeyRequestTimeout, defaultRequestTimeout),
	)
	return NewAPIWithClientFactory(config, logging.NewInferenceClientFactoryDecorator(clientFactory, logger), logger)
}

// NewAPIWithClientFactory same as NewAPI, but remote calls go through `clientFactory`.
func NewAPIWithClientFactory(config *common.Config, clientFactory domain.InferenceClientFactory, logger common.Logger) (API, error) {
	registry, err := models.NewRegistry(clientFactory, config, logger)
	if err != nil {
		return nil, err
	}
	return &api{
		config:   config,
		registry: registry,
	}, nil
}

// ResolveToken returns the access token from the config or, if there's none, from the environment.
func ResolveToken(config *common.Config) string {
	token := strings.TrimSpace(config.GetString(ConfigKeyHFToken))
	if token != "" {
		return token
	}
	return strings.TrimSpace(os.Getenv(EnvHFToken))
}

func (a *api) ModelNames() []string {
	return a.registry.Names()
}

func (a *api) ModelInfo(name string) (ModelInfo, error) {
	return a.registry.Info(name)
}

func (a *api) LoadModel(name string) (ModelInfo, error) {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	pipeline, err := a.createAndLoad(name)
	if err != nil {
		return ModelInfo{}, err
	}
	a.current = pipeline
	a.currentName = name
	return a.registry.Info(name)
}

func (a *api) CurrentModel() string {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	return a.currentName
}

func (a *api) Run(ctx context.Context, input any) (Result, error) {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	if a.current == nil {
		return Result{}, fmt.Errorf("%w: no model selected", domain.ErrNotLoaded)
	}
	return a.current.Run(ctx, input)
}

func (a *api) RunModel(ctx context.Context, name string, input any) (Result, error) {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	pipeline, err := a.createAndLoad(name)
	if err != nil {
		return Result{}, err
	}
	return pipeline.Run(ctx, input)
}

func (a *api) createAndLoad(name string) (*domain.Pipeline, error) {
	pipeline, err := a.registry.Create(name)
	if err != nil {
		return nil, err
	}
	err = pipeline.Load(ResolveToken(a.config))
	if err != nil {
		return nil, err
	}
	return pipeline, nil
}
