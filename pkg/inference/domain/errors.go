package domain

import "errors"

var (
	// ErrConfiguration the pipeline can't be loaded until the configuration is fixed (for example, no access token).
	ErrConfiguration = errors.New("configuration error")
	// ErrValidation the input is malformed; the caller can retry with corrected input.
	ErrValidation = errors.New("invalid input")
	// ErrNotLoaded a prediction was attempted before Load. It's a bug in the caller, not a transient condition.
	ErrNotLoaded = errors.New("model not loaded, call Load first")
	// ErrRemote any failure reported by the hosted inference API or the transport to it.
	ErrRemote = errors.New("remote inference failed")
	// ErrUnknownModel the registry has no model with the given display name.
	ErrUnknownModel = errors.New("unknown model")
)
