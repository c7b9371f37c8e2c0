package domain

// A list of built-in config keys supported by the core (front end specific settings are not included).

const (
	// ConfigKeyLogPath file path where to save the logs
	ConfigKeyLogPath = "logPath"
	// ConfigKeyHFToken the access token for the hosted inference API. If empty, the HF_TOKEN environment variable
	// is used instead.
	ConfigKeyHFToken = "hfToken"
	// ConfigKeyInferenceBaseURL the root URL of the hosted inference API; the model ID is appended to it
	ConfigKeyInferenceBaseURL = "inferenceBaseURL"
	// ConfigKeyRequestTimeout when to give up on a hung remote call, in milliseconds. Passed to the HTTP client as is.
	ConfigKeyRequestTimeout = "requestTimeout"
	// ConfigKeyImageMaxDimension images with a bigger side are scaled down (keeping the aspect ratio) before
	// they're uploaded. Zero disables scaling.
	ConfigKeyImageMaxDimension = "imageMaxDimension"
	// ConfigKeyTextModelID overrides the model used for sentiment analysis
	ConfigKeyTextModelID = "textModelID"
	// ConfigKeyImageModelID overrides the model used for image classification
	ConfigKeyImageModelID = "imageModelID"
)
