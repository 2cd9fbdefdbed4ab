package types

// ModelConfig selects a model backend.
// Model is the identifier of the model to use, BaseURL is an optional
// override for the API base URL and APIKey the credential sent with requests.
type ModelConfig struct {
	Model   string
	BaseURL string
	APIKey  string
}
