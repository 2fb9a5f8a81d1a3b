package ai

import "github.com/openai/openai-go"

// newCompatibleProvider targets OpenAI-compatible APIs such as OpenRouter,
// Ollama or a self-hosted vLLM. Only the base URL and name differ.
func newCompatibleProvider(cfg Config) *OpenAIProvider {
	return &OpenAIProvider{
		client: openai.NewClient(openAIOptions(cfg)...),
		model:  cfg.Model,
		name:   ProviderCompatible,
	}
}
