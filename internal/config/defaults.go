package config

// modelPresets maps each provider to its default chat model.
var modelPresets = map[ProviderType]string{
	ProviderGoogle: "gemini-3-flash-preview",
	ProviderOpenAI: "gpt-4o-mini",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:        8080,
		Provider:    ProviderGoogle,
		Model:       modelPresets[ProviderGoogle],
		Temperature: 0.7,
		Owner: OwnerConfig{
			Name:   "Usman",
			Role:   "Root Architect",
			Avatar: "https://avatars.githubusercontent.com/u/0?v=4",
		},
		AccessKey: "usman_root",
		Greeting:  "Welcome. I am Usman's neural proxy. How can I assist you in exploring his capabilities today?",
	}
}

// DefaultModel returns the default chat model for the given provider.
// Falls back to the Google preset for unknown providers.
func DefaultModel(provider ProviderType) string {
	if m, ok := modelPresets[provider]; ok {
		return m
	}
	return modelPresets[ProviderGoogle]
}
