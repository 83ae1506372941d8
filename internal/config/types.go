package config

// ProviderType identifies a generative-language provider.
type ProviderType string

const (
	ProviderGoogle ProviderType = "google"
	ProviderOpenAI ProviderType = "openai"
)

// OwnerConfig describes the site owner shown on the public page and in
// the admin session header.
type OwnerConfig struct {
	Name   string `yaml:"name" koanf:"name"`
	Role   string `yaml:"role" koanf:"role"`
	Avatar string `yaml:"avatar" koanf:"avatar"`
}

// Config is the top-level neonfolio configuration, corresponding to
// .neonfolio.yml.
type Config struct {
	Port        int          `yaml:"port" koanf:"port"`
	Provider    ProviderType `yaml:"provider" koanf:"provider"`
	Model       string       `yaml:"model" koanf:"model"`
	Temperature float64      `yaml:"temperature" koanf:"temperature"`
	Owner       OwnerConfig  `yaml:"owner" koanf:"owner"`

	// AccessKey is the admin panel demo secret. It is compared in
	// plaintext with no hashing or rate limiting and must never be
	// treated as real access control.
	AccessKey string `yaml:"access_key" koanf:"access_key"`

	// Greeting is the assistant's opening message in the chat widget.
	Greeting string `yaml:"greeting" koanf:"greeting"`
}
