package config

import (
	"fmt"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to the given path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to neonfolio! Let's set up your portfolio.")
	fmt.Println()

	cfg := DefaultConfig()

	namePrompt := promptui.Prompt{
		Label:   "Owner name",
		Default: cfg.Owner.Name,
	}
	name, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("owner name: %w", err)
	}
	cfg.Owner.Name = name

	rolePrompt := promptui.Prompt{
		Label:   "Owner role / title",
		Default: cfg.Owner.Role,
	}
	role, err := rolePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("owner role: %w", err)
	}
	cfg.Owner.Role = role

	providerPrompt := promptui.Select{
		Label: "Select chat provider",
		Items: []string{"google", "openai"},
	}
	_, providerStr, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	cfg.Provider = ProviderType(providerStr)
	cfg.Model = DefaultModel(cfg.Provider)

	keyPrompt := promptui.Prompt{
		Label:   "Admin access key (demo only, stored in plaintext)",
		Default: cfg.AccessKey,
	}
	key, err := keyPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("access key: %w", err)
	}
	cfg.AccessKey = key

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, err
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	fmt.Printf("Set %s for the chat widget, then run: neonfolio serve\n", APIKeyEnvVar(cfg.Provider))
	return cfg, nil
}
