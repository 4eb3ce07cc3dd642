// Shared helpers for madlib CLI commands.
package main

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/storyforge/madlib/internal/bank"
	"github.com/storyforge/madlib/internal/paths"
)

// attachBank resolves the bank path, creates a backend, and attaches it.
// The caller must defer backend.Detach().
func attachBank() (*bank.Backend, error) {
	var cfgValue string
	if cfg != nil {
		cfgValue = cfg.GetString(cfgKeyBankPath)
	}

	bankPath, err := paths.ResolveBankPath(flagBankPath, cfgValue)
	if err != nil {
		return nil, fmt.Errorf("resolve bank path: %w", err)
	}

	backend := bank.NewBackend()
	if err := backend.Attach(bankPath); err != nil {
		return nil, fmt.Errorf("attach bank: %w", err)
	}
	return backend, nil
}

// generateStoryID generates a UUID v7 for generation reports, falling
// back to UUID v4 if v7 generation fails.
func generateStoryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
