// Package secrets resolves secret values supplied either inline in
// configuration or through a file path. Files win over inline values.
package secrets

import (
	"fmt"
	"os"
	"strings"
)

// Source describes how to load a secret value.
type Source struct {
	// Name gives context in error messages ("gemini api key").
	Name string
	// Value is an inline secret from configuration or flags.
	Value string
	// File points to a file holding the secret; takes precedence over Value.
	File string
}

// Load resolves the secret, always trimmed. It fails when neither File nor
// Value yield a non-empty value.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "secret"
	}

	if file := strings.TrimSpace(src.File); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}
		if secret := strings.TrimSpace(string(data)); secret != "" {
			return secret, nil
		}
		return "", fmt.Errorf("%s file %q is empty", name, file)
	}

	if secret := strings.TrimSpace(src.Value); secret != "" {
		return secret, nil
	}
	return "", fmt.Errorf("%s is not configured", name)
}
