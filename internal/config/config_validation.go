package config

import (
	"fmt"
	"strings"

	popperrors "github.com/alexisbeaulieu97/popper/pkg/errors"
)

// ValidateConfig performs structural and cross-field validation on an entire configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return popperrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := ValidateStruct(cfg); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(cfg.Demo.Items))
	for i, item := range cfg.Demo.Items {
		key := strings.ToLower(strings.TrimSpace(item))
		if _, dup := seen[key]; dup {
			return popperrors.NewValidationError(fmt.Sprintf("demo.items[%d]", i), fmt.Sprintf("duplicate menu item %q", item), nil)
		}
		seen[key] = struct{}{}
	}

	return nil
}
