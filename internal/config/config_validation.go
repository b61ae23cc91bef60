// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if !cfg.AI.Disabled {
		if cfg.AI.BaseURL == "" || cfg.AI.RequestTimeout == 0 {
			return ErrInvalidAIConfigs
		}
	}

	return nil
}
