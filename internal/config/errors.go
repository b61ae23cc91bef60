package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, an empty database path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAIConfigs indicates invalid AI gateway settings
	// (for example, missing base URL or zero request timeout while AI
	// features are enabled).
	ErrInvalidAIConfigs = errors.New("invalid ai gateway configuration")
)
