package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database file path (SQLite DSN)
//	-ai-address AI gateway base URL
//	-ai-key AI gateway API key
//	-ai-timeout AI request timeout (e.g., "30s", "1m")
//	-ai-disabled disable AI features entirely
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var aiAddress string
	var aiKey string
	var aiTimeout time.Duration
	var aiDisabled bool
	var jsonConfigPath string

	flag.StringVar(&databaseDSN, "d", "", "Database file path")
	flag.StringVar(&aiAddress, "ai-address", "", "AI gateway base URL")
	flag.StringVar(&aiKey, "ai-key", "", "AI gateway API key")
	flag.DurationVar(&aiTimeout, "ai-timeout", 0, "AI request timeout (e.g., 30s, 1m)")
	flag.BoolVar(&aiDisabled, "ai-disabled", false, "Disable AI features")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		AI: AI{
			BaseURL:        aiAddress,
			APIKey:         aiKey,
			RequestTimeout: aiTimeout,
			Disabled:       aiDisabled,
		},
		JSONFilePath: jsonConfigPath,
	}
}
