package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-r remote base URL
//	-t remote bearer token
//	-d local database file path
//	-c/-config json file path with configs
//	-sync-interval auto-sync period (e.g., "30s", "5m")
//	-sync-user user id stamped on local changes
//	-sync-strategy automatic merge strategy
//	-request-timeout outbound request timeout (e.g., "15s")
func ParseFlags() *StructuredConfig {
	var remoteBaseURL string
	var remoteToken string
	var databaseDSN string
	var jsonConfigPath string
	var syncInterval time.Duration
	var syncUserID string
	var syncStrategy string
	var requestTimeout time.Duration

	flag.StringVar(&remoteBaseURL, "r", "", "Remote base URL")
	flag.StringVar(&remoteToken, "t", "", "Remote bearer token")
	flag.StringVar(&databaseDSN, "d", "", "Local database file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Auto-sync period (e.g., 30s, 5m)")
	flag.StringVar(&syncUserID, "sync-user", "", "User id stamped on local changes")
	flag.StringVar(&syncStrategy, "sync-strategy", "", "Automatic merge strategy")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")

	flag.Parse()

	return &StructuredConfig{
		Remote: Remote{
			BaseURL:        remoteBaseURL,
			Token:          remoteToken,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Sync: Sync{
			Interval: syncInterval,
			UserID:   syncUserID,
			Strategy: syncStrategy,
		},
		JSONFilePath: jsonConfigPath,
	}
}
