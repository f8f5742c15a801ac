package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment variable the server reads.
const EnvPrefix = "DOCLEDGER_"

// envFile is loaded before the environment is read. Variables already set
// in the process environment win over the file.
var envFile = ".env"

// parseEnv overlays DOCLEDGER_* variables onto config. Malformed numeric
// or duration values panic, like malformed flags.
func parseEnv(config *Config) {
	_ = godotenv.Load(envFile)

	strs := map[string]*string{
		"GRPC_ADDR":             &config.EndpointAddrGRPC,
		"METRICS_ADDR":          &config.MetricsAddr,
		"STORAGE_MODE":          &config.StorageMode,
		"DATABASE_DSN":          &config.DatabaseDSN,
		"SECRET_KEY":            &config.SecretKey,
		"ENCRYPTION_PASSPHRASE": &config.EncryptionPassphrase,
		"ENCRYPTION_SALT":       &config.EncryptionSalt,
		"LOG_LEVEL":             &config.LogLevel,
		"S3_ROOT_USER":          &config.S3RootUser,
		"S3_ROOT_PASSWORD":      &config.S3RootPassword,
		"S3_BUCKET":             &config.S3Bucket,
		"S3_REGION":             &config.S3Region,
		"S3_BASE_ENDPOINT":      &config.S3BaseEndpoint,
	}
	for name, dst := range strs {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"FANOUT_PARALLELISM": &config.FanoutParallelism,
		"FANOUT_MAX_RETRIES": &config.FanoutMaxRetries,
	}
	for name, dst := range ints {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				panic(fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
			}
			*dst = n
		}
	}

	durations := map[string]*time.Duration{
		"ACCESS_TOKEN_VALIDITY": &config.AccessTokenValidityDuration,
		"BACKUP_INTERVAL":       &config.BackupInterval,
	}
	for name, dst := range durations {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				panic(fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
			}
			*dst = d
		}
	}
}
