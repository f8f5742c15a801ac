package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/docledger/internal/flagx"
	"github.com/dmitrijs2005/docledger/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations accept
// "1m" style strings or integer nanoseconds. Absent fields keep their
// current values.
type JsonConfig struct {
	EndpointAddrGRPC            string          `json:"endpoint_addr_grpc"`
	MetricsAddr                 string          `json:"metrics_addr"`
	StorageMode                 string          `json:"storage_mode"`
	DatabaseDSN                 string          `json:"database_dsn"`
	SecretKey                   string          `json:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	EncryptionPassphrase        string          `json:"encryption_passphrase"`
	EncryptionSalt              string          `json:"encryption_salt"`
	LogLevel                    string          `json:"log_level"`
	FanoutParallelism           *int            `json:"fanout_parallelism"`
	FanoutMaxRetries            *int            `json:"fanout_max_retries"`
	BackupInterval              *timex.Duration `json:"backup_interval"`
	S3RootUser                  string          `json:"s3_root_user"`
	S3RootPassword              string          `json:"s3_root_password"`
	S3Bucket                    string          `json:"s3_bucket"`
	S3Region                    string          `json:"s3_region"`
	S3BaseEndpoint              string          `json:"s3_base_endpoint"`
}

// parseJson overlays the file named by -c/-config onto config. Without
// the flag nothing is loaded. An unreadable or invalid file panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	c.apply(config)
}

func (c *JsonConfig) apply(config *Config) {
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.MetricsAddr, c.MetricsAddr)
	setString(&config.StorageMode, c.StorageMode)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.EncryptionPassphrase, c.EncryptionPassphrase)
	setString(&config.EncryptionSalt, c.EncryptionSalt)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)

	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.BackupInterval != nil {
		config.BackupInterval = c.BackupInterval.Duration
	}
	if c.FanoutParallelism != nil {
		config.FanoutParallelism = *c.FanoutParallelism
	}
	if c.FanoutMaxRetries != nil {
		config.FanoutMaxRetries = *c.FanoutMaxRetries
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
