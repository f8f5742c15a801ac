package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/docledger/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-m string   metrics bind address
//	-mode string storage mode: postgres or memory
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-k string   payload encryption passphrase
//	-ks string  payload encryption salt
//	-l string   log level
//	-w int      fan-out parallelism
//	-rt int     fan-out retries per recipient
//	-i int      backup interval, minutes (0 disables)
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint
//
// Only these flags are picked out of os.Args, so other components can
// parse their own.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-a", "-m", "-mode", "-d", "-s", "-t", "-k", "-ks", "-l", "-w", "-rt", "-i",
		"-u", "-p", "-b", "-g", "-e",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.MetricsAddr, "m", config.MetricsAddr, "address and port to serve metrics")
	fs.StringVar(&config.StorageMode, "mode", config.StorageMode, "storage mode (postgres|memory)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")

	fs.StringVar(&config.EncryptionPassphrase, "k", config.EncryptionPassphrase, "payload encryption passphrase")
	fs.StringVar(&config.EncryptionSalt, "ks", config.EncryptionSalt, "payload encryption salt")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.IntVar(&config.FanoutParallelism, "w", config.FanoutParallelism, "fan-out parallelism")
	fs.IntVar(&config.FanoutMaxRetries, "rt", config.FanoutMaxRetries, "fan-out retries per recipient")

	backupInterval := fs.Int("i", int(config.BackupInterval.Minutes()), "backup interval (in minutes, 0 disables)")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// minute flags only override when given, so finer values from JSON or
	// the environment survive
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
		case "i":
			config.BackupInterval = time.Duration(*backupInterval) * time.Minute
		}
	})
}
