// Package config loads runtime configuration for the docledger CLI.
//
// Values are applied in order: built-in defaults, an optional JSON file
// (-c or -config) and command-line flags.
//
//	-a string   address:port of the docledger gRPC endpoint
//	-t int      per-call timeout (seconds)
//
// JSON durations accept strings like "3s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "call_timeout": "10s"
//	}
package config
