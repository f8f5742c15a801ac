// Package client is the gRPC client of the docledger document store.
//
// GRPCClient keeps the access token returned by Login and attaches it to
// every later call through a unary interceptor. Status codes are mapped
// back to the sentinel errors of package common, so callers can match
// them with errors.Is; an unreachable server is reported as ErrUnavailable.
package client
