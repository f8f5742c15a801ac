// Package cli provides the interactive docledger command-line client.
//
// App wires the configuration and the gRPC client to a REPL (see runREPL).
// After login the user can post, update and read JSON documents, follow
// their version history, share them with other users and, as the
// instructor, publish documents to everyone.
package cli
