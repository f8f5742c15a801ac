package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/docledger/internal/flagx"
)

// parseFlags overlays Config with -a and -t. Other arguments are filtered
// out with flagx.FilterArgs so -c/-config do not trip the parser.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	timeout := fs.Int("t", int(cfg.CallTimeout.Seconds()), "call timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.CallTimeout = time.Duration(*timeout) * time.Second
}
