package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/docledger/internal/flagx"
	"github.com/dmitrijs2005/docledger/internal/timex"
)

// JsonConfig is the on-disk shape of the client configuration.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	CallTimeout        timex.Duration `json:"call_timeout"`
}

// parseJson overlays Config with the file named by -c/-config. Read and
// decode errors panic. Empty fields keep their current values.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.CallTimeout.Duration != 0 {
		cfg.CallTimeout = time.Duration(jc.CallTimeout.Duration)
	}
}
