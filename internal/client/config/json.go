package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/zarclabs/zarc-auth/internal/flagx"
	"github.com/zarclabs/zarc-auth/internal/timex"
)

// JsonConfig is the DTO for the CLI JSON configuration file. It relies on
// timex.Duration so intervals can be given either as strings ("10s") or as
// integer nanoseconds.
type JsonConfig struct {
	ServerBaseURL  string         `json:"server_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
}

// parseJson loads configuration values from the JSON file referenced by the
// -c or -config flag, if any. Invalid files panic.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.ServerBaseURL != "" {
		config.ServerBaseURL = c.ServerBaseURL
	}
	if c.RequestTimeout.Duration != 0 {
		config.RequestTimeout = time.Duration(c.RequestTimeout.Duration)
	}
}
