// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with snake_case JSON field
// names and duration strings, matching the shape of the optional config file.
type StructuredJSONConfig struct {
	App struct {
		AuthToken string `json:"auth_token"`
		Version   string `json:"version"`
	} `json:"app"`

	Storage struct {
		DataDir string `json:"data_dir"`
		DSN     string `json:"dsn"`
	} `json:"storage"`

	Server struct {
		Address         string   `json:"address"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server"`

	Adapter struct {
		StoreAddress   string   `json:"store_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter"`

	Sync struct {
		Interval Duration `json:"interval"`
	} `json:"sync"`
}

// Duration wraps time.Duration so JSON config files can use human-readable
// values like "30s" or "5m".
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler for duration strings.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}

	*d = Duration(parsed)
	return nil
}

// parseJSON reads path and converts the JSON config into a
// [StructuredConfig] suitable for merging.
func parseJSON(path string) (*StructuredConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading json config file: %w", err)
	}

	var jsonCfg StructuredJSONConfig
	if err = json.Unmarshal(payload, &jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json config file: %w", err)
	}

	return &StructuredConfig{
		App: App{
			AuthToken: jsonCfg.App.AuthToken,
			Version:   jsonCfg.App.Version,
		},
		Storage: Storage{
			DataDir: jsonCfg.Storage.DataDir,
			DB:      DB{DSN: jsonCfg.Storage.DSN},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.Address,
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			StoreAddress:   jsonCfg.Adapter.StoreAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Sync: Sync{
			Interval: time.Duration(jsonCfg.Sync.Interval),
		},
	}, nil
}
