// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		Version  string `json:"version"`
		SkipSeed bool   `json:"skip_seed"`
	} `json:"app"`

	Storage struct {
		Driver     string `json:"driver"`
		Namespace  string `json:"namespace"`
		QuotaBytes int64  `json:"quota_bytes"`
		DB         struct {
			DSN string `json:"dsn"`
		} `json:"db"`
		File struct {
			Path string `json:"path"`
		} `json:"file"`
		Redis struct {
			Address  string `json:"address"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis"`
	} `json:"storage"`

	Log struct {
		File  string `json:"file"`
		Level string `json:"level"`
	} `json:"log"`

	Workers struct {
		DashboardRefreshInterval Duration `json:"dashboard_refresh_interval"`
	} `json:"workers"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:  jsonCfg.App.Version,
			SkipSeed: jsonCfg.App.SkipSeed,
		},
		Storage: Storage{
			Driver:     jsonCfg.Storage.Driver,
			Namespace:  jsonCfg.Storage.Namespace,
			QuotaBytes: jsonCfg.Storage.QuotaBytes,
			DB:         DB{DSN: jsonCfg.Storage.DB.DSN},
			File:       File{Path: jsonCfg.Storage.File.Path},
			Redis: Redis{
				Address:  jsonCfg.Storage.Redis.Address,
				Password: jsonCfg.Storage.Redis.Password,
				DB:       jsonCfg.Storage.Redis.DB,
			},
		},
		Log: Log{
			File:  jsonCfg.Log.File,
			Level: jsonCfg.Log.Level,
		},
		Workers: Workers{
			DashboardRefreshInterval: time.Duration(jsonCfg.Workers.DashboardRefreshInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
