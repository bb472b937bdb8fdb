// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON-friendly field
// types.
type StructuredJSONConfig struct {
	Crypto struct {
		Scheme        string   `json:"scheme"`
		ChunkSize     ByteSize `json:"chunk_size"`
		Concurrency   int      `json:"concurrency"`
		MaxSourceSize ByteSize `json:"max_source_size"`
		Deadline      Duration `json:"deadline"`
	} `json:"crypto,omitempty"`

	Cache struct {
		Capacity       int      `json:"capacity"`
		RawTTL         Duration `json:"raw_ttl"`
		SweepThreshold int      `json:"sweep_threshold"`
	} `json:"cache,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			ExportDir string `json:"export_dir"`
			MediaDir  string `json:"media_dir"`
			TempDir   string `json:"temp_dir"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		JanitorInterval Duration `json:"janitor_interval"`
	} `json:"workers,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
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
		Crypto: Crypto{
			Scheme:        jsonCfg.Crypto.Scheme,
			ChunkSize:     jsonCfg.Crypto.ChunkSize,
			Concurrency:   jsonCfg.Crypto.Concurrency,
			MaxSourceSize: jsonCfg.Crypto.MaxSourceSize,
			Deadline:      time.Duration(jsonCfg.Crypto.Deadline),
		},
		Cache: Cache{
			Capacity:       jsonCfg.Cache.Capacity,
			RawTTL:         time.Duration(jsonCfg.Cache.RawTTL),
			SweepThreshold: jsonCfg.Cache.SweepThreshold,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				ExportDir: jsonCfg.Storage.Files.ExportDir,
				MediaDir:  jsonCfg.Storage.Files.MediaDir,
				TempDir:   jsonCfg.Storage.Files.TempDir,
			},
		},
		Workers:      Workers{JanitorInterval: time.Duration(jsonCfg.Workers.JanitorInterval)},
		Log:          Log{Level: jsonCfg.Log.Level},
		JSONFilePath: "",
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
