package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Bus struct {
		Name       string `json:"name"`
		ObjectPath string `json:"object_path"`
		Type       string `json:"type"`
		Address    string `json:"address"`
	} `json:"bus,omitempty"`

	Calls struct {
		LookupTimeout Duration `json:"lookup_timeout"`
		ActionTimeout Duration `json:"action_timeout"`
	} `json:"calls,omitempty"`

	Monitor struct {
		RetryInterval Duration `json:"retry_interval"`
	} `json:"monitor,omitempty"`

	Paths struct {
		DefaultSyncRoot string   `json:"default_sync_root"`
		Watch           []string `json:"watch"`
	} `json:"paths,omitempty"`

	Log struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"log,omitempty"`

	Notify struct {
		Desktop *bool `json:"desktop"`
	} `json:"notify,omitempty"`
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
		Bus: Bus{
			Name:       jsonCfg.Bus.Name,
			ObjectPath: jsonCfg.Bus.ObjectPath,
			Type:       jsonCfg.Bus.Type,
			Address:    jsonCfg.Bus.Address,
		},
		Calls: Calls{
			LookupTimeout: time.Duration(jsonCfg.Calls.LookupTimeout),
			ActionTimeout: time.Duration(jsonCfg.Calls.ActionTimeout),
		},
		Monitor: Monitor{
			RetryInterval: time.Duration(jsonCfg.Monitor.RetryInterval),
		},
		Paths: Paths{
			DefaultSyncRoot: jsonCfg.Paths.DefaultSyncRoot,
			Watch:           jsonCfg.Paths.Watch,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
			File:  jsonCfg.Log.File,
		},
		Notify: Notify{
			Desktop: jsonCfg.Notify.Desktop,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "5s", "1m"
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
