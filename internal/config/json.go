package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON-friendly types;
// durations are accepted as strings like "30s" via the [Duration] wrapper.
type StructuredJSONConfig struct {
	App struct {
		Version   string `json:"version"`
		StaticDir string `json:"static_dir"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	OTM struct {
		BaseURL            string   `json:"base_url"`
		Username           string   `json:"username"`
		Password           string   `json:"password"`
		Domain             string   `json:"domain"`
		Subdomain          string   `json:"subdomain"`
		RequestTimeout     Duration `json:"request_timeout"`
		InsecureSkipVerify bool     `json:"insecure_skip_verify"`
	} `json:"otm,omitempty"`
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
			Version:   jsonCfg.App.Version,
			StaticDir: jsonCfg.App.StaticDir,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		OTM: OTM{
			BaseURL:            jsonCfg.OTM.BaseURL,
			Username:           jsonCfg.OTM.Username,
			Password:           jsonCfg.OTM.Password,
			Domain:             jsonCfg.OTM.Domain,
			Subdomain:          jsonCfg.OTM.Subdomain,
			RequestTimeout:     time.Duration(jsonCfg.OTM.RequestTimeout),
			InsecureSkipVerify: jsonCfg.OTM.InsecureSkipVerify,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
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
