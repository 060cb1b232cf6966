package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON-friendly field
// types (durations as strings) for the optional config file.
type StructuredJSONConfig struct {
	Auth struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	OTP struct {
		TTL         Duration `json:"ttl"`
		MaxAttempts int      `json:"max_attempts"`
	} `json:"otp,omitempty"`

	Mailer struct {
		BaseURL   string   `json:"base_url"`
		APIToken  string   `json:"api_token"`
		FromEmail string   `json:"from_email"`
		Timeout   Duration `json:"timeout"`
	} `json:"mailer,omitempty"`

	OAuth struct {
		GoogleClientID     string `json:"google_client_id"`
		GoogleClientSecret string `json:"google_client_secret"`
		GoogleCallbackURL  string `json:"google_callback_url"`
	} `json:"oauth,omitempty"`

	Workers struct {
		ResetPurgeInterval Duration `json:"reset_purge_interval"`
	} `json:"workers,omitempty"`
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
		Auth: Auth{
			TokenSignKey:  jsonCfg.Auth.TokenSignKey,
			TokenIssuer:   jsonCfg.Auth.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.Auth.TokenDuration),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		OTP: OTP{
			TTL:         time.Duration(jsonCfg.OTP.TTL),
			MaxAttempts: jsonCfg.OTP.MaxAttempts,
		},
		Mailer: Mailer{
			BaseURL:   jsonCfg.Mailer.BaseURL,
			APIToken:  jsonCfg.Mailer.APIToken,
			FromEmail: jsonCfg.Mailer.FromEmail,
			Timeout:   time.Duration(jsonCfg.Mailer.Timeout),
		},
		OAuth: OAuth{
			GoogleClientID:     jsonCfg.OAuth.GoogleClientID,
			GoogleClientSecret: jsonCfg.OAuth.GoogleClientSecret,
			GoogleCallbackURL:  jsonCfg.OAuth.GoogleCallbackURL,
		},
		Workers: Workers{
			ResetPurgeInterval: time.Duration(jsonCfg.Workers.ResetPurgeInterval),
		},
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
