package service

import (
	"errors"

	"github.com/mmcdole/marquee/internal/adapter"
)

// ErrAPIKeyFromEnv is returned by Logout when the key is set in the environment
var ErrAPIKeyFromEnv = errors.New(adapter.APIKeyEnv + " is set; unset it to remove the API key")

// SessionService manages the stored API credentials
type SessionService struct {
	save func(*adapter.Config) error
}

// NewSessionService creates a new SessionService
func NewSessionService() *SessionService {
	return &SessionService{save: adapter.SaveConfig}
}

// SetAPIKey stores key in cfg and writes it to the config file
func (s *SessionService) SetAPIKey(cfg *adapter.Config, key string) error {
	cfg.OMDb.APIKey = key
	return s.save(cfg)
}

// Logout clears the stored API key. The file is still cleared when the
// environment supplies a key, but ErrAPIKeyFromEnv is returned since the
// app stays configured.
func (s *SessionService) Logout(cfg *adapter.Config) error {
	cfg.OMDb.APIKey = ""
	if err := s.save(cfg); err != nil {
		return err
	}
	if cfg.APIKeyFromEnv() {
		return ErrAPIKeyFromEnv
	}
	return nil
}
