package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	keyringService = appName
	keyringUser    = "api-token"
	credFileName   = ".credentials"

	// EnvToken overrides every other token source.
	EnvToken = "ITEMS_TUI_TOKEN"
)

// TokenSource names where a token was found.
type TokenSource string

const (
	SourceNone    TokenSource = "none"
	SourceEnv     TokenSource = "environment"
	SourceKeyring TokenSource = "keyring"
	SourceFile    TokenSource = "credentials file"
	SourceConfig  TokenSource = "config file"
)

// DataDir returns the path to the data directory for secure storage.
// Uses XDG_DATA_HOME or defaults to ~/.local/share/items-tui/
func DataDir() (string, error) {
	// Check XDG_DATA_HOME first
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dataHome = filepath.Join(homeDir, ".local", "share")
	}

	dataDir := filepath.Join(dataHome, appName)
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	return dataDir, nil
}

func credentialsPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, credFileName), nil
}

// LookupToken finds the optional API token and reports its source.
// Priority: 1. ITEMS_TUI_TOKEN env var, 2. System keyring,
// 3. Credentials file, 4. auth.api_token in cfg.
func LookupToken(cfg *Config) (string, TokenSource, error) {
	// 1. Environment variable, so a shell can override a stored token
	if token := strings.TrimSpace(os.Getenv(EnvToken)); token != "" {
		return token, SourceEnv, nil
	}

	// 2. System keyring
	if token, err := keyring.Get(keyringService, keyringUser); err == nil {
		if token = strings.TrimSpace(token); token != "" {
			return token, SourceKeyring, nil
		}
	}

	// 3. Credentials file, written when the keyring is unavailable
	credPath, err := credentialsPath()
	if err != nil {
		return "", SourceNone, err
	}
	data, err := os.ReadFile(credPath)
	switch {
	case err == nil:
		if token := strings.TrimSpace(string(data)); token != "" {
			return token, SourceFile, nil
		}
	case !os.IsNotExist(err):
		return "", SourceNone, fmt.Errorf("failed to read credentials file: %w", err)
	}

	// 4. Plain config value
	if cfg != nil {
		if token := strings.TrimSpace(cfg.Auth.APIToken); token != "" {
			return token, SourceConfig, nil
		}
	}

	// Most servers need no token
	return "", SourceNone, nil
}

// GetToken returns the optional API token. An empty result means no
// Authorization header is sent.
func GetToken(cfg *Config) (string, error) {
	token, _, err := LookupToken(cfg)
	return token, err
}

// SaveToken stores the API token in the system keyring, or in the
// credentials file when no keyring is available.
func SaveToken(token string) (TokenSource, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return SourceNone, fmt.Errorf("token cannot be empty")
	}

	if err := keyring.Set(keyringService, keyringUser, token); err == nil {
		return SourceKeyring, nil
	}

	credPath, err := credentialsPath()
	if err != nil {
		return SourceNone, err
	}
	if err := os.WriteFile(credPath, []byte(token), 0600); err != nil {
		return SourceNone, fmt.Errorf("failed to write credentials file: %w", err)
	}
	return SourceFile, nil
}

// ClearToken removes the stored API token from the keyring and the
// credentials file. Tokens from the environment or config are left alone.
func ClearToken() error {
	// Ignore errors: the keyring may be unavailable or hold nothing
	_ = keyring.Delete(keyringService, keyringUser)

	credPath, err := credentialsPath()
	if err != nil {
		return err
	}
	if err := os.Remove(credPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove credentials file: %w", err)
	}

	return nil
}
