package cli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Token     string
	TokenFile string
	Output    string
	Verbose   bool
}

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// DefaultConfig returns a Config populated from PUZZLECTL_* environment variables
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("PUZZLECTL_SERVER", "http://localhost:8080"),
		Token:     os.Getenv("PUZZLECTL_TOKEN"),
		TokenFile: getEnvOrDefault("PUZZLECTL_TOKEN_FILE", defaultTokenFile()),
		Output:    getEnvOrDefault("PUZZLECTL_OUTPUT", OutputText),
	}
}

// Validate checks flag values that cobra cannot
func (c *Config) Validate() error {
	if c.Output != OutputText && c.Output != OutputJSON {
		return errors.New("--output must be text or json")
	}
	return nil
}

// LoadToken loads the token from file if not already set
func (c *Config) LoadToken() error {
	if c.Token != "" {
		return nil
	}

	data, err := os.ReadFile(c.TokenFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	c.Token = strings.TrimSpace(string(data))
	return nil
}

// SaveToken saves the token to the token file
func (c *Config) SaveToken(token string) error {
	c.Token = token

	if err := os.MkdirAll(filepath.Dir(c.TokenFile), 0700); err != nil {
		return err
	}
	return os.WriteFile(c.TokenFile, []byte(token), 0600)
}

// ClearToken forgets the saved token
func (c *Config) ClearToken() error {
	c.Token = ""
	err := os.Remove(c.TokenFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".puzzlectl/token"
	}
	return filepath.Join(home, ".puzzlectl", "token")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
