package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL        = "http://localhost:8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultTheme          = "default"
)

// QuickApp is a preset offered by the quick picker
type QuickApp struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// Label returns the picker label for the app
func (q QuickApp) Label() string {
	if q.Name == "" || q.Name == q.ID {
		return q.ID
	}
	return fmt.Sprintf("%s (%s)", q.Name, q.ID)
}

// Config holds application configuration
type Config struct {
	BaseURL        string        `yaml:"base_url"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	Theme          string        `yaml:"theme"`
	LogFile        string        `yaml:"log_file"`
	QuickApps      []QuickApp    `yaml:"quick_apps"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		BaseURL:        DefaultBaseURL,
		RequestTimeout: DefaultRequestTimeout,
		Theme:          DefaultTheme,
	}
}

// Load loads configuration from config file and environment variables
// Environment variables take precedence over config file values
func Load() (*Config, error) {
	cfg := Default()

	if err := cfg.loadFromFile(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	if err := cfg.loadFromEnv(); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) loadFromFile() error {
	configPath := getConfigPath()
	if configPath == "" {
		return os.ErrNotExist
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, c)
}

func (c *Config) loadFromEnv() error {
	if url := os.Getenv("REVIEWS_API_URL"); url != "" {
		c.BaseURL = url
	}
	if raw := os.Getenv("REVIEWS_REQUEST_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid REVIEWS_REQUEST_TIMEOUT %q: %w", raw, err)
		}
		c.RequestTimeout = d
	}
	if path := os.Getenv("REVIEWS_LOG_FILE"); path != "" {
		c.LogFile = path
	}
	if theme := os.Getenv("REVIEWS_THEME"); theme != "" {
		c.Theme = theme
	}
	return nil
}

func (c *Config) applyDefaults() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.RequestTimeout < 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}

	apps := c.QuickApps[:0]
	for _, app := range c.QuickApps {
		app.ID = strings.TrimSpace(app.ID)
		if app.ID != "" {
			apps = append(apps, app)
		}
	}
	c.QuickApps = apps
}

// getConfigPath returns the path to the config file
// Priority: $REVIEWS_BROWSER_CONFIG > ~/.config/reviews-browser/config.yaml
func getConfigPath() string {
	if configPath := os.Getenv("REVIEWS_BROWSER_CONFIG"); configPath != "" {
		return configPath
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config", "reviews-browser", "config.yaml")
}

// Path returns the config file location, whether or not it exists
func Path() string {
	return getConfigPath()
}

// EnsureConfigDir ensures the config directory exists
func EnsureConfigDir() (string, error) {
	configPath := getConfigPath()
	if configPath == "" {
		return "", fmt.Errorf("cannot determine config path")
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}

	return configDir, nil
}

const exampleConfig = `# Reviews Browser Configuration

# Root URL of the reviews backend serving /api/reviews_by_app
base_url: "http://localhost:8080"

# Optional: per-request timeout (0 disables it)
request_timeout: 30s

# Optional: Color theme (default, catppuccin, dracula, nord, gruvbox)
theme: "default"

# Optional: write JSON logs here; nothing is logged when empty
log_file: ""

# Optional: apps offered by the quick picker (p key)
quick_apps:
  - id: "com.example.app"
    name: "Example"
  - id: "com.company.awesomeapp"
    name: "Awesome App"
`

// SaveExampleConfig creates an example config file and returns its path.
// An existing file is left untouched.
func SaveExampleConfig() (string, error) {
	if _, err := EnsureConfigDir(); err != nil {
		return "", err
	}

	configPath := getConfigPath()
	if _, err := os.Stat(configPath); err == nil {
		return configPath, nil
	}

	return configPath, os.WriteFile(configPath, []byte(exampleConfig), 0600)
}

// Save persists the fields the UI manages, keeping everything else in the
// existing file as it was.
func (c *Config) Save() error {
	if _, err := EnsureConfigDir(); err != nil {
		return err
	}

	configPath := getConfigPath()

	existing := Default()
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, existing); err != nil {
			return fmt.Errorf("failed to parse existing config: %w", err)
		}
	}

	existing.Theme = c.Theme

	data, err := yaml.Marshal(existing)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte("# Reviews Browser Configuration\n\n")
	return os.WriteFile(configPath, append(header, data...), 0600)
}
