package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFileName is the config file created in the user's home directory.
	DefaultFileName = ".soley-admin.yaml"

	DefaultAPIURL     = "https://soleybackend.vercel.app/api/v1"
	DefaultUploadURL  = "http://localhost:3000/api/upload"
	DefaultLanguage   = "en"
	DefaultPageSize   = 10
	DefaultDebounce   = "500ms"
	DefaultTimeout    = "30s"
	DefaultUploadAddr = ":3000"
)

// Config represents the application configuration
type Config struct {
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Session SessionConfig `yaml:"session" mapstructure:"session"`
	List    ListConfig    `yaml:"list" mapstructure:"list"`
	Format  FormatConfig  `yaml:"format" mapstructure:"format"`
	Upload  UploadConfig  `yaml:"upload" mapstructure:"upload"`
	Logger  LoggerConfig  `yaml:"logger" mapstructure:"logger"`
}

// ServerConfig contains backend connection settings
type ServerConfig struct {
	URL       string `yaml:"url" mapstructure:"url"`
	UploadURL string `yaml:"upload_url" mapstructure:"upload_url"`
	Timeout   string `yaml:"timeout" mapstructure:"timeout"`
}

// SessionConfig is the persisted client state: token, profile, language and device id.
type SessionConfig struct {
	AuthToken string      `yaml:"auth_token" mapstructure:"auth_token"`
	User      SessionUser `yaml:"user" mapstructure:"user"`
	Language  string      `yaml:"language" mapstructure:"language"`
	DeviceID  string      `yaml:"device_id" mapstructure:"device_id"`
}

// SessionUser is the stored profile of the logged in operator.
type SessionUser struct {
	ID        string `yaml:"id" mapstructure:"id" json:"id"`
	Email     string `yaml:"email" mapstructure:"email" json:"email"`
	FirstName string `yaml:"first_name" mapstructure:"first_name" json:"firstName"`
	LastName  string `yaml:"last_name" mapstructure:"last_name" json:"lastName"`
	Role      string `yaml:"role" mapstructure:"role" json:"role"`
}

// ListConfig contains list controller settings
type ListConfig struct {
	PageSize int    `yaml:"page_size" mapstructure:"page_size"`
	Debounce string `yaml:"debounce" mapstructure:"debounce"`
}

// FormatConfig contains output formatting settings
type FormatConfig struct {
	Default string `yaml:"default" mapstructure:"default"`
	Colors  bool   `yaml:"colors" mapstructure:"colors"`
}

// UploadConfig configures the local image-upload endpoint.
type UploadConfig struct {
	Addr          string `yaml:"addr" mapstructure:"addr"`
	StorageDir    string `yaml:"storage_dir" mapstructure:"storage_dir"`
	PublicBaseURL string `yaml:"public_base_url" mapstructure:"public_base_url"`
	MaxBytes      int64  `yaml:"max_bytes" mapstructure:"max_bytes"`
	RatePerMinute int    `yaml:"rate_per_minute" mapstructure:"rate_per_minute"`
}

// LoggerConfig selects log level and encoding.
type LoggerConfig struct {
	Level    string `yaml:"level" mapstructure:"level"`
	Encoding string `yaml:"encoding" mapstructure:"encoding"`
}

var (
	globalConfig *Config
	configPath   string
	debug        bool
	outputFormat string
)

// Initialize loads the configuration from file, .env and SOLEY_* variables.
func Initialize(configFile string) error {
	viper.Reset()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not load .env file: %w", err)
	}

	if configFile != "" {
		configPath = configFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("could not get home directory: %w", err)
		}
		configPath = filepath.Join(home, DefaultFileName)
	}
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("SOLEY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	_ = viper.BindEnv("server.url", "SOLEY_API_URL", "SOLEY_SERVER_URL")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			if err := createDefaultConfig(); err != nil {
				return fmt.Errorf("could not create default config: %w", err)
			}
		} else {
			return fmt.Errorf("could not read config file: %w", err)
		}
	}

	globalConfig = &Config{}
	if err := viper.Unmarshal(globalConfig); err != nil {
		return fmt.Errorf("could not unmarshal config: %w", err)
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("server.url", DefaultAPIURL)
	viper.SetDefault("server.upload_url", DefaultUploadURL)
	viper.SetDefault("server.timeout", DefaultTimeout)
	viper.SetDefault("session.auth_token", "")
	viper.SetDefault("session.language", DefaultLanguage)
	viper.SetDefault("session.device_id", "")
	viper.SetDefault("list.page_size", DefaultPageSize)
	viper.SetDefault("list.debounce", DefaultDebounce)
	viper.SetDefault("format.default", "table")
	viper.SetDefault("format.colors", true)
	viper.SetDefault("upload.addr", DefaultUploadAddr)
	viper.SetDefault("upload.storage_dir", "uploads")
	viper.SetDefault("upload.public_base_url", "http://localhost:3000/uploads")
	viper.SetDefault("upload.max_bytes", 5*1024*1024)
	viper.SetDefault("upload.rate_per_minute", 60)
	viper.SetDefault("logger.level", "warn")
	viper.SetDefault("logger.encoding", "console")
}

// defaultConfig mirrors setDefaults for the file written on first run.
func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			URL:       DefaultAPIURL,
			UploadURL: DefaultUploadURL,
			Timeout:   DefaultTimeout,
		},
		Session: SessionConfig{Language: DefaultLanguage},
		List: ListConfig{
			PageSize: DefaultPageSize,
			Debounce: DefaultDebounce,
		},
		Format: FormatConfig{
			Default: "table",
			Colors:  true,
		},
		Upload: UploadConfig{
			Addr:          DefaultUploadAddr,
			StorageDir:    "uploads",
			PublicBaseURL: "http://localhost:3000/uploads",
			MaxBytes:      5 * 1024 * 1024,
			RatePerMinute: 60,
		},
		Logger: LoggerConfig{
			Level:    "warn",
			Encoding: "console",
		},
	}
}

// createDefaultConfig creates a default configuration file
func createDefaultConfig() error {
	cfg := defaultConfig()
	return writeFile(&cfg)
}

func writeFile(cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(configPath); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	return os.WriteFile(configPath, data, 0600)
}

// Get returns the global configuration
func Get() *Config {
	if globalConfig == nil {
		cfg := defaultConfig()
		globalConfig = &cfg
	}
	return globalConfig
}

// Path returns the config file in use.
func Path() string {
	return configPath
}

// Save saves the current configuration to file
func Save() error {
	if globalConfig == nil {
		return fmt.Errorf("no configuration to save")
	}
	return writeFile(globalConfig)
}

// SetDebug sets the debug mode
func SetDebug(enabled bool) {
	debug = enabled
}

// IsDebug returns whether debug mode is enabled
func IsDebug() bool {
	return debug
}

// SetOutputFormat sets the output format
func SetOutputFormat(format string) {
	outputFormat = format
}

// GetOutputFormat returns the current output format
func GetOutputFormat() string {
	if outputFormat != "" {
		return outputFormat
	}
	if globalConfig != nil && globalConfig.Format.Default != "" {
		return globalConfig.Format.Default
	}
	return "table"
}

// Timeout parses server.timeout, falling back to 30s.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.Server.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// DebounceWindow parses list.debounce, falling back to 500ms.
func (c *Config) DebounceWindow() time.Duration {
	d, err := time.ParseDuration(c.List.Debounce)
	if err != nil || d <= 0 {
		return 500 * time.Millisecond
	}
	return d
}

// PageSize returns list.page_size, at least 1.
func (c *Config) PageSize() int {
	if c.List.PageSize < 1 {
		return DefaultPageSize
	}
	return c.List.PageSize
}

// UpdateSession stores a freshly issued token and profile.
func UpdateSession(token string, user SessionUser) error {
	if globalConfig == nil {
		return fmt.Errorf("configuration not initialized")
	}

	globalConfig.Session.AuthToken = token
	globalConfig.Session.User = user

	return Save()
}

// ClearSession removes the token and profile; language and device id survive logout.
func ClearSession() error {
	if globalConfig == nil {
		return fmt.Errorf("configuration not initialized")
	}

	globalConfig.Session.AuthToken = ""
	globalConfig.Session.User = SessionUser{}

	return Save()
}

// SetLanguage persists the preferred language.
func SetLanguage(lang string) error {
	if globalConfig == nil {
		return fmt.Errorf("configuration not initialized")
	}

	globalConfig.Session.Language = lang
	return Save()
}

// EnsureDeviceID returns the stored device identifier, generating and persisting one if absent.
func EnsureDeviceID() (string, error) {
	cfg := Get()
	if cfg.Session.DeviceID != "" {
		return cfg.Session.DeviceID, nil
	}

	cfg.Session.DeviceID = NewDeviceID(time.Now())
	if globalConfig == nil || configPath == "" {
		return cfg.Session.DeviceID, nil
	}
	return cfg.Session.DeviceID, Save()
}

// NewDeviceID builds an identifier of the form device_<unix ms>_<9 random chars>.
func NewDeviceID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("device_%d_%s", now.UnixMilli(), suffix)
}
