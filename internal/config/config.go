package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	apperrors "employee-directory/internal/errors"
	"employee-directory/internal/models"

	"github.com/spf13/viper"
)

// Record sources
const (
	RecordSourceFile = "file"
	RecordSourceHTTP = "http"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Site configuration
	SiteBaseURL      string `mapstructure:"SITE_BASE_URL"`
	AssetBaseURL     string `mapstructure:"ASSET_BASE_URL"`
	EmployeesFolder  string `mapstructure:"EMPLOYEES_FOLDER"`
	OrganizationName string `mapstructure:"ORGANIZATION_NAME"`

	// Record storage
	RecordSource       string `mapstructure:"RECORD_SOURCE"`
	DataDir            string `mapstructure:"DATA_DIR"`
	RecordBaseURL      string `mapstructure:"RECORD_BASE_URL"`
	DirectoryIndexFile string `mapstructure:"DIRECTORY_INDEX_FILE"`

	// Lookups
	ResolverConcurrency int `mapstructure:"RESOLVER_CONCURRENCY"`
	HTTPTimeoutSec      int `mapstructure:"HTTP_TIMEOUT_SEC"`

	// Scannable code sizes in pixels
	QRSmallSize int `mapstructure:"QR_SMALL_SIZE"`
	QRLargeSize int `mapstructure:"QR_LARGE_SIZE"`

	// Employee card uploads
	MaxUploadMB int `mapstructure:"MAX_UPLOAD_MB"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
}

// Load reads configuration from config files and environment variables
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Set default values
	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	normalize(&config)

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")

	// Site defaults
	v.SetDefault("SITE_BASE_URL", "http://localhost:8080")
	v.SetDefault("ASSET_BASE_URL", "")
	v.SetDefault("EMPLOYEES_FOLDER", "employees")
	v.SetDefault("ORGANIZATION_NAME", "Example Corp")

	// Record storage defaults
	v.SetDefault("RECORD_SOURCE", RecordSourceFile)
	v.SetDefault("DATA_DIR", "./data")
	v.SetDefault("RECORD_BASE_URL", "")
	v.SetDefault("DIRECTORY_INDEX_FILE", "./data/index.yaml")

	// Lookup defaults
	v.SetDefault("RESOLVER_CONCURRENCY", 0)
	v.SetDefault("HTTP_TIMEOUT_SEC", 15)

	v.SetDefault("QR_SMALL_SIZE", 128)
	v.SetDefault("QR_LARGE_SIZE", 512)

	v.SetDefault("MAX_UPLOAD_MB", 32)

	// CORS defaults
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})
}

// normalize trims trailing slashes and derives the asset base from the site base
func normalize(config *Config) {
	config.RecordSource = strings.ToLower(strings.TrimSpace(config.RecordSource))
	config.SiteBaseURL = strings.TrimRight(strings.TrimSpace(config.SiteBaseURL), "/")
	config.AssetBaseURL = strings.TrimRight(strings.TrimSpace(config.AssetBaseURL), "/")
	config.RecordBaseURL = strings.TrimRight(strings.TrimSpace(config.RecordBaseURL), "/")
	config.EmployeesFolder = strings.Trim(strings.TrimSpace(config.EmployeesFolder), "/")

	if config.AssetBaseURL == "" {
		config.AssetBaseURL = config.SiteBaseURL + "/" + config.EmployeesFolder
	}
}

func validate(config *Config) error {
	switch config.RecordSource {
	case RecordSourceFile:
		if config.DataDir == "" {
			return apperrors.NewConfigurationError("DATA_DIR is required when RECORD_SOURCE is file")
		}
	case RecordSourceHTTP:
		if config.RecordBaseURL == "" {
			return apperrors.ErrRecordBaseURLMissing
		}
		if err := requireAbsoluteURL("RECORD_BASE_URL", config.RecordBaseURL); err != nil {
			return err
		}
	default:
		return apperrors.ErrUnknownRecordSource
	}

	if err := requireAbsoluteURL("SITE_BASE_URL", config.SiteBaseURL); err != nil {
		return err
	}
	if config.EmployeesFolder == "" {
		return apperrors.NewConfigurationError("EMPLOYEES_FOLDER is required")
	}
	if config.QRSmallSize <= 0 || config.QRLargeSize <= 0 {
		return apperrors.NewConfigurationError("QR_SMALL_SIZE and QR_LARGE_SIZE must be positive")
	}
	if config.HTTPTimeoutSec < 0 {
		return apperrors.NewConfigurationError("HTTP_TIMEOUT_SEC must not be negative")
	}
	if config.MaxUploadMB <= 0 {
		return apperrors.NewConfigurationError("MAX_UPLOAD_MB must be positive")
	}

	return nil
}

func requireAbsoluteURL(key, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return apperrors.NewConfigurationError(fmt.Sprintf("%s must be an absolute URL, got %q", key, raw))
	}
	return nil
}

// Site builds the site description used for every generated address
func (c *Config) Site() models.Site {
	return models.Site{
		BaseURL:      c.SiteBaseURL,
		AssetBaseURL: c.AssetBaseURL,
		Folder:       c.EmployeesFolder,
		Organization: c.OrganizationName,
	}
}

// HTTPTimeout returns the record lookup timeout; zero disables it
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSec) * time.Second
}

// MaxUploadBytes returns the upload limit of an employee card request
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
