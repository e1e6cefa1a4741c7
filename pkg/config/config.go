package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	DataPath = ""
	BaseURL  = ""
	Port     = "8080"

	AppEnv     = "development"
	AppVersion = "1.0.0"

	// Logging settings
	LogLevel  = "info"
	LogFormat = "console"

	// Cache settings
	ArticleCache = false

	// Rate limit settings, 0 disables the limiter
	RateLimitRPS   = 0.0
	RateLimitBurst = 20
)

const dataPathRequiredCode = "DATA_PATH_REQUIRED"

// FileConfig is the optional YAML/TOML file named by BLOG_CONFIG_FILE.
type FileConfig struct {
	Data struct {
		Path string `yaml:"path" toml:"path"`
	} `yaml:"data" toml:"data"`
	BaseURL string `yaml:"base-url" toml:"base-url"`
	Port    string `yaml:"port" toml:"port"`
}

// Init loads .env, the optional config file and the environment, in that
// order of precedence (environment wins), then validates the result.
func Init() error {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found or error loading it.")
	}

	if path := strings.TrimSpace(os.Getenv("BLOG_CONFIG_FILE")); path != "" {
		fc, err := LoadFile(path)
		if err != nil {
			return err
		}
		applyFile(fc)
	}

	getEnv := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}

	DataPath = getEnv("BLOG_DATA_PATH", DataPath)
	BaseURL = getEnv("BLOG_BASE_URL", BaseURL)
	Port = getEnv("PORT", Port)

	AppEnv = getEnv("APP_ENV", AppEnv)
	AppVersion = getEnv("APP_VERSION", AppVersion)
	LogLevel = getEnv("LOG_LEVEL", LogLevel)
	LogFormat = getEnv("LOG_FORMAT", LogFormat)

	if v := os.Getenv("BLOG_ARTICLE_CACHE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			ArticleCache = b
		}
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			RateLimitRPS = f
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			RateLimitBurst = n
		}
	}

	return Validate()
}

// Validate reports configuration that makes startup impossible.
func Validate() error {
	if strings.TrimSpace(DataPath) == "" {
		return goerrors.Wrap(fmt.Errorf("blog data path is empty"), goerrors.CategoryValidation,
			"BLOG_DATA_PATH (or data.path in the config file) is required").
			WithTextCode(dataPathRequiredCode)
	}
	return nil
}

// LoadFile decodes a YAML or TOML config file, chosen by extension.
func LoadFile(path string) (*FileConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &fc)
	case ".toml":
		err = toml.Unmarshal(content, &fc)
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &fc, nil
}

func applyFile(fc *FileConfig) {
	if fc.Data.Path != "" {
		DataPath = fc.Data.Path
	}
	if fc.BaseURL != "" {
		BaseURL = fc.BaseURL
	}
	if fc.Port != "" {
		Port = fc.Port
	}
}
