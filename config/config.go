package config

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Data     DataConfig     `yaml:"data"`
	Export   ExportConfig   `yaml:"export"`
	Cache    CacheConfig    `yaml:"cache"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
	Mode string `yaml:"mode"` // debug, release
}

type DatabaseConfig struct {
	Type string `yaml:"type"` // sqlite, mysql, postgres
	DSN  string `yaml:"dsn"`
}

type DataConfig struct {
	Dir string `yaml:"dir"`
}

// ExportConfig selects the typefaces of exported documents. The *Path fields
// point at TTF files embedded into PDFs; the names are written into DOCX runs.
type ExportConfig struct {
	TamilFont     string `yaml:"tamil_font"`
	LatinFont     string `yaml:"latin_font"`
	TamilFontPath string `yaml:"tamil_font_path"`
	LatinFontPath string `yaml:"latin_font_path"`
}

// CacheConfig enables Redis for location lookups. An empty address keeps
// the cache in process.
type CacheConfig struct {
	RedisAddr     string        `yaml:"redis_addr"`
	RedisPassword string        `yaml:"redis_password"`
	RedisDB       int           `yaml:"redis_db"`
	TTL           time.Duration `yaml:"ttl"`
}

var (
	cfg  *Config
	once sync.Once
)

func GetConfig() *Config {
	once.Do(func() {
		cfg = loadConfig()
	})
	return cfg
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8080",
			Mode: "debug",
		},
		Database: DatabaseConfig{
			Type: "sqlite",
			DSN:  "./data/pathiram.db",
		},
		Data: DataConfig{
			Dir: "./data",
		},
		Export: ExportConfig{
			TamilFont: "Latha",
			LatinFont: "Times New Roman",
		},
		Cache: CacheConfig{
			TTL: time.Hour,
		},
	}
}

func loadConfig() *Config {
	config := defaults()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	data, err := os.ReadFile(configPath)
	if err == nil {
		yaml.Unmarshal(data, config)
	}

	// Environment overrides the file.
	if dbType := os.Getenv("DB_TYPE"); dbType != "" {
		config.Database.Type = dbType
	}
	if dbDSN := os.Getenv("DB_DSN"); dbDSN != "" {
		config.Database.DSN = dbDSN
	}
	if dataDir := os.Getenv("DATA_DIR"); dataDir != "" {
		config.Data.Dir = dataDir
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		config.Server.Port = port
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		config.Cache.RedisAddr = addr
	}
	if path := os.Getenv("TAMIL_FONT_PATH"); path != "" {
		config.Export.TamilFontPath = path
	}
	if path := os.Getenv("LATIN_FONT_PATH"); path != "" {
		config.Export.LatinFontPath = path
	}

	// Fonts shipped in the data directory are picked up without configuration.
	if config.Export.TamilFontPath == "" {
		config.Export.TamilFontPath = filepath.Join(config.Data.Dir, "fonts", "tamil.ttf")
	}
	if config.Export.LatinFontPath == "" {
		config.Export.LatinFontPath = filepath.Join(config.Data.Dir, "fonts", "latin.ttf")
	}

	return config
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func UpdateConfig(newCfg *Config) {
	cfg = newCfg
}
