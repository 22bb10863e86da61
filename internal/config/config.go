package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type MQConfig struct {
	URL string `yaml:"url"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type AutosaveConfig struct {
	// DelayMS is the debounce window: edits within it collapse into one save.
	DelayMS int `yaml:"delay_ms"`
}

type ExportConfig struct {
	// BaseURL is where the chart render surface is reachable for the
	// headless browser, e.g. "http://127.0.0.1:8080".
	BaseURL string `yaml:"base_url"`
	// MinColumns pads short schedules to a consistent chart width.
	MinColumns int `yaml:"min_columns"`
	// CacheTTLSec bounds how long pre-rendered charts live in Redis.
	CacheTTLSec int `yaml:"cache_ttl_sec"`
}

type Config struct {
	DB       DBConfig       `yaml:"db"`
	Redis    RedisConfig    `yaml:"redis"`
	MQ       MQConfig       `yaml:"mq"`
	JWT      JWTConfig      `yaml:"jwt"`
	Server   ServerConfig   `yaml:"server"`
	Autosave AutosaveConfig `yaml:"autosave"`
	Export   ExportConfig   `yaml:"export"`
}

func Load() *Config {
	f, err := os.Open("config.yaml")
	if err != nil {
		log.Fatalf("failed to open config.yaml: %v", err)
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		log.Fatalf("failed to decode config.yaml: %v", err)
	}

	overrideFromEnv(&cfg)
	applyDefaults(&cfg)

	return &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Autosave.DelayMS <= 0 {
		cfg.Autosave.DelayMS = 500
	}
	if cfg.Export.MinColumns <= 0 {
		cfg.Export.MinColumns = 56
	}
	if cfg.Export.CacheTTLSec <= 0 {
		cfg.Export.CacheTTLSec = 3600
	}
	if cfg.Export.BaseURL == "" {
		cfg.Export.BaseURL = "http://127.0.0.1" + cfg.Server.Port
	}
}

func overrideFromEnv(cfg *Config) {
	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.DB.Host = host
	}
	if port := os.Getenv("DB_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.DB.Port = p
		}
	}
	if user := os.Getenv("DB_USER"); user != "" {
		cfg.DB.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		cfg.DB.Password = password
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		cfg.DB.Name = name
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		cfg.Redis.Password = password
	}

	if url := os.Getenv("MQ_URL"); url != "" {
		cfg.MQ.URL = url
	}

	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWT.Secret = secret
	}

	if port := os.Getenv("SERVER_PORT"); port != "" {
		cfg.Server.Port = port
	}

	if base := os.Getenv("EXPORT_BASE_URL"); base != "" {
		cfg.Export.BaseURL = base
	}
}
