package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/foldtactoe/internal/entity"
)

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

type Config struct {
	LogLevel string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Storage  Storage       `yaml:"storage"`
	Redis    Redis         `yaml:"redis"`
	Chaos    Chaos         `yaml:"chaos"`
	Replay   []entity.Move `yaml:"replay"`
}

type Storage struct {
	Driver string        `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory"`
	TTL    time.Duration `yaml:"ttl" env:"STORAGE_TTL" env-default:"1h"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	DB   int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

// Chaos seeds the shuffler used by the chaos fold. Zero means a fresh random seed per run.
type Chaos struct {
	Seed int64 `yaml:"seed" env:"CHAOS_SEED" env-default:"0"`
}

// Load reads the yaml file at path, then applies environment overrides and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
