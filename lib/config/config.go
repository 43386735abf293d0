package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

var (
	ErrNoWikiFile = errors.New("wiki file is required")
	ErrNoSaveDir  = errors.New("save dir is required")
)

// Config holds the dataset build settings. Command line flags override it.
type Config struct {
	WikiFile string `yaml:"wiki_file" env:"WSD_WIKI_FILE"`
	SaveDir  string `yaml:"save_dir"  env:"WSD_SAVE_DIR"`
	Language string `yaml:"language"  env:"WSD_LANGUAGE" env-default:"English"`

	Database        string `yaml:"database"         env:"WSD_DATABASE"`
	MongoURI        string `yaml:"mongo_uri"        env:"WSD_MONGO_URI"`
	MongoDatabase   string `yaml:"mongo_database"   env:"WSD_MONGO_DATABASE"   env-default:"wiktionary"`
	MongoCollection string `yaml:"mongo_collection" env:"WSD_MONGO_COLLECTION" env-default:"wsd"`

	LogFile  string `yaml:"log_file" env:"WSD_LOG_FILE"`
	Verbose  bool   `yaml:"verbose"  env:"WSD_VERBOSE"`
	Progress bool   `yaml:"progress" env:"WSD_PROGRESS"`
	Verify   bool   `yaml:"verify"   env:"WSD_VERIFY"`
}

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags). An empty path reads
// the environment only.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.WikiFile == "" {
		return ErrNoWikiFile
	}
	if c.SaveDir == "" {
		return ErrNoSaveDir
	}
	return nil
}
