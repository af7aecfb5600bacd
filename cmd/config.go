package main

import (
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	envVarPrefix = "WFD"
	appName      = "wfd"

	storageFile = "file"
	storageS3   = "s3"
)

// Config is loaded from defaults, then an optional YAML file, then the environment.
type Config struct {
	PageURL        string        `envconfig:"PAGE_URL"        yaml:"pageURL"`
	Extension      string        `envconfig:"EXTENSION"       yaml:"extension"`
	DestinationDir string        `envconfig:"DESTINATION_DIR" yaml:"destinationDir"`
	PoolSize       uint64        `envconfig:"POOL_SIZE"       yaml:"poolSize"`
	HTTPTimeout    time.Duration `envconfig:"HTTP_TIMEOUT"    yaml:"httpTimeout"`
	SameHostOnly   bool          `envconfig:"SAME_HOST_ONLY"  yaml:"sameHostOnly"`
	Storage        string        `envconfig:"STORAGE"         yaml:"storage"`
	S3Bucket       string        `envconfig:"S3_BUCKET"       yaml:"s3Bucket"`
	S3Region       string        `envconfig:"S3_REGION"       yaml:"s3Region"`
}

func DefaultConfig() Config {
	return Config{
		Extension:      "pdf",
		DestinationDir: ".",
		Storage:        storageFile,
	}
}

// ConfigFile is $WFD_CONFIG_FILE, or ~/.config/wfd.yaml.
func ConfigFile() string {
	if configFile := os.Getenv(envVarPrefix + "_CONFIG_FILE"); configFile != "" {
		return configFile
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName+".yaml")
}

// LoadConfig reads configFile if it exists and applies environment overrides.
func LoadConfig(configFile string) (Config, error) {
	c := DefaultConfig()

	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil && !os.IsNotExist(err) {
			return c, errors.Wrap(err, "reading config file")
		}
		if err == nil {
			if err := yaml.UnmarshalStrict(data, &c); err != nil {
				return c, errors.Wrap(err, "unmarshaling config file")
			}
		}
	}

	if err := envconfig.Process(envVarPrefix, &c); err != nil {
		return c, errors.Wrap(err, "parsing environment variables")
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.PageURL == "" {
		return errors.New("missing required config: pageURL")
	}
	if c.Extension == "" {
		return errors.New("missing required config: extension")
	}
	if c.PoolSize > math.MaxInt32 {
		return errors.Errorf("poolSize %d is too large, use 0 for unlimited", c.PoolSize)
	}

	switch c.Storage {
	case storageFile:
	case storageS3:
		if c.S3Bucket == "" {
			return errors.New("missing required config for s3 storage: s3Bucket")
		}
	default:
		return errors.Errorf("unknown storage %q, expected %q or %q", c.Storage, storageFile, storageS3)
	}
	return nil
}
