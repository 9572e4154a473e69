package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Configuration struct {
	Storage  StorageConfig  `yaml:"storage"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Tracing  TracingConfig  `yaml:"tracing"`
}

type StorageConfig struct {
	// Driver is either "local" or "minio".
	Driver string      `yaml:"driver"`
	Path   string      `yaml:"path"`
	MinIO  MinIOConfig `yaml:"minio"`
}

type MinIOConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"useSSL"`
}

type ServerConfig struct {
	Port          int           `yaml:"port"`
	Concurrency   int           `yaml:"concurrency"`
	RequestConfig RequestConfig `yaml:"request"`
	LogConfig     LogConfig     `yaml:"log"`
}

type RequestConfig struct {
	// SizeLimit is the body limit in megabytes.
	SizeLimit int `yaml:"sizeLimit"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	Output  string `yaml:"output"`
	LogPath string `yaml:"logPath"`
}

type DatabaseConfig struct {
	// Driver is either "postgres" or "sqlite". Postgres reads its
	// connection settings from the DB_* environment variables.
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

type TracingConfig struct {
	Endpoint    string `yaml:"endpoint"`
	ServiceName string `yaml:"serviceName"`
	Insecure    bool   `yaml:"insecure"`
}

// ConfigPath returns the configuration file location, SHELF_CONFIG or shelf.yaml.
func ConfigPath() string {
	if path := os.Getenv("SHELF_CONFIG"); path != "" {
		return path
	}
	return "shelf.yaml"
}

func LoadConfiguration(configurationFilePath string) (*Configuration, error) {
	data, err := os.ReadFile(configurationFilePath)
	if err != nil {
		return nil, err
	}
	return ParseConfiguration(data)
}

// ParseConfiguration expands ${VAR} references before decoding and fills
// unset values with defaults.
func ParseConfiguration(data []byte) (*Configuration, error) {
	var config Configuration
	err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &config)
	if err != nil {
		return nil, err
	}
	config.applyDefaults()
	return &config, nil
}

func (c *Configuration) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Concurrency == 0 {
		c.Server.Concurrency = 256
	}
	if c.Server.RequestConfig.SizeLimit == 0 {
		c.Server.RequestConfig.SizeLimit = 4
	}
	if c.Server.LogConfig.Level == "" {
		c.Server.LogConfig.Level = "info"
	}
	if c.Server.LogConfig.Format == "" {
		c.Server.LogConfig.Format = "text"
	}
	if c.Server.LogConfig.Output == "" {
		c.Server.LogConfig.Output = "stdout"
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
	if c.Database.Driver == "sqlite" && c.Database.Path == "" {
		c.Database.Path = "shelf.db"
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = "local"
	}
	if c.Storage.Path == "" {
		c.Storage.Path = "storage"
	}
	if c.Tracing.ServiceName == "" {
		c.Tracing.ServiceName = "shelf"
	}
}
