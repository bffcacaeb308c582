package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

type Config struct {
	ContentBaseURL            string        `koanf:"content_base_url"`
	DataDirectory             string        `koanf:"data_directory"`
	DatabaseBusyTimeout       time.Duration `koanf:"database_busy_timeout"`
	DatabaseConnectRetryCount int           `koanf:"database_connect_retry_count"`
	DatabaseConnectRetryDelay time.Duration `koanf:"database_connect_retry_delay"`
	DatabaseDebug             bool          `koanf:"database_debug"`
	DatabaseFilePath          string        `koanf:"database_file_path"`
	DatabaseMaxRetries        int           `koanf:"database_max_retries"`
	DownloadDelay             time.Duration `koanf:"download_delay"`
	Hostname                  string        `koanf:"-"`
	ServerHost                string        `koanf:"server_host"`
	ServerPort                int           `koanf:"server_port"`
	StorageQuotaBytes         int64         `koanf:"storage_quota_bytes"`
	WorkerProcesses           int           `koanf:"worker_processes"`
}

const configFileENV = "CONFIG_FILE"

// envKeys maps environment variable names to config keys. Only variables
// listed here are read; the rest of the environment is ignored.
var envKeys = map[string]string{
	"CONTENT_BASE_URL":             "content_base_url",
	"DATA_DIRECTORY":               "data_directory",
	"DATABASE_BUSY_TIMEOUT":        "database_busy_timeout",
	"DATABASE_CONNECT_RETRY_COUNT": "database_connect_retry_count",
	"DATABASE_CONNECT_RETRY_DELAY": "database_connect_retry_delay",
	"DATABASE_DEBUG":               "database_debug",
	"DATABASE_FILE_PATH":           "database_file_path",
	"DATABASE_MAX_RETRIES":         "database_max_retries",
	"DOWNLOAD_DELAY":               "download_delay",
	"SERVER_HOST":                  "server_host",
	"SERVER_PORT":                  "server_port",
	"STORAGE_QUOTA_BYTES":          "storage_quota_bytes",
	"WORKER_PROCESSES":             "worker_processes",
}

// New loads configuration in three layers: built-in defaults, an optional
// YAML file (CONFIG_FILE, falling back to ./lectern.yaml), and environment
// variables, with later layers winning.
func New() (*Config, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	cfg := &Config{
		ContentBaseURL:            "https://content.lectern.dev/bibles",
		DataDirectory:             "./tmp",
		DatabaseBusyTimeout:       5 * time.Second,
		DatabaseConnectRetryCount: 5,
		DatabaseConnectRetryDelay: 2 * time.Second,
		DatabaseMaxRetries:        3,
		DownloadDelay:             100 * time.Millisecond,
		Hostname:                  hostname,
		ServerHost:                "127.0.0.1",
		ServerPort:                6415,
		WorkerProcesses:           2,
	}

	k := koanf.New(".")

	path := os.Getenv(configFileENV)
	if path == "" {
		path = "./lectern.yaml"
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	err = k.Load(env.Provider("", ".", func(s string) string {
		return envKeys[s]
	}), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.WithStack(err)
	}

	if cfg.DatabaseFilePath == "" {
		cfg.DatabaseFilePath = filepath.Join(cfg.DataDirectory, "lectern.sqlite")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	missing := []string{}
	if cfg.DataDirectory == "" {
		missing = append(missing, "DATA_DIRECTORY (data_directory)")
	}
	if cfg.ContentBaseURL == "" {
		missing = append(missing, "CONTENT_BASE_URL (content_base_url)")
	}
	if len(missing) > 0 {
		return errors.Errorf("missing required config: %s", strings.Join(missing, ", "))
	}
	return nil
}
