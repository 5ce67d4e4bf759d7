package core

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config contains all of the configuration options available to the des
// command and its supporting tools.
type Config struct {
	Logging struct {
		// Full path to file to which logs will be written. Blank will write to stderr.
		LogFilePath string `mapstructure:"log_file_path"`
		// Minimum level of a log required to be written. Options: debug, info, warn, error
		LogLevel string `mapstructure:"log_level"`
	} `mapstructure:"logging"`

	Cipher struct {
		// Key used when none is passed on the command line. Must be 8 ASCII characters.
		Key string `mapstructure:"key"`
		// Encoding of ciphertext printed by encrypt and read by decrypt. Options: hex, base64
		OutputEncoding string `mapstructure:"output_encoding"`
	} `mapstructure:"cipher"`

	Database struct {
		// Database engine backing the known-answer vector registry. Options: sqlite, postgres
		Engine string `mapstructure:"engine"`
		// Name of the SQLite file, relative to the config directory.
		Filename string `mapstructure:"filename"`
		// Hostname of the Postgres database instance.
		Host string `mapstructure:"host"`
		// Port on host on which the Postgres instance is accepting connections.
		Port int `mapstructure:"port"`
		// Name of the database in Postgres.
		Name string `mapstructure:"name"`
		// Username and password of a user with full RW privileges to name.
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
		// Set to verify-full if the Postgres instance supports SSL.
		SSLMode string `mapstructure:"sslmode"`
	} `mapstructure:"database"`

	// Directory the config was loaded from; relative paths resolve against it.
	configDir string
}

const envVarPrefix = "DES"

var defaults = map[string]interface{}{
	"logging.log_level":      "info",
	"logging.log_file_path":  "",
	"cipher.key":             "",
	"cipher.output_encoding": "hex",
	"database.engine":        "sqlite",
	"database.filename":      "vectors.db",
	"database.host":          "localhost",
	"database.port":          5432,
	"database.name":          "des",
	"database.username":      "",
	"database.password":      "",
	"database.sslmode":       "disable",
}

// LoadConfig reads config.yaml from configPath (if present) on top of the
// defaults. Any option can be overridden through the environment, e.g.
// cipher.output_encoding through DES_CIPHER_OUTPUT_ENCODING.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix(envVarPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// This allows us to set nested yaml config options through environment
	// variables. For example, database.host can be set using: <envVarPrefix>_DATABASE_HOST
	for _, k := range v.AllKeys() {
		envVar := strings.ReplaceAll(strings.ToUpper(k), ".", "_")
		if err := v.BindEnv(k, envVarPrefix+"_"+envVar); err != nil {
			return nil, fmt.Errorf("error binding %s to %s: %w", k, envVarPrefix+"_"+envVar, err)
		}
	}

	config := &Config{configDir: configPath}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config object: %w", err)
	}
	return config, nil
}

const databaseURITemplate = "host=%s port=%d dbname=%s user=%s password=%s sslmode=%s"

// DatabaseURL returns a Postgres connection string generated from the provided config values.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf(
		databaseURITemplate,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.Username,
		c.Database.Password,
		c.Database.SSLMode,
	)
}

// QualifiedPath returns path joined to the config directory unless it is
// already absolute.
func (c *Config) QualifiedPath(path string) string {
	if filepath.IsAbs(path) || c.configDir == "" {
		return path
	}
	return filepath.Join(c.configDir, path)
}
