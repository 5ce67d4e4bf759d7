package core

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}

	if cfg.Logging.LogLevel != "info" {
		t.Errorf("Logging.LogLevel want = info, got = %s", cfg.Logging.LogLevel)
	}
	if cfg.Cipher.OutputEncoding != "hex" {
		t.Errorf("Cipher.OutputEncoding want = hex, got = %s", cfg.Cipher.OutputEncoding)
	}
	if cfg.Database.Engine != "sqlite" || cfg.Database.Filename != "vectors.db" {
		t.Errorf("Database want = sqlite/vectors.db, got = %s/%s", cfg.Database.Engine, cfg.Database.Filename)
	}
}

func TestLoadConfig_File(t *testing.T) {
	dir := writeConfig(t, `
logging:
  log_level: debug
cipher:
  key: "12345678"
  output_encoding: base64
database:
  engine: postgres
  port: 6543
`)

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}

	if cfg.Logging.LogLevel != "debug" {
		t.Errorf("Logging.LogLevel want = debug, got = %s", cfg.Logging.LogLevel)
	}
	if cfg.Cipher.Key != "12345678" {
		t.Errorf("Cipher.Key want = 12345678, got = %s", cfg.Cipher.Key)
	}
	if cfg.Cipher.OutputEncoding != "base64" {
		t.Errorf("Cipher.OutputEncoding want = base64, got = %s", cfg.Cipher.OutputEncoding)
	}
	if cfg.Database.Engine != "postgres" || cfg.Database.Port != 6543 {
		t.Errorf("Database want = postgres:6543, got = %s:%d", cfg.Database.Engine, cfg.Database.Port)
	}
}

func TestLoadConfig_EnvironmentOverride(t *testing.T) {
	dir := writeConfig(t, "cipher:\n  output_encoding: base64\n")
	t.Setenv("DES_CIPHER_OUTPUT_ENCODING", "hex")

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}
	if cfg.Cipher.OutputEncoding != "hex" {
		t.Errorf("Cipher.OutputEncoding want = hex, got = %s", cfg.Cipher.OutputEncoding)
	}
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	dir := writeConfig(t, "logging: [unterminated\n")
	if _, err := LoadConfig(dir); err == nil {
		t.Errorf("LoadConfig() expected an error for malformed yaml")
	}
}

func TestConfig_DatabaseURL(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Host = "localhost"
	cfg.Database.Port = 5432
	cfg.Database.Name = "testdb"
	cfg.Database.Username = "testuser"
	cfg.Database.Password = "testpassword"

	url := cfg.DatabaseURL()
	expected := "host=localhost port=5432 dbname=testdb user=testuser password=testpassword sslmode="
	if url != expected {
		t.Errorf("DatabaseURL() want = %s, got = %s", expected, url)
	}
}

func TestConfig_QualifiedPath(t *testing.T) {
	tests := []struct {
		name      string
		configDir string
		path      string
		want      string
	}{
		{"relative path", "/etc/des", "vectors.db", filepath.Join("/etc/des", "vectors.db")},
		{"absolute path", "/etc/des", "/var/lib/vectors.db", "/var/lib/vectors.db"},
		{"no config dir", "", "vectors.db", "vectors.db"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{configDir: tt.configDir}
			if got := cfg.QualifiedPath(tt.path); got != tt.want {
				t.Errorf("QualifiedPath() want = %s, got = %s", tt.want, got)
			}
		})
	}
}
