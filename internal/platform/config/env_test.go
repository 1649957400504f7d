package config

import "testing"

type envTestConfig struct {
	DBPath string `env:"CONFIG_TEST_DB_PATH" envDefault:"registry.db"`
	Port   int    `env:"CONFIG_TEST_PORT" envDefault:"8080"`
}

func TestParseEnvUsesDefaults(t *testing.T) {
	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("ParseEnv() error = %v", err)
	}
	if cfg.DBPath != "registry.db" {
		t.Fatalf("DBPath = %q, want %q", cfg.DBPath, "registry.db")
	}
	if cfg.Port != 8080 {
		t.Fatalf("Port = %d, want %d", cfg.Port, 8080)
	}
}

func TestParseEnvReadsEnvironment(t *testing.T) {
	t.Setenv("CONFIG_TEST_DB_PATH", "/tmp/other.db")
	t.Setenv("CONFIG_TEST_PORT", "9001")

	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("ParseEnv() error = %v", err)
	}
	if cfg.DBPath != "/tmp/other.db" {
		t.Fatalf("DBPath = %q, want %q", cfg.DBPath, "/tmp/other.db")
	}
	if cfg.Port != 9001 {
		t.Fatalf("Port = %d, want %d", cfg.Port, 9001)
	}
}

func TestParseEnvRejectsMalformedValue(t *testing.T) {
	t.Setenv("CONFIG_TEST_PORT", "not-a-port")

	var cfg envTestConfig
	if err := ParseEnv(&cfg); err == nil {
		t.Fatal("expected parse error for malformed port")
	}
}
