package config

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func initTemp(t *testing.T) string {
	t.Helper()
	t.Cleanup(func() {
		globalConfig = nil
		configPath = ""
		outputFormat = ""
	})
	path := filepath.Join(t.TempDir(), "nested", DefaultFileName)
	if err := Initialize(path); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return path
}

func readFile(t *testing.T, path string) Config {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestInitializeCreatesDefaults(t *testing.T) {
	path := initTemp(t)

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}
	cfg := Get()
	if cfg.Server.URL != DefaultAPIURL || cfg.Session.Language != DefaultLanguage || cfg.List.PageSize != DefaultPageSize {
		t.Errorf("defaults = %+v", cfg)
	}
	if Path() != path {
		t.Errorf("Path() = %q", Path())
	}
	if GetOutputFormat() != "table" {
		t.Errorf("output format = %q", GetOutputFormat())
	}
}

func TestInitializeReadsFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	content := "server:\n  url: http://file\nlist:\n  page_size: 25\nsession:\n  language: es\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SOLEY_API_URL", "http://env")
	t.Cleanup(func() { globalConfig = nil; configPath = "" })

	if err := Initialize(path); err != nil {
		t.Fatal(err)
	}
	cfg := Get()
	if cfg.Server.URL != "http://env" {
		t.Errorf("server.url = %q, want env override", cfg.Server.URL)
	}
	if cfg.PageSize() != 25 || cfg.Session.Language != "es" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestSessionLifecycle(t *testing.T) {
	path := initTemp(t)

	id, err := EnsureDeviceID()
	if err != nil {
		t.Fatal(err)
	}
	if again, _ := EnsureDeviceID(); again != id {
		t.Errorf("device id changed: %q -> %q", id, again)
	}
	if err := SetLanguage("fr"); err != nil {
		t.Fatal(err)
	}
	if err := UpdateSession("tok", SessionUser{ID: "u1", Email: "a@b.co", Role: "superadmin"}); err != nil {
		t.Fatal(err)
	}

	saved := readFile(t, path)
	if saved.Session.AuthToken != "tok" || saved.Session.User.Email != "a@b.co" {
		t.Errorf("saved session = %+v", saved.Session)
	}

	if err := ClearSession(); err != nil {
		t.Fatal(err)
	}
	saved = readFile(t, path)
	if saved.Session.AuthToken != "" || saved.Session.User != (SessionUser{}) {
		t.Errorf("session not cleared: %+v", saved.Session)
	}
	if saved.Session.Language != "fr" || saved.Session.DeviceID != id {
		t.Errorf("logout dropped language or device id: %+v", saved.Session)
	}
}

func TestSessionRequiresInitialize(t *testing.T) {
	globalConfig = nil
	if err := UpdateSession("tok", SessionUser{}); err == nil {
		t.Error("expected error before Initialize")
	}
}

func TestNewDeviceID(t *testing.T) {
	id := NewDeviceID(time.UnixMilli(1700000000123))
	if !regexp.MustCompile(`^device_1700000000123_[0-9a-f]{9}$`).MatchString(id) {
		t.Errorf("id = %q", id)
	}
	if id == NewDeviceID(time.UnixMilli(1700000000123)) {
		t.Error("ids not unique")
	}
}

func TestDurationFallbacks(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Timeout: "nope"},
		List:   ListConfig{Debounce: "-1s", PageSize: 0},
	}
	if cfg.Timeout() != 30*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout())
	}
	if cfg.DebounceWindow() != 500*time.Millisecond {
		t.Errorf("DebounceWindow = %v", cfg.DebounceWindow())
	}
	if cfg.PageSize() != DefaultPageSize {
		t.Errorf("PageSize = %d", cfg.PageSize())
	}

	cfg.List.Debounce = "250ms"
	if cfg.DebounceWindow() != 250*time.Millisecond {
		t.Errorf("DebounceWindow = %v", cfg.DebounceWindow())
	}
}

func TestOutputFormatOverride(t *testing.T) {
	initTemp(t)
	SetOutputFormat("json")
	if GetOutputFormat() != "json" {
		t.Errorf("format = %q", GetOutputFormat())
	}
}
