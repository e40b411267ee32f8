package configs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadReadsEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte("WEATHER_API_KEY=from-file\nAPPLICATION_NAME=weather-test\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	os.Unsetenv("WEATHER_API_KEY")
	os.Unsetenv("APPLICATION_NAME")
	t.Cleanup(func() {
		os.Unsetenv("WEATHER_API_KEY")
		os.Unsetenv("APPLICATION_NAME")
	})

	env := Load(envFile)
	if env.WeatherAPIKey != "from-file" {
		t.Errorf("WeatherAPIKey = %q", env.WeatherAPIKey)
	}
	if env.ApplicationName != "weather-test" {
		t.Errorf("ApplicationName = %q", env.ApplicationName)
	}
}

func TestLoadKeepsExistingVariables(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte("WEATHER_API_KEY=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("WEATHER_API_KEY", "from-env")

	if env := Load(envFile); env.WeatherAPIKey != "from-env" {
		t.Errorf("WeatherAPIKey = %q, want from-env", env.WeatherAPIKey)
	}
}

func TestLoadWithoutEnvFile(t *testing.T) {
	t.Setenv("APPLICATION_NAME", "")
	if env := Load(filepath.Join(t.TempDir(), "missing.env")); env.ApplicationName != "weather-app" {
		t.Errorf("ApplicationName = %q, want weather-app", env.ApplicationName)
	}
}
