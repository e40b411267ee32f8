package msg

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetMessage(t *testing.T) {
	tests := []struct {
		name string
		key  string
		args []interface{}
		want string
	}{
		{"condition", "weather.condition", []interface{}{"Rain", "Light rain"}, "Condition: Rain (Light rain)"},
		{"integer", "weather.temperature", []interface{}{15, "Celsius"}, "Temperature: 15°Celsius"},
		{"shortest float", "weather.wind-speed", []interface{}{3.1, "m/s"}, "Wind Speed: 3.1 m/s"},
		{"whole float", "weather.humidity", []interface{}{float64(80)}, "Humidity: 80%"},
		{"no args", "weather.not-found", nil, "City not found or an error occurred."},
		{"nil arg", "weather.local-time", []interface{}{nil}, "Local Time: "},
		{"unknown key", "weather.nope", nil, "Message not found: weather.nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetMessage(tt.key, tt.args...); got != tt.want {
				t.Errorf("GetMessage(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestGetMessageDoesNotReexpandArguments(t *testing.T) {
	got := GetMessage("weather.condition", "{1}", "Clear sky")
	if want := "Condition: {1} (Clear sky)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestInitOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yml")
	content := "weather:\n  not-found: \"Nothing here.\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write messages: %v", err)
	}

	original := messages["weather.not-found"]
	t.Cleanup(func() { messages["weather.not-found"] = original })

	Init(path)

	if got := GetMessage("weather.not-found"); got != "Nothing here." {
		t.Errorf("overlay not applied, got %q", got)
	}
	if got := GetMessage("weather.humidity", 50); got != "Humidity: 50%" {
		t.Errorf("embedded message lost after overlay, got %q", got)
	}
}

func TestShippedOverridesKeepEmbeddedCatalog(t *testing.T) {
	before := make(map[string]string, len(messages))
	for k, v := range messages {
		before[k] = v
	}

	Init(filepath.Join("..", "..", "configs", "messages.yml"))

	if len(messages) != len(before) {
		t.Errorf("catalog size changed from %d to %d", len(before), len(messages))
	}
	for k, v := range before {
		if messages[k] != v {
			t.Errorf("%s changed from %q to %q", k, v, messages[k])
		}
	}
}
