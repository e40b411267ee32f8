package resource

import (
	"errors"
	"log"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"
)

var (
	properties = viper.New()
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)
)

// defaults apply when the properties file is absent or omits a key
var defaults = map[string]any{
	"app.name":                            "weather-app",
	"app.server.port":                     "8080",
	"app.server.context-path":             "/weather-app",
	"weather.api.base-url":                "https://api.openweathermap.org/data/2.5",
	"weather.api.key":                     "",
	"weather.api.connection-timeout":      "10s",
	"weather.api.read-timeout":            "30s",
	"weather.api.log-bodies":              false,
	"weather.forecast.follow-unit":        false,
	"weather.recent-searches.max-size":    0,
	"weather.rate-limit.requests-per-sec": 0.0,
	"weather.rate-limit.burst":            1,
	"weather.rate-limit.redis.enabled":    false,
	"weather.rate-limit.redis.host":       "localhost",
	"weather.rate-limit.redis.port":       6379,
	"weather.rate-limit.redis.password":   "",
	"weather.rate-limit.redis.database":   0,
	"weather.rate-limit.redis.per-minute": 60,
}

// init loads application properties from YAML
func init() {
	value, ok := os.LookupEnv("PROPERTIES_FILE_PATH")
	if !ok {
		value = "configs/application.yml"
	}
	Init(value)
}

// Init (re)loads properties from the given file. A missing file keeps the defaults.
func Init(filepath string) {
	properties = viper.New()
	for key, value := range defaults {
		properties.SetDefault(key, value)
	}

	properties.SetConfigFile(filepath)
	properties.SetConfigType("yml")

	if err := properties.ReadInConfig(); err != nil {
		var pathErr *os.PathError
		if errors.As(err, &pathErr) || errors.As(err, new(viper.ConfigFileNotFoundError)) {
			log.Printf("Properties file '%s' not found, using defaults", filepath)
			return
		}
		log.Fatalf("Fail to read properties: %v", err)
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", properties.AllSettings(), resolved)

	for key, value := range resolved {
		properties.Set(key, value)
	}
}

// parsePropertiesMap reads recursively the YAML file
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			if envPattern.MatchString(v) {
				result[fullKey] = resolveEnvVariable(v)
			}
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		}
	}
}

// resolveEnvVariable replaces a ${NAME:default} placeholder with the environment value or its default
func resolveEnvVariable(value string) string {
	matches := envPattern.FindStringSubmatch(value)
	if len(matches) == 0 {
		return value
	}

	envName := matches[1]
	if envValue, exists := os.LookupEnv(envName); exists {
		return envValue
	}
	if len(matches) > 2 {
		return matches[2]
	}
	return ""
}

// Set overrides a property at runtime.
func Set(key string, value any) {
	properties.Set(key, value)
}

func Get(key string) any {
	return properties.Get(key)
}

func GetString(key string) string {
	return properties.GetString(key)
}

func GetBool(key string) bool {
	return properties.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return properties.GetDuration(key)
}

func GetInt(key string) int {
	return properties.GetInt(key)
}

func GetFloat64(key string) float64 {
	return properties.GetFloat64(key)
}

func GetStringSlice(key string) []string {
	return properties.GetStringSlice(key)
}
