package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName string
	WeatherAPIKey   string
}

var Env *EnvConfig

func init() {
	Env = Load(envFilePath())
}

// Load reads an optional .env file into the process environment, then maps the
// variables the application reads directly. Variables already set win over the file.
func Load(envFile string) *EnvConfig {
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		log.Printf("Fail to read env file '%s': %v", envFile, err)
	}

	viper.AutomaticEnv()

	return &EnvConfig{
		ApplicationName: getStringOrDefault("APPLICATION_NAME", "weather-app"),
		WeatherAPIKey:   viper.GetString("WEATHER_API_KEY"),
	}
}

func envFilePath() string {
	if value, ok := os.LookupEnv("ENV_FILE_PATH"); ok {
		return value
	}
	return ".env"
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
