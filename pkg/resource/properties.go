package resource

import (
	"io"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"
)

var envPattern = regexp.MustCompile(`^\$\{([^:}]+)(?::([^}]*))?}$`)

// Init loads application properties from a YAML file.
func Init(filepath string) error {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}
	resolveProperties(v)
	return nil
}

// Load loads application properties from YAML content.
func Load(content io.Reader) error {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(content); err != nil {
		return err
	}
	resolveProperties(v)
	return nil
}

// resolveProperties copies every property of v into the global viper, replacing ${ENV:default} values
func resolveProperties(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		value := v.Get(key)
		if raw, ok := value.(string); ok {
			value = resolveEnvVariable(raw)
		}
		viper.Set(key, value)
	}
}

// resolveEnvVariable resolves a ${ENV:default} pattern; other values are returned unchanged
func resolveEnvVariable(value string) string {
	matches := envPattern.FindStringSubmatch(value)
	if matches == nil {
		return value
	}

	if envValue, exists := os.LookupEnv(matches[1]); exists {
		return envValue
	}
	return matches[2]
}

func Get(key string) any {
	return viper.Get(key)
}

func GetString(key string) string {
	return viper.GetString(key)
}

// GetStringOrDefault returns the property or defaultValue when it is empty.
func GetStringOrDefault(key, defaultValue string) string {
	if value := viper.GetString(key); value != "" {
		return value
	}
	return defaultValue
}

func GetBool(key string) bool {
	return viper.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

func GetInt(key string) int {
	return viper.GetInt(key)
}
