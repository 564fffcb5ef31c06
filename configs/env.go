package configs

import (
	"github.com/spf13/viper"

	"todo-api/pkg/msg"
	"todo-api/pkg/resource"
)

// EnvConfig holds the bootstrap settings that must be known before the properties file is read
type EnvConfig struct {
	ApplicationName    string
	PropertiesFilePath string
	MessagesFilePath   string
}

func Load() *EnvConfig {
	env := viper.New()
	env.AutomaticEnv()

	return &EnvConfig{
		ApplicationName:    getStringOrDefault(env, "APPLICATION_NAME", "todo-api"),
		PropertiesFilePath: getStringOrDefault(env, "PROPERTIES_FILE_PATH", resource.DefaultPropertiesPath),
		MessagesFilePath:   getStringOrDefault(env, "MESSAGES_FILE_PATH", msg.DefaultMessagesPath),
	}
}

func getStringOrDefault(env *viper.Viper, key, defaultValue string) string {
	value := env.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
