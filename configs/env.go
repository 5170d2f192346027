package configs

import (
	"bytes"
	_ "embed"
	"log"
	"os"

	"go-shortener/pkg/msg"
	"go-shortener/pkg/resource"

	"github.com/spf13/viper"
)

//go:embed application.yml
var applicationYAML []byte

//go:embed messages.yml
var messagesYAML []byte

type EnvConfig struct {
	ApplicationName string
	ContextPath     string
}

var Env *EnvConfig

func init() {
	viper.AutomaticEnv()

	if err := loadProperties(); err != nil {
		log.Fatalf("Fail to read properties: %v", err)
	}
	if err := loadMessages(); err != nil {
		log.Fatalf("Fail to read messages: %v", err)
	}

	Env = &EnvConfig{
		ApplicationName: resource.GetStringOrDefault("app.name", "go-shortener"),
		ContextPath:     resource.GetStringOrDefault("app.server.context-path", "/go-shortener"),
	}
}

func loadProperties() error {
	if path, ok := os.LookupEnv("PROPERTIES_FILE_PATH"); ok {
		return resource.Init(path)
	}
	return resource.Load(bytes.NewReader(applicationYAML))
}

func loadMessages() error {
	if err := msg.Load(bytes.NewReader(messagesYAML)); err != nil {
		return err
	}
	if path, ok := os.LookupEnv("MESSAGES_FILE_PATH"); ok {
		return msg.Init(path)
	}
	return nil
}
