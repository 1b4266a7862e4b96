package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port             string `envconfig:"PORT" default:"3001"`
	MongoURI         string `envconfig:"MONGODB_URI" default:""`
	MongoDB          string `envconfig:"MONGODB_DB" default:"cafe"`
	MenuCollection   string `envconfig:"MONGODB_MENU_COLLECTION" default:"menuitems"`
	JWTSecret        string `envconfig:"JWT_SECRET" default:"fallback-secret"`
	KafkaBrokers     string `envconfig:"KAFKA_BROKERS" default:""`
	OrderEventsTopic string `envconfig:"ORDER_EVENTS_TOPIC" default:"order-events"`
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
