package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort           int    `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel           string `env:"LOG_LEVEL" envDefault:"info"`
	PostgresDSN        string `env:"POSTGRES_DSN,required"`
	PostgresMaxConns   int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
	IdentityServiceURL string `env:"IDENTITY_SERVICE_URL,required"`
	// How the assignee and creator conditions of a gestionnaire's task
	// listing are joined: "or" or "and".
	TacheTeamCombinator         string        `env:"TACHE_TEAM_COMBINATOR" envDefault:"or"`
	ImportMaxRows               int           `env:"IMPORT_MAX_ROWS" envDefault:"5000"`
	JobRefreshObjectifsInterval time.Duration `env:"JOB_REFRESH_OBJECTIFS_INTERVAL" envDefault:"15m"`
	Kafka                       Kafka
}

type Kafka struct {
	Brokers         []string `env:"KAFKA_BROKERS"`
	ConsumerID      string   `env:"KAFKA_CONSUMER_ID" envDefault:"crm"`
	ChangesTopic    string   `env:"KAFKA_CHANGES_TOPIC" envDefault:"crm.changes"`
	LeadIntakeTopic string   `env:"KAFKA_LEAD_INTAKE_TOPIC" envDefault:"crm.leads"`
}

// Enabled reports whether brokers are configured. Without them the service
// runs with a no-op producer and no consumer.
func (k Kafka) Enabled() bool {
	return len(k.Brokers) > 0
}

func New(envPath string) (Config, error) {
	var c Config

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	err = env.Parse(&c)
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
