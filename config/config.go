package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	Session SessionConfig
	Notify  NotifyConfig
	Kafka   KafkaConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	// Driver selects the storage backend: "postgres" or "memory".
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Enabled reports whether a Redis instance is configured; without one the
// session layer falls back to the in-process token store.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

type SessionConfig struct {
	Secret     string
	TTL        time.Duration
	CookieName string
	Secure     bool
}

type NotifyConfig struct {
	// WebhookURL receives the full appointment payload after each booking.
	// Empty means the webhook channel is disabled.
	WebhookURL string

	// SendGrid credentials for the educational email channel. An empty API
	// key disables the channel.
	SendGridAPIKey string
	FromEmail      string

	// Timeout bounds each fan-out dispatch so a slow endpoint cannot
	// accumulate unbounded pending work.
	Timeout time.Duration
}

type KafkaConfig struct {
	// Broker address for appointment-created events. Empty disables the
	// event channel.
	Broker string
	Topic  string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	// a missing .env is fine, env vars alone are enough
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	viper.SetDefault("APP_PORT", "5000")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("STORAGE_DRIVER", "postgres")
	viper.SetDefault("SESSION_COOKIE_NAME", "lume_session")
	viper.SetDefault("KAFKA_TOPIC", "appointment.created")

	sessionTTL, err := time.ParseDuration(viper.GetString("SESSION_TTL"))
	if err != nil {
		sessionTTL = 24 * time.Hour
	}

	notifyTimeout, err := time.ParseDuration(viper.GetString("NOTIFY_TIMEOUT"))
	if err != nil {
		notifyTimeout = 10 * time.Second
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Driver:   viper.GetString("STORAGE_DRIVER"),
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Session: SessionConfig{
			Secret:     viper.GetString("SESSION_SECRET"),
			TTL:        sessionTTL,
			CookieName: viper.GetString("SESSION_COOKIE_NAME"),
			Secure:     viper.GetString("APP_ENV") == "production",
		},
		Notify: NotifyConfig{
			WebhookURL:     viper.GetString("WEBHOOK_URL"),
			SendGridAPIKey: viper.GetString("SENDGRID_API_KEY"),
			FromEmail:      viper.GetString("SENDGRID_FROM_EMAIL"),
			Timeout:        notifyTimeout,
		},
		Kafka: KafkaConfig{
			Broker: viper.GetString("KAFKA_BROKER"),
			Topic:  viper.GetString("KAFKA_TOPIC"),
		},
	}

	return config, nil
}
