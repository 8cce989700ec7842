package cmd

import "fmt"

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	KafkaHost                    string
	KafkaOrderNotificationsTopic string

	SweepSchedule         string
	LowStockSchedule      string
	PrepaymentGracePeriod string
	ConsumptionMaterialID string

	YieldProductCoefficients string
	YieldMaterialDefectRates string
}

const (
	defaultHTTPPort              = "8080"
	defaultSweepSchedule         = "0 */5 * * * *"
	defaultLowStockSchedule      = "0 0 * * * *"
	defaultPrepaymentGracePeriod = "72h"
	defaultNotificationsTopic    = "order.notifications"
)

// WithDefaults fills unset optional keys.
func (c Config) WithDefaults() Config {
	c.HTTPPort = orDefault(c.HTTPPort, defaultHTTPPort)
	c.SweepSchedule = orDefault(c.SweepSchedule, defaultSweepSchedule)
	c.LowStockSchedule = orDefault(c.LowStockSchedule, defaultLowStockSchedule)
	c.PrepaymentGracePeriod = orDefault(c.PrepaymentGracePeriod, defaultPrepaymentGracePeriod)
	c.KafkaOrderNotificationsTopic = orDefault(c.KafkaOrderNotificationsTopic, defaultNotificationsTopic)
	c.DBSslMode = orDefault(c.DBSslMode, "disable")
	return c
}

// UsesPostgres reports whether a database is configured. Without one the
// service runs on the in-memory store.
func (c Config) UsesPostgres() bool {
	return c.DBHost != ""
}

// DSN builds the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
