package cmd

import (
	"fmt"
	"time"
)

// Config holds the runtime configuration loaded from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// PartnerBaseURL is the delivery partner's API root.
	PartnerBaseURL string

	// ConfirmationWindow bounds how long a new order may wait for a driver.
	ConfirmationWindow time.Duration

	// DriverPollInterval is the cadence of driver availability checks within
	// the confirmation window.
	DriverPollInterval time.Duration

	// StrictStatusFlow, when set, restricts manual status updates to strictly
	// forward transitions along the workflow path.
	StrictStatusFlow bool
}

// DSN renders the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
