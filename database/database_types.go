package database

import (
	"database/sql"
	"errors"
	"sync"
)

// Supported drivers
const (
	DBSQLite3    = "sqlite3"
	DBPostgreSQL = "postgres"
)

var (
	// ErrInvalidDriver is returned when a driver other than sqlite3 or postgres is configured
	ErrInvalidDriver = errors.New("invalid database driver")
	// ErrNoDatabaseProvided is returned when the database name or path is empty
	ErrNoDatabaseProvided = errors.New("no database provided")
	// ErrDatabaseDisabled is returned when connecting with a disabled config
	ErrDatabaseDisabled = errors.New("database support is disabled")
	errNilConfig        = errors.New("received nil config")
	errNilInstance      = errors.New("database instance is nil")
)

// Config holds the database connection settings
type Config struct {
	Enabled           bool   `json:"enabled" mapstructure:"enabled"`
	Verbose           bool   `json:"verbose" mapstructure:"verbose"`
	Driver            string `json:"driver" mapstructure:"driver"`
	ConnectionDetails `json:"connectionDetails" mapstructure:"connection-details"`
}

// ConnectionDetails holds DSN information. For sqlite3 Database is the
// path to the database file
type ConnectionDetails struct {
	Host     string `json:"host" mapstructure:"host"`
	Port     uint16 `json:"port" mapstructure:"port"`
	Username string `json:"username" mapstructure:"username"`
	Password string `json:"password" mapstructure:"password"`
	Database string `json:"database" mapstructure:"database"`
	SSLMode  string `json:"sslmode" mapstructure:"sslmode"`
}

// Instance holds an open connection and the config it was made with
type Instance struct {
	SQL    *sql.DB
	config Config
	m      sync.RWMutex
}
