package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/thrasher-corp/eventbacktester/log"
)

// Validate checks the config can be used to open a connection
func (c *Config) Validate() error {
	if c == nil {
		return errNilConfig
	}
	if !c.Enabled {
		return ErrDatabaseDisabled
	}
	switch c.Driver {
	case DBSQLite3, DBPostgreSQL:
	default:
		return fmt.Errorf("%w '%v'", ErrInvalidDriver, c.Driver)
	}
	if c.Database == "" {
		return ErrNoDatabaseProvided
	}
	return nil
}

// Connect opens a connection using the configured driver
func Connect(cfg *Config) (*Instance, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var (
		i   *Instance
		err error
	)
	switch cfg.Driver {
	case DBSQLite3:
		i, err = connectSQLite(cfg)
	case DBPostgreSQL:
		i, err = connectPostgres(cfg)
	}
	if err != nil {
		return nil, err
	}
	if cfg.Verbose {
		log.Debugf(log.Database, "connected to %v database %v", cfg.Driver, cfg.Database)
	}
	return i, nil
}

func connectSQLite(cfg *Config) (*Instance, error) {
	con, err := sql.Open(DBSQLite3, cfg.Database)
	if err != nil {
		return nil, err
	}
	con.SetMaxOpenConns(1)
	return &Instance{SQL: con, config: *cfg}, nil
}

func connectPostgres(cfg *Config) (*Instance, error) {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.Username,
		cfg.Password,
		cfg.Database,
		sslMode)
	con, err := sql.Open(DBPostgreSQL, dsn)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = con.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("%v %w", cfg.Host, err)
	}
	con.SetMaxOpenConns(2)
	con.SetMaxIdleConns(1)
	con.SetConnMaxLifetime(time.Hour)
	return &Instance{SQL: con, config: *cfg}, nil
}

// Ping verifies the connection is alive
func (i *Instance) Ping(ctx context.Context) error {
	if i == nil || i.SQL == nil {
		return errNilInstance
	}
	i.m.RLock()
	defer i.m.RUnlock()
	return i.SQL.PingContext(ctx)
}

// Close disconnects from the database
func (i *Instance) Close() error {
	if i == nil || i.SQL == nil {
		return errNilInstance
	}
	i.m.Lock()
	defer i.m.Unlock()
	return i.SQL.Close()
}

// GetConfig returns a copy of the config the instance was opened with
func (i *Instance) GetConfig() Config {
	i.m.RLock()
	defer i.m.RUnlock()
	return i.config
}

// Rebind converts ? placeholders into the driver's bind variable style
func (i *Instance) Rebind(query string) string {
	if i.GetConfig().Driver != DBPostgreSQL {
		return query
	}
	var sb strings.Builder
	n := 0
	for _, r := range query {
		if r != '?' {
			sb.WriteRune(r)
			continue
		}
		n++
		sb.WriteString("$" + strconv.Itoa(n))
	}
	return sb.String()
}
