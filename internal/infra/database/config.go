package database

import (
	"fmt"
	"time"

	"todo-api/pkg/resource"
)

const (
	ClientGorm = "gorm"
	ClientSQL  = "sql"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds the connection settings read from app.db.*
type Config struct {
	Client          string
	Driver          string
	Host            string
	Port            string
	Username        string
	Password        string
	Database        string
	Schema          string
	SSLMode         string
	Path            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func ConfigFromProperties() Config {
	return Config{
		Client:          resource.GetStringOrDefault("app.db.client", ClientGorm),
		Driver:          resource.GetStringOrDefault("app.db.driver", DriverPostgres),
		Host:            resource.GetString("app.db.host"),
		Port:            resource.GetString("app.db.port"),
		Username:        resource.GetString("app.db.username"),
		Password:        resource.GetString("app.db.password"),
		Database:        resource.GetString("app.db.database"),
		Schema:          resource.GetStringOrDefault("app.db.schema", "public"),
		SSLMode:         resource.GetStringOrDefault("app.db.sslmode", "disable"),
		Path:            resource.GetStringOrDefault("app.db.path", "todos.db"),
		MaxOpenConns:    resource.GetInt("app.db.max-open-conns"),
		MaxIdleConns:    resource.GetInt("app.db.max-idle-conns"),
		ConnMaxLifetime: resource.GetDuration("app.db.conn-max-lifetime"),
	}
}

// Validate rejects unknown clients and drivers. gorm is only wired with postgres.
func (c Config) Validate() error {
	switch c.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Driver)
	}

	switch c.Client {
	case ClientSQL:
	case ClientGorm:
		if c.Driver != DriverPostgres {
			return fmt.Errorf("database client %q requires driver %q", ClientGorm, DriverPostgres)
		}
	default:
		return fmt.Errorf("unsupported database client %q", c.Client)
	}
	return nil
}

func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode, c.Schema)
}
