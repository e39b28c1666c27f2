package db

import (
	"fmt"
	"net/url"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"tasktracker/internal/config"
)

const (
	defaultMySQLParams    = "parseTime=true&multiStatements=true&clientFoundRows=true"
	defaultPostgresParams = "sslmode=disable"

	maxOpenConns    = 10
	maxIdleConns    = 5
	connMaxLifetime = 30 * time.Minute
)

// DriverName maps the configured DB_DRIVER onto the database/sql driver name.
func DriverName(driver string) string {
	if driver == config.DriverPostgres {
		return "pgx"
	}
	return "mysql"
}

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect(DriverName(conf.DbDriver), DSN(conf))
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	return db, nil
}

func DSN(conf *config.Config) string {
	params := conf.DbParams

	if conf.DbDriver == config.DriverPostgres {
		if params == "" {
			params = defaultPostgresParams
		}
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(conf.DbUser, conf.DbPassword),
			Host:     conf.DbHost + ":" + conf.DbPort,
			Path:     "/" + conf.DbName,
			RawQuery: params,
		}
		return u.String()
	}

	if params == "" {
		params = defaultMySQLParams
	}
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?%s",
		conf.DbUser,
		conf.DbPassword,
		conf.DbHost,
		conf.DbPort,
		conf.DbName,
		params,
	)
}
