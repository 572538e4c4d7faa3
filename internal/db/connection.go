package db

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/shopmesh/auth-service/internal/config"

	_ "github.com/go-sql-driver/mysql"
)

// DSN builds the driver connection string.
// refer to https://github.com/go-sql-driver/mysql/?tab=readme-ov-file#dsn-data-source-name
func DSN(cfg config.DatabaseConfig) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true", cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
}

func Connect(cfg config.DatabaseConfig) *sql.DB {
	db, err := sql.Open("mysql", DSN(cfg))
	if err != nil {
		log.Fatalf("Unable to open DB connection: %v\n", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		log.Fatalf("Unable to connect to database: %v\n", err)
	}

	return db
}
