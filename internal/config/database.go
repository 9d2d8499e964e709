package config

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver
)

// SetupDatabase initializes the database connection
func SetupDatabase(cfg *Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return db, nil
}

// schema creates the three tables when they are missing. Existing tables
// are never altered.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS players (
		player_id SERIAL PRIMARY KEY,
		player_name TEXT NOT NULL,
		player_mobile_no TEXT,
		player_advance_amount NUMERIC DEFAULT 0,
		player_last_paid_date DATE,
		player_is_active BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS expenses (
		expense_id SERIAL PRIMARY KEY,
		expense_payee_type INTEGER NOT NULL,
		expense_payee_id INTEGER,
		expense_amount NUMERIC NOT NULL,
		expense_spent_date DATE NOT NULL,
		expense_month_year DATE NOT NULL,
		expense_type INTEGER NOT NULL,
		expense_description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS tournaments (
		tournament_id SERIAL PRIMARY KEY,
		tournament_name TEXT NOT NULL,
		tournament_entry_fee NUMERIC,
		tournament_amount_paid NUMERIC DEFAULT 0,
		tournament_amount_balance NUMERIC DEFAULT 0,
		tournament_amount_won NUMERIC DEFAULT 0,
		tournament_description TEXT,
		tournament_iscompleted BOOLEAN NOT NULL DEFAULT FALSE
	)`,
}

// createTables creates the necessary tables in the database
func createTables(db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
