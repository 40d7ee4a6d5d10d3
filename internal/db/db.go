package db

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	_ "modernc.org/sqlite"
)

// Connect opens the SQLite database at the given path. SQLite allows a single
// writer, so the pool is capped at one connection; this also keeps in-memory
// databases (used by tests) on a single connection so they survive the pool.
func Connect(path string) (*sql.DB, error) {
	database, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	database.SetMaxOpenConns(1)

	if err := database.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if !strings.Contains(path, ":memory:") {
		log.Println("[db] connected:", path)
	}
	return database, nil
}

// Migrate creates the schema when missing. Statements are idempotent.
func Migrate(database *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			display_name TEXT,
			bio TEXT,
			avatar_url TEXT,
			token TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS celebrities (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			category TEXT,
			image_url TEXT,
			bio TEXT,
			fanmail_address TEXT,
			verified BOOLEAN DEFAULT 0,
			popularity_score INTEGER DEFAULT 0,
			user_id INTEGER,
			is_public BOOLEAN DEFAULT 1,
			created_by_user_id INTEGER,
			relationship_type TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES users(id),
			FOREIGN KEY (created_by_user_id) REFERENCES users(id)
		)`,
		`CREATE TABLE IF NOT EXISTS letters (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			celebrity_id INTEGER,
			customer_email TEXT,
			customer_name TEXT,
			message TEXT,
			handwriting_style TEXT,
			status TEXT DEFAULT 'pending',
			handwrytten_order_id TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (celebrity_id) REFERENCES celebrities(id)
		)`,
		`CREATE TABLE IF NOT EXISTS forum_topics (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			celebrity_id INTEGER,
			author_name TEXT,
			content TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (celebrity_id) REFERENCES celebrities(id)
		)`,
		`CREATE TABLE IF NOT EXISTS forum_replies (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			topic_id INTEGER,
			author_name TEXT,
			content TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (topic_id) REFERENCES forum_topics(id)
		)`,
	}

	for _, stmt := range stmts {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
