package migrations

import (
	"database/sql"
	"time"
)

// AutoMigrateUsers creates the users table if it does not exist.
func AutoMigrateUsers(retries int, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS users (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(150) NOT NULL DEFAULT '',
			username VARCHAR(150) NOT NULL,
			email VARCHAR(255) NOT NULL,
			password VARCHAR(255) NOT NULL,
			UNIQUE KEY email_idx (email),
			UNIQUE KEY username_idx (username)
		);
	`
	return execWithRetry(db, query, retries)
}

// AutoMigrateTransactions creates the transactions table if it does not
// exist. The schema-level cascade is a backstop; application code deletes
// dependent rows explicitly (see UserRepository.DeleteUser).
func AutoMigrateTransactions(retries int, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS transactions (
			id INT AUTO_INCREMENT PRIMARY KEY,
			user_id INT NOT NULL,
			amount DECIMAL(10,2) NOT NULL,
			type VARCHAR(10) NOT NULL,
			category VARCHAR(100) NOT NULL,
			description TEXT NULL,
			date DATE NOT NULL,
			KEY user_date_idx (user_id, date),
			FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
		);
	`
	return execWithRetry(db, query, retries)
}

func execWithRetry(db *sql.DB, query string, retries int) error {
	_, err := db.Exec(query)
	for i := 0; err != nil && i < retries; i++ {
		time.Sleep(1 * time.Second)
		_, err = db.Exec(query)
	}
	return err
}
