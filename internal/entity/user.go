package entity

// User is an account identity. Email is the login key; username is kept as a
// secondary identifier. Password holds the bcrypt hash and is never serialized.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

/*
Mysql Schema:

CREATE TABLE users (
	id INT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(150) NOT NULL DEFAULT '',
	username VARCHAR(150) NOT NULL,
	email VARCHAR(255) NOT NULL,
	password VARCHAR(255) NOT NULL,
	UNIQUE KEY email_idx (email),
	UNIQUE KEY username_idx (username)
);
*/
